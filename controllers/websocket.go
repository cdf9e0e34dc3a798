package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Khatixer/farmguard-ai/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsClient struct {
	Conn   *websocket.Conn
	UserID uint
}

var (
	wsClients   = make(map[*websocket.Conn]wsClient)
	wsClientsMu sync.Mutex
)

// HandleWebSocket registers an authenticated client for diagnosis pushes.
func HandleWebSocket(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wsClientsMu.Lock()
	wsClients[conn] = wsClient{Conn: conn, UserID: userID}
	wsClientsMu.Unlock()

	defer func() {
		wsClientsMu.Lock()
		delete(wsClients, conn)
		wsClientsMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastDiagnosis pushes a new diagnosis to the owning user's open
// sockets. Callers check the notifications setting first.
func BroadcastDiagnosis(userID uint, record models.DiagnosisRecord) {
	notification := map[string]interface{}{
		"type":    "diagnosis",
		"message": "New diagnosis: " + record.Disease + " on " + record.PlantName,
		"record":  record,
	}
	msg, _ := json.Marshal(notification)

	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for conn, client := range wsClients {
		if client.UserID != userID {
			continue
		}
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
