package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full route table against a fresh in-memory
// database. Routes under /auth-stub skip the JWT middleware and run as
// user 1, the way the middleware would populate the context.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	MigrateModels(db)

	r := gin.New()
	r.POST("/signup", Signup)
	r.POST("/login", Login)

	auth := r.Group("/")
	auth.Use(stubAuth(1))
	auth.GET("/ws", HandleWebSocket)
	auth.POST("/logout", Logout)
	auth.GET("/profile", GetProfile)
	auth.PUT("/profile", UpdateProfile)
	auth.GET("/settings", GetSettings)
	auth.PUT("/settings", UpdateSettings)
	auth.POST("/scan", ScanPlant)
	auth.GET("/history", GetHistory)
	auth.GET("/history/export", ExportHistoryCSV)
	auth.GET("/history/:id", GetHistoryItem)
	auth.DELETE("/history/:id", DeleteRecord)
	auth.POST("/history/:id/toggle-treated", ToggleTreated)
	auth.POST("/history/:id/select", SelectRecord)
	auth.DELETE("/history/selection", ClearSelection)
	auth.GET("/remedies", ListRemedies)
	auth.GET("/remedies/resolve/:record_id", ResolveRemedy)
	auth.GET("/impact", GetImpact)
	auth.POST("/savings/estimate", EstimateSavings)
	return r
}

// stubAuth plants the user id the way the JWT middleware does (claims
// decode numbers as float64).
func stubAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", float64(userID))
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
