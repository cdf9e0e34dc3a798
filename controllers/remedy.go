package controllers

import (
	"net/http"

	"github.com/Khatixer/farmguard-ai/remedies"

	"github.com/gin-gonic/gin"
)

// ListRemedies returns the full remedy catalog.
func ListRemedies(c *gin.Context) {
	c.JSON(http.StatusOK, remedies.Catalog)
}

// ResolveRemedy returns the single most relevant remedy for a stored
// diagnosis record, or 404 when none applies (healthy plants).
func ResolveRemedy(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := History.Get(userID, c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	remedy, ok := remedies.Resolve(remedies.Catalog, *record)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No remedy applicable"})
		return
	}
	c.JSON(http.StatusOK, remedy)
}
