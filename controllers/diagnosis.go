package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Khatixer/farmguard-ai/models"
	"github.com/Khatixer/farmguard-ai/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Diagnose is the AI call used by ScanPlant. A variable so tests can swap
// in a stub.
var Diagnose = utils.DiagnosePlant

type ScanRequest struct {
	Image string `json:"image" binding:"required"` // data URI from the camera
}

// ScanPlant sends the captured image to the diagnosis service and, when the
// image really is a plant, stores and returns the new record. The new
// record becomes the currently viewed one, mirroring the scanner flow.
func ScanPlant(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	diagnosis, err := Diagnose(c.Request.Context(), req.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI analysis failed. Check your connection or try a clearer photo."})
		return
	}
	if !diagnosis.IsPlant {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The image does not appear to be a plant. Please try again with a clear photo of a leaf."})
		return
	}

	record := models.DiagnosisRecord{
		ID:         uuid.NewString(),
		PlantName:  diagnosis.PlantName,
		Disease:    diagnosis.Disease,
		Confidence: diagnosis.Confidence,
		RemedyID:   diagnosis.RemedyID,
		Timestamp:  time.Now().UnixMilli(),
		ImageURL:   req.Image,
		IsTreated:  false,
		IsPlant:    true,
	}
	if err := History.Append(userID, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save diagnosis"})
		return
	}
	if _, err := History.Select(userID, record.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save diagnosis"})
		return
	}

	settings, err := Settings.Get(userID)
	if err == nil && settings.Notifications {
		BroadcastDiagnosis(userID, record)
	}

	c.JSON(http.StatusOK, record)
}

// GetHistory returns the user's diagnosis records, newest first.
func GetHistory(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := History.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetHistoryItem returns a single record by id.
func GetHistoryItem(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := History.Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteRecord deletes a single diagnosis record. If it was the currently
// viewed record the selection is cleared with it.
func DeleteRecord(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	removed, err := History.Remove(userID, c.Param("id"))
	if err != nil && !removed {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	// A selection-cleanup error after the delete persisted still counts as
	// a successful delete.
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// ToggleTreated flips the treated flag on a record.
func ToggleTreated(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := History.ToggleTreated(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// SelectRecord marks a record as the one currently viewed by the client,
// so treat/delete mutations keep the viewed copy consistent.
func SelectRecord(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := History.Select(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select record"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ClearSelection drops the currently viewed record marker.
func ClearSelection(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := History.ClearSelection(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear selection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selection cleared"})
}

// ExportHistoryCSV sends the diagnosis history as a CSV file.
func ExportHistoryCSV(c *gin.Context) {
	userID, exists := currentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := History.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=diagnosis_history.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"timestamp", "plant_name", "disease", "confidence", "remedy_id", "treated"})
	for _, record := range records {
		writer.Write([]string{
			time.UnixMilli(record.Timestamp).Format("2006-01-02 15:04:05"),
			record.PlantName,
			record.Disease,
			fmt.Sprintf("%.2f", record.Confidence),
			record.RemedyID,
			fmt.Sprintf("%t", record.IsTreated),
		})
	}
}
