package controllers

import (
	"net/http"

	"github.com/Khatixer/farmguard-ai/utils"

	"github.com/gin-gonic/gin"
)

// GetImpact returns the impact dashboard metrics for the user's history.
func GetImpact(c *gin.Context) {
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
	c.JSON(http.StatusOK, utils.ComputeImpact(records))
}

type SavingsRequest struct {
	AreaAcres        float64 `json:"area_acres" binding:"required"`
	YieldKgPerAcre   float64 `json:"yield_kg_per_acre" binding:"required"`
	MarketPricePerKg float64 `json:"market_price_per_kg" binding:"required"`
}

// EstimateSavings runs the what-if savings calculator.
func EstimateSavings(c *gin.Context) {
	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	c.JSON(http.StatusOK, utils.EstimateSavings(req.AreaAcres, req.YieldKgPerAcre, req.MarketPricePerKg))
}
