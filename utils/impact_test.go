package utils

import (
	"testing"

	"github.com/Khatixer/farmguard-ai/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeImpactEmptyHistory(t *testing.T) {
	metrics := ComputeImpact(nil)
	assert.Equal(t, ImpactMetrics{}, metrics)
}

func TestComputeImpact(t *testing.T) {
	history := []models.DiagnosisRecord{
		{ID: "a", IsTreated: true},
		{ID: "b", IsTreated: false},
		{ID: "c", IsTreated: true},
		{ID: "d", IsTreated: false},
	}

	metrics := ComputeImpact(history)
	assert.Equal(t, 4, metrics.TotalScans)
	assert.Equal(t, 2, metrics.TreatedCount)
	assert.InDelta(t, 90.0, metrics.YieldSavedUSD, 1e-9)
	assert.InDelta(t, 1.6, metrics.ChemicalsAvoidedL, 1e-9)
	assert.Equal(t, 60, metrics.TimeSavedMin)
}

func TestEstimateSavings(t *testing.T) {
	est := EstimateSavings(1, 500, 2)
	assert.InDelta(t, 400.0, est.PotentialLossUSD, 1e-9)
	assert.InDelta(t, 340.0, est.EstimatedSavingsUSD, 1e-9)
}

func TestEstimateSavingsZeroArea(t *testing.T) {
	est := EstimateSavings(0, 500, 2)
	assert.Zero(t, est.PotentialLossUSD)
	assert.Zero(t, est.EstimatedSavingsUSD)
}
