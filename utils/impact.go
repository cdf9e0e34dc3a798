package utils

import "github.com/Khatixer/farmguard-ai/models"

// ImpactMetrics are the headline numbers on the impact dashboard. They are
// rough per-event estimates, not measurements.
type ImpactMetrics struct {
	TotalScans        int     `json:"total_scans"`
	TreatedCount      int     `json:"treated_count"`
	YieldSavedUSD     float64 `json:"yield_saved_usd"`
	ChemicalsAvoidedL float64 `json:"chemicals_avoided_l"`
	TimeSavedMin      int     `json:"time_saved_min"`
}

// Per-event estimate constants.
const (
	yieldSavedPerTreatment = 45.0 // USD
	chemicalsPerTreatment  = 0.8  // liters
	minutesSavedPerScan    = 15
)

// ComputeImpact derives the dashboard metrics from the diagnosis history.
func ComputeImpact(history []models.DiagnosisRecord) ImpactMetrics {
	treated := 0
	for _, record := range history {
		if record.IsTreated {
			treated++
		}
	}
	return ImpactMetrics{
		TotalScans:        len(history),
		TreatedCount:      treated,
		YieldSavedUSD:     float64(treated) * yieldSavedPerTreatment,
		ChemicalsAvoidedL: float64(treated) * chemicalsPerTreatment,
		TimeSavedMin:      len(history) * minutesSavedPerScan,
	}
}

// SavingsEstimate is the output of the what-if savings calculator.
type SavingsEstimate struct {
	PotentialLossUSD    float64 `json:"potential_loss_usd"`
	EstimatedSavingsUSD float64 `json:"estimated_savings_usd"`
}

// EstimateSavings assumes an untreated outbreak loses 40% of the crop and
// that early organic intervention recovers 85% of that loss.
func EstimateSavings(areaAcres, yieldKgPerAcre, marketPricePerKg float64) SavingsEstimate {
	potentialLoss := areaAcres * yieldKgPerAcre * marketPricePerKg * 0.4
	return SavingsEstimate{
		PotentialLossUSD:    potentialLoss,
		EstimatedSavingsUSD: potentialLoss * 0.85,
	}
}
