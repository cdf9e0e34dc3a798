package models

// Remedy is an organic treatment recipe keyed by a stable slug.
type Remedy struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	Steps         []string `json:"steps"`
	TargetDisease string   `json:"target_disease"` // "/"-delimited tags
}
