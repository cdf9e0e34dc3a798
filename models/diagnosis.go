package models

// DiagnosisRecord is one scan event with its AI-derived classification and
// treatment status. Records never change after creation except for the
// IsTreated flag.
type DiagnosisRecord struct {
	ID         string  `json:"id"`
	PlantName  string  `json:"plant_name"`
	Disease    string  `json:"disease"` // "Healthy" and "None" mean no remedy applies
	Confidence float64 `json:"confidence"`
	RemedyID   string  `json:"remedy_id"` // advisory hint from the AI, may not match the catalog
	Timestamp  int64   `json:"timestamp"` // unix milliseconds
	ImageURL   string  `json:"image_url"` // data URI of the captured photo
	IsTreated  bool    `json:"is_treated"`
	IsPlant    bool    `json:"is_plant"`
}
