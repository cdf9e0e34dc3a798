package models

// AppSettings holds per-user application preferences, persisted wholesale
// on any change.
type AppSettings struct {
	Theme         string `json:"theme"` // light | dark
	Notifications bool   `json:"notifications"`
	OfflineMode   bool   `json:"offline_mode"`
	HighContrast  bool   `json:"high_contrast"`
}

// DefaultSettings are used whenever no settings have been saved yet.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         "light",
		Notifications: true,
		OfflineMode:   false,
		HighContrast:  false,
	}
}

// PendingProfile is the profile submitted at signup, cached until the
// account's first login. Covers accounts that require email verification
// before a session exists.
type PendingProfile struct {
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Location         string  `json:"location"`
	FarmSize         float64 `json:"farm_size"`
	MainCrop         string  `json:"main_crop"`
	ExperienceYears  int     `json:"experience_years"`
	FarmType         string  `json:"farm_type"`
	PreferredContact string  `json:"preferred_contact"`
	Bio              string  `json:"bio"`
}
