package models

// User is an authenticated farmer account with their farm profile.
type User struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	Email            string  `json:"email" gorm:"unique;not null"`
	Password         string  `json:"-"` // Store hashed password
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Location         string  `json:"location"`
	FarmSize         float64 `json:"farm_size"`
	MainCrop         string  `json:"main_crop"`
	ExperienceYears  int     `json:"experience_years"`
	FarmType         string  `json:"farm_type" gorm:"default:Traditional"`  // Organic | Traditional | Hydroponic
	PreferredContact string  `json:"preferred_contact" gorm:"default:Email"` // Email | Phone | WhatsApp
	Bio              string  `json:"bio"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// untouched so a partial edit does not zero the rest of the profile.
type ProfileUpdate struct {
	Name             *string  `json:"name"`
	Phone            *string  `json:"phone"`
	Location         *string  `json:"location"`
	FarmSize         *float64 `json:"farm_size"`
	MainCrop         *string  `json:"main_crop"`
	ExperienceYears  *int     `json:"experience_years"`
	FarmType         *string  `json:"farm_type"`
	PreferredContact *string  `json:"preferred_contact"`
	Bio              *string  `json:"bio"`
}

// Apply merges the non-nil fields into the user.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.FarmSize != nil {
		u.FarmSize = *p.FarmSize
	}
	if p.MainCrop != nil {
		u.MainCrop = *p.MainCrop
	}
	if p.ExperienceYears != nil {
		u.ExperienceYears = *p.ExperienceYears
	}
	if p.FarmType != nil {
		u.FarmType = *p.FarmType
	}
	if p.PreferredContact != nil {
		u.PreferredContact = *p.PreferredContact
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}
