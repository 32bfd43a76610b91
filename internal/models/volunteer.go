package models

// VolunteerModel is a volunteer signup. Append-only.
type VolunteerModel struct {
	Base
	FullName       string `json:"fullName"       gorm:"not null"`
	Email          string `json:"email"          gorm:"not null;index"`
	Phone          string `json:"phone"          gorm:"not null"`
	AreaOfInterest string `json:"areaOfInterest" gorm:"not null"`
	Skills         string `json:"skills,omitempty"`
}

func (VolunteerModel) TableName() string { return "volunteers" }
