package models

// Donation status values. The core only ever assigns "pending"; further
// transitions belong to the external payment integration.
const DonationStatusPending = "pending"

// DonationModel is a donation intent, in whole currency units.
type DonationModel struct {
	Base
	Amount     int    `json:"amount"     gorm:"not null"`
	IsMonthly  bool   `json:"isMonthly"  gorm:"default:false"`
	DonorName  string `json:"donorName,omitempty"`
	DonorEmail string `json:"donorEmail,omitempty"`
	Status     string `json:"status"     gorm:"not null;default:'pending'"`
}

func (DonationModel) TableName() string { return "donations" }
