package models

// ContactModel is a contact form submission. Append-only.
type ContactModel struct {
	Base
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName"  gorm:"not null"`
	Email     string `json:"email"     gorm:"not null;index"`
	Subject   string `json:"subject"   gorm:"not null"`
	Message   string `json:"message"   gorm:"type:text;not null"`
}

func (ContactModel) TableName() string { return "contacts" }
