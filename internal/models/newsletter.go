package models

// NewsletterModel is a newsletter subscription. At most one per email.
type NewsletterModel struct {
	Base
	Email    string `json:"email"    gorm:"uniqueIndex;not null"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

func (NewsletterModel) TableName() string { return "newsletters" }
