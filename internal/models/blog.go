package models

import "time"

// BlogStatus is the moderation state of a community blog post.
type BlogStatus string

const (
	BlogStatusPending   BlogStatus = "pending"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusRejected  BlogStatus = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s BlogStatus) Valid() bool {
	switch s {
	case BlogStatusPending, BlogStatusPublished, BlogStatusRejected:
		return true
	}
	return false
}

// BlogPostModel is a community blog post. The only mutable entity: admins
// may edit fields, drive status transitions, and delete; published reads
// bump ViewCount.
type BlogPostModel struct {
	Base
	Title           string      `json:"title"           gorm:"not null"`
	Slug            string      `json:"slug"            gorm:"uniqueIndex;not null"`
	Content         string      `json:"content"         gorm:"type:longtext;not null"`
	Excerpt         string      `json:"excerpt,omitempty"`
	AuthorName      string      `json:"authorName"      gorm:"not null"`
	AuthorEmail     string      `json:"authorEmail"     gorm:"not null"`
	Status          BlogStatus  `json:"status"          gorm:"type:varchar(16);not null;default:'pending';index"`
	Category        string      `json:"category"        gorm:"default:'general'"`
	FeaturedImage   string      `json:"featuredImage,omitempty"`
	Tags            StringSlice `json:"tags,omitempty"  gorm:"type:json;serializer:json"`
	ViewCount       int         `json:"viewCount"       gorm:"default:0"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
