package blog

import (
	"github.com/seva-foundation/core/internal/models"
)

// CreateBlogDTO is the request body for submitting a community post.
// Refinements mirror the website's submission form.
type CreateBlogDTO struct {
	Title         string   `json:"title"         binding:"required,min=5"`
	Content       string   `json:"content"       binding:"required,min=100"`
	AuthorName    string   `json:"authorName"    binding:"required,min=2"`
	AuthorEmail   string   `json:"authorEmail"   binding:"required,email"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	FeaturedImage string   `json:"featuredImage" binding:"omitempty,url"`
	Tags          []string `json:"tags"`
}

// UpdateBlogDTO is the admin edit body (all fields optional). The slug is
// not editable: it is generated once at creation.
type UpdateBlogDTO struct {
	Title         *string            `json:"title"`
	Content       *string            `json:"content"`
	Excerpt       *string            `json:"excerpt"`
	AuthorName    *string            `json:"authorName"`
	AuthorEmail   *string            `json:"authorEmail"   binding:"omitempty,email"`
	Category      *string            `json:"category"`
	FeaturedImage *string            `json:"featuredImage"`
	Tags          []string           `json:"tags"`
	Status        *models.BlogStatus `json:"status"`
}

// RejectBlogDTO carries the moderation reason, persisted on the post.
type RejectBlogDTO struct {
	Reason string `json:"reason"`
}

// detailResponse is the post plus the rendered form of its markdown
// content, returned by single-post reads.
type detailResponse struct {
	models.BlogPostModel
	ContentHTML string `json:"contentHtml,omitempty"`
}
