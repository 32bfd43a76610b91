package store

import (
	"errors"

	"github.com/seva-foundation/core/internal/models"
)

// ErrSlugTaken is returned by CreateBlog when the generated slug already
// exists; callers regenerate and retry.
var ErrSlugTaken = errors.New("slug already exists")

// ErrEmailTaken is returned by CreateNewsletter when the email already has a
// subscription. The invariant (at most one subscription per email) is held
// inside the store so concurrent submissions cannot slip past the handler's
// pre-check.
var ErrEmailTaken = errors.New("email already subscribed")

// BlogFilter narrows ListBlogs. A nil Status means all posts.
type BlogFilter struct {
	Status *models.BlogStatus
}

// BlogPatch is a partial update for a blog post. Absent (nil) fields are
// left untouched. The identifier and slug are deliberately not patchable:
// the slug is generated once at creation and never regenerated.
type BlogPatch struct {
	Title           *string
	Content         *string
	Excerpt         *string
	AuthorName      *string
	AuthorEmail     *string
	Category        *string
	FeaturedImage   *string
	Tags            []string
	Status          *models.BlogStatus
	RejectionReason *string
}

// Stats is a snapshot of record counts across all entity maps.
type Stats struct {
	Contacts       int64 `json:"contacts"`
	Volunteers     int64 `json:"volunteers"`
	Donations      int64 `json:"donations"`
	DonationTotal  int64 `json:"donationTotal"`
	Subscribers    int64 `json:"subscribers"`
	BlogsPending   int64 `json:"blogsPending"`
	BlogsPublished int64 `json:"blogsPublished"`
	BlogsRejected  int64 `json:"blogsRejected"`
}

// Store owns every entity instance for the process lifetime. Lookups signal
// absence with (nil, nil) rather than an error; callers map that to 404.
// The default backend is the in-memory Memory store; a MySQL-backed
// implementation lives in internal/database and is selected by config,
// without changing call sites.
type Store interface {
	CreateContact(m *models.ContactModel) error
	CreateVolunteer(m *models.VolunteerModel) error
	CreateDonation(m *models.DonationModel) error

	CreateNewsletter(m *models.NewsletterModel) error
	NewsletterByEmail(email string) (*models.NewsletterModel, error)

	CreateBlog(m *models.BlogPostModel) error
	BlogByID(id string) (*models.BlogPostModel, error)
	BlogBySlug(slug string) (*models.BlogPostModel, error)
	ListBlogs(f BlogFilter) ([]models.BlogPostModel, error)
	UpdateBlog(id string, patch BlogPatch) (*models.BlogPostModel, error)
	DeleteBlog(id string) (bool, error)
	// IncrementBlogViews bumps the view counter by one as an atomic
	// read-modify-write; lost updates under concurrent reads are not
	// acceptable.
	IncrementBlogViews(id string) error

	Stats() (Stats, error)
}
