package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seva-foundation/core/internal/models"
)

// Memory is the default Store backend: one map per entity type, guarded by
// one RWMutex per map. Read-modify-write sequences (view-count increments,
// uniqueness checks before insert) run as critical sections. Records are
// copied on the way in and out so callers never share memory with the maps.
type Memory struct {
	contactsMu sync.RWMutex
	contacts   map[string]models.ContactModel

	volunteersMu sync.RWMutex
	volunteers   map[string]models.VolunteerModel

	donationsMu sync.RWMutex
	donations   map[string]models.DonationModel

	newslettersMu sync.RWMutex
	newsletters   map[string]models.NewsletterModel
	emailIndex    map[string]string // email -> subscription id

	blogsMu   sync.RWMutex
	blogs     map[string]models.BlogPostModel
	slugIndex map[string]string // slug -> post id
	blogOrder []string          // insertion order of post ids
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		contacts:    make(map[string]models.ContactModel),
		volunteers:  make(map[string]models.VolunteerModel),
		donations:   make(map[string]models.DonationModel),
		newsletters: make(map[string]models.NewsletterModel),
		emailIndex:  make(map[string]string),
		blogs:       make(map[string]models.BlogPostModel),
		slugIndex:   make(map[string]string),
	}
}

func stamp(b *models.Base) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}

func (m *Memory) CreateContact(c *models.ContactModel) error {
	m.contactsMu.Lock()
	defer m.contactsMu.Unlock()
	stamp(&c.Base)
	m.contacts[c.ID] = *c
	return nil
}

func (m *Memory) CreateVolunteer(v *models.VolunteerModel) error {
	m.volunteersMu.Lock()
	defer m.volunteersMu.Unlock()
	stamp(&v.Base)
	m.volunteers[v.ID] = *v
	return nil
}

func (m *Memory) CreateDonation(d *models.DonationModel) error {
	m.donationsMu.Lock()
	defer m.donationsMu.Unlock()
	stamp(&d.Base)
	if d.Status == "" {
		d.Status = models.DonationStatusPending
	}
	m.donations[d.ID] = *d
	return nil
}

func (m *Memory) CreateNewsletter(n *models.NewsletterModel) error {
	m.newslettersMu.Lock()
	defer m.newslettersMu.Unlock()
	if _, ok := m.emailIndex[n.Email]; ok {
		return ErrEmailTaken
	}
	stamp(&n.Base)
	n.IsActive = true
	m.newsletters[n.ID] = *n
	m.emailIndex[n.Email] = n.ID
	return nil
}

func (m *Memory) NewsletterByEmail(email string) (*models.NewsletterModel, error) {
	m.newslettersMu.RLock()
	defer m.newslettersMu.RUnlock()
	id, ok := m.emailIndex[email]
	if !ok {
		return nil, nil
	}
	n := m.newsletters[id]
	return &n, nil
}

func (m *Memory) CreateBlog(b *models.BlogPostModel) error {
	m.blogsMu.Lock()
	defer m.blogsMu.Unlock()
	if _, ok := m.slugIndex[b.Slug]; ok {
		return ErrSlugTaken
	}
	stamp(&b.Base)
	if b.Status == "" {
		b.Status = models.BlogStatusPending
	}
	if b.Category == "" {
		b.Category = "general"
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	m.blogs[b.ID] = cloneBlog(*b)
	m.slugIndex[b.Slug] = b.ID
	m.blogOrder = append(m.blogOrder, b.ID)
	return nil
}

func (m *Memory) BlogByID(id string) (*models.BlogPostModel, error) {
	m.blogsMu.RLock()
	defer m.blogsMu.RUnlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil, nil
	}
	b = cloneBlog(b)
	return &b, nil
}

func (m *Memory) BlogBySlug(slug string) (*models.BlogPostModel, error) {
	m.blogsMu.RLock()
	defer m.blogsMu.RUnlock()
	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, nil
	}
	b := cloneBlog(m.blogs[id])
	return &b, nil
}

// ListBlogs returns posts most recent first. Creation timestamps are
// monotonic within a process, so walking the insertion order backwards
// yields created-desc.
func (m *Memory) ListBlogs(f BlogFilter) ([]models.BlogPostModel, error) {
	m.blogsMu.RLock()
	defer m.blogsMu.RUnlock()
	out := make([]models.BlogPostModel, 0, len(m.blogOrder))
	for i := len(m.blogOrder) - 1; i >= 0; i-- {
		b, ok := m.blogs[m.blogOrder[i]]
		if !ok {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		out = append(out, cloneBlog(b))
	}
	return out, nil
}

func (m *Memory) UpdateBlog(id string, patch BlogPatch) (*models.BlogPostModel, error) {
	m.blogsMu.Lock()
	defer m.blogsMu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		b.Excerpt = *patch.Excerpt
	}
	if patch.AuthorName != nil {
		b.AuthorName = *patch.AuthorName
	}
	if patch.AuthorEmail != nil {
		b.AuthorEmail = *patch.AuthorEmail
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.FeaturedImage != nil {
		b.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Tags != nil {
		b.Tags = append(models.StringSlice(nil), patch.Tags...)
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.RejectionReason != nil {
		b.RejectionReason = *patch.RejectionReason
	}
	b.UpdatedAt = time.Now()
	m.blogs[id] = cloneBlog(b)
	return &b, nil
}

func (m *Memory) DeleteBlog(id string) (bool, error) {
	m.blogsMu.Lock()
	defer m.blogsMu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return false, nil
	}
	delete(m.blogs, id)
	delete(m.slugIndex, b.Slug)
	for i, oid := range m.blogOrder {
		if oid == id {
			m.blogOrder = append(m.blogOrder[:i], m.blogOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *Memory) IncrementBlogViews(id string) error {
	m.blogsMu.Lock()
	defer m.blogsMu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil
	}
	b.ViewCount++
	m.blogs[id] = b
	return nil
}

func (m *Memory) Stats() (Stats, error) {
	var s Stats

	m.contactsMu.RLock()
	s.Contacts = int64(len(m.contacts))
	m.contactsMu.RUnlock()

	m.volunteersMu.RLock()
	s.Volunteers = int64(len(m.volunteers))
	m.volunteersMu.RUnlock()

	m.donationsMu.RLock()
	s.Donations = int64(len(m.donations))
	for _, d := range m.donations {
		s.DonationTotal += int64(d.Amount)
	}
	m.donationsMu.RUnlock()

	m.newslettersMu.RLock()
	s.Subscribers = int64(len(m.newsletters))
	m.newslettersMu.RUnlock()

	m.blogsMu.RLock()
	for _, b := range m.blogs {
		switch b.Status {
		case models.BlogStatusPending:
			s.BlogsPending++
		case models.BlogStatusPublished:
			s.BlogsPublished++
		case models.BlogStatusRejected:
			s.BlogsRejected++
		}
	}
	m.blogsMu.RUnlock()

	return s, nil
}

// cloneBlog deep-copies the tag slice so map entries and returned records
// never alias.
func cloneBlog(b models.BlogPostModel) models.BlogPostModel {
	if b.Tags != nil {
		b.Tags = append(models.StringSlice(nil), b.Tags...)
	}
	return b
}
