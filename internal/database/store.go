package database

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/store"
	"gorm.io/gorm"
)

// mysqlDupEntry is the MySQL error code for a unique index violation.
const mysqlDupEntry = 1062

// duplicateKey reports whether err is a unique index violation. Connect
// enables gorm's error translation, but the raw driver error is recognized
// as well so the mapping does not depend on it.
func duplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry
}

// Store is the MySQL-backed implementation of store.Store, selected when a
// DSN is configured. Uniqueness is enforced by the slug/email unique
// indexes; counter increments go through the database so concurrent reads
// cannot lose updates.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) CreateContact(m *models.ContactModel) error {
	return s.db.Create(m).Error
}

func (s *Store) CreateVolunteer(m *models.VolunteerModel) error {
	return s.db.Create(m).Error
}

func (s *Store) CreateDonation(m *models.DonationModel) error {
	if m.Status == "" {
		m.Status = models.DonationStatusPending
	}
	return s.db.Create(m).Error
}

func (s *Store) CreateNewsletter(m *models.NewsletterModel) error {
	m.IsActive = true
	err := s.db.Create(m).Error
	if err != nil && duplicateKey(err) {
		return store.ErrEmailTaken
	}
	return err
}

func (s *Store) NewsletterByEmail(email string) (*models.NewsletterModel, error) {
	var n models.NewsletterModel
	if err := s.db.Where("email = ?", email).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateBlog(m *models.BlogPostModel) error {
	if m.Status == "" {
		m.Status = models.BlogStatusPending
	}
	if m.Category == "" {
		m.Category = "general"
	}
	var count int64
	if err := s.db.Model(&models.BlogPostModel{}).Where("slug = ?", m.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return store.ErrSlugTaken
	}
	err := s.db.Create(m).Error
	if err != nil && duplicateKey(err) {
		return store.ErrSlugTaken
	}
	return err
}

func (s *Store) BlogByID(id string) (*models.BlogPostModel, error) {
	var b models.BlogPostModel
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) BlogBySlug(slug string) (*models.BlogPostModel, error) {
	var b models.BlogPostModel
	if err := s.db.Where("slug = ?", slug).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) ListBlogs(f store.BlogFilter) ([]models.BlogPostModel, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Order("created_at DESC")
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	var posts []models.BlogPostModel
	err := tx.Find(&posts).Error
	return posts, err
}

func (s *Store) UpdateBlog(id string, patch store.BlogPatch) (*models.BlogPostModel, error) {
	post, err := s.BlogByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.AuthorName != nil {
		updates["author_name"] = *patch.AuthorName
	}
	if patch.AuthorEmail != nil {
		updates["author_email"] = *patch.AuthorEmail
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.FeaturedImage != nil {
		updates["featured_image"] = *patch.FeaturedImage
	}
	if patch.Tags != nil {
		updates["tags"] = models.StringSlice(patch.Tags)
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.RejectionReason != nil {
		updates["rejection_reason"] = *patch.RejectionReason
	}
	updates["updated_at"] = time.Now()

	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.BlogByID(id)
}

func (s *Store) DeleteBlog(id string) (bool, error) {
	result := s.db.Delete(&models.BlogPostModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) IncrementBlogViews(id string) error {
	return s.db.Model(&models.BlogPostModel{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s *Store) Stats() (store.Stats, error) {
	var st store.Stats
	if err := s.db.Model(&models.ContactModel{}).Count(&st.Contacts).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.VolunteerModel{}).Count(&st.Volunteers).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.DonationModel{}).Count(&st.Donations).Error; err != nil {
		return st, err
	}
	var total struct{ Total int64 }
	if err := s.db.Model(&models.DonationModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").Scan(&total).Error; err != nil {
		return st, err
	}
	st.DonationTotal = total.Total
	if err := s.db.Model(&models.NewsletterModel{}).Count(&st.Subscribers).Error; err != nil {
		return st, err
	}
	type row struct {
		Status models.BlogStatus
		N      int64
	}
	var rows []row
	if err := s.db.Model(&models.BlogPostModel{}).
		Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return st, err
	}
	for _, r := range rows {
		switch r.Status {
		case models.BlogStatusPending:
			st.BlogsPending = r.N
		case models.BlogStatusPublished:
			st.BlogsPublished = r.N
		case models.BlogStatusRejected:
			st.BlogsRejected = r.N
		}
	}
	return st, nil
}
