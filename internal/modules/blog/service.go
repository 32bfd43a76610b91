package blog

import (
	"errors"
	"fmt"
	"time"

	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/store"
)

// Successive same-millisecond submissions of the same title walk the
// suffix forward until a free slug is found.
const slugRetryLimit = 100

// ErrUnknownStatus rejects edits that set a status outside the workflow's
// three states.
var ErrUnknownStatus = errors.New("unknown status")

// Service handles the blog submission/moderation workflow.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Submit creates a post in pending state. The slug is computed once from
// the title and disambiguated with the creation-time milliseconds; a
// same-millisecond collision bumps the suffix and retries.
func (s *Service) Submit(dto *CreateBlogDTO) (*models.BlogPostModel, error) {
	stem := Slugify(dto.Title)
	suffix := time.Now().UnixMilli()

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		post := models.BlogPostModel{
			Title:         dto.Title,
			Slug:          fmt.Sprintf("%s-%d", stem, suffix+int64(attempt)),
			Content:       dto.Content,
			Excerpt:       dto.Excerpt,
			AuthorName:    dto.AuthorName,
			AuthorEmail:   dto.AuthorEmail,
			Status:        models.BlogStatusPending,
			Category:      dto.Category,
			FeaturedImage: dto.FeaturedImage,
			Tags:          dto.Tags,
		}
		err := s.store.CreateBlog(&post)
		if err == nil {
			return &post, nil
		}
		if !errors.Is(err, store.ErrSlugTaken) {
			return nil, err
		}
	}
	return nil, store.ErrSlugTaken
}

// ListPublished returns published posts, most recent first.
func (s *Service) ListPublished() ([]models.BlogPostModel, error) {
	status := models.BlogStatusPublished
	return s.store.ListBlogs(store.BlogFilter{Status: &status})
}

// List returns all posts, optionally filtered by status.
func (s *Service) List(status *models.BlogStatus) ([]models.BlogPostModel, error) {
	return s.store.ListBlogs(store.BlogFilter{Status: status})
}

// GetByID fetches a post by identifier. There is no status gate on this
// path (admin tooling uses it), but a published post still has its view
// counter bumped by the read.
func (s *Service) GetByID(id string) (*models.BlogPostModel, error) {
	post, err := s.store.BlogByID(id)
	if err != nil || post == nil {
		return post, err
	}
	if post.Status == models.BlogStatusPublished {
		if err := s.store.IncrementBlogViews(post.ID); err != nil {
			return nil, err
		}
		post.ViewCount++
	}
	return post, nil
}

// GetBySlug fetches a post by slug for the public site. Non-published posts
// are treated as not found; each successful read bumps the view counter.
func (s *Service) GetBySlug(slug string) (*models.BlogPostModel, error) {
	post, err := s.store.BlogBySlug(slug)
	if err != nil || post == nil {
		return post, err
	}
	if post.Status != models.BlogStatusPublished {
		return nil, nil
	}
	if err := s.store.IncrementBlogViews(post.ID); err != nil {
		return nil, err
	}
	post.ViewCount++
	return post, nil
}

// Approve transitions a post to published and clears any rejection reason.
// There is no guard on the current state: re-approving a rejected or
// already-published post is allowed.
func (s *Service) Approve(id string) (*models.BlogPostModel, error) {
	published := models.BlogStatusPublished
	noReason := ""
	return s.store.UpdateBlog(id, store.BlogPatch{
		Status:          &published,
		RejectionReason: &noReason,
	})
}

// Reject transitions a post to rejected, recording the reason.
func (s *Service) Reject(id, reason string) (*models.BlogPostModel, error) {
	rejected := models.BlogStatusRejected
	return s.store.UpdateBlog(id, store.BlogPatch{
		Status:          &rejected,
		RejectionReason: &reason,
	})
}

// Update merges admin edits into a post, permitted regardless of status.
func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogPostModel, error) {
	if dto.Status != nil && !dto.Status.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownStatus, *dto.Status)
	}
	return s.store.UpdateBlog(id, store.BlogPatch{
		Title:         dto.Title,
		Content:       dto.Content,
		Excerpt:       dto.Excerpt,
		AuthorName:    dto.AuthorName,
		AuthorEmail:   dto.AuthorEmail,
		Category:      dto.Category,
		FeaturedImage: dto.FeaturedImage,
		Tags:          dto.Tags,
		Status:        dto.Status,
	})
}

// Delete removes a post. Irreversible; reports whether a record existed.
func (s *Service) Delete(id string) (bool, error) {
	return s.store.DeleteBlog(id)
}
