package blog

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/pkg/markdown"
	"github.com/seva-foundation/core/internal/pkg/pagination"
	"github.com/seva-foundation/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the public blog routes and the admin moderation
// routes onto their respective groups.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, admin *gin.RouterGroup) {
	blogs := api.Group("/blogs")
	blogs.POST("", h.submit)
	blogs.GET("", h.listPublished)
	blogs.GET("/slug/:slug", h.getBySlug)
	blogs.GET("/:id", h.getByID)

	moderation := admin.Group("/blogs")
	moderation.GET("", h.listAll)
	moderation.PUT("/:id/approve", h.approve)
	moderation.PUT("/:id/reject", h.reject)
	moderation.PUT("/:id", h.update)
	moderation.DELETE("/:id", h.remove)
}

// submit POST /api/blogs
func (h *Handler) submit(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Submit(&dto)
	if err != nil {
		h.log.Error("blog submit failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{
		"blog":    post,
		"message": "Your story has been submitted and is awaiting review",
	})
}

// listPublished GET /api/blogs
func (h *Handler) listPublished(c *gin.Context) {
	posts, err := h.svc.ListPublished()
	if err != nil {
		h.log.Error("blog list failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	page, pag := pagination.Paginate(posts, pagination.FromContext(c))
	response.OK(c, gin.H{"blogs": page, "pagination": pag})
}

// getByID GET /api/blogs/:id
func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		h.log.Error("blog get failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"blog": h.toDetail(post)})
}

// getBySlug GET /api/blogs/slug/:slug — published posts only
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		h.log.Error("blog get by slug failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"blog": h.toDetail(post)})
}

// listAll GET /api/admin/blogs?status=
func (h *Handler) listAll(c *gin.Context) {
	var status *models.BlogStatus
	if raw := c.Query("status"); raw != "" {
		s := models.BlogStatus(raw)
		if !s.Valid() {
			response.BadRequest(c, "unknown status filter")
			return
		}
		status = &s
	}

	posts, err := h.svc.List(status)
	if err != nil {
		h.log.Error("admin blog list failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	page, pag := pagination.Paginate(posts, pagination.FromContext(c))
	response.OK(c, gin.H{"blogs": page, "pagination": pag})
}

// approve PUT /api/admin/blogs/:id/approve
func (h *Handler) approve(c *gin.Context) {
	post, err := h.svc.Approve(c.Param("id"))
	if err != nil {
		h.log.Error("blog approve failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"blog": post, "message": "Blog post approved"})
}

// reject PUT /api/admin/blogs/:id/reject
func (h *Handler) reject(c *gin.Context) {
	var dto RejectBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Reject(c.Param("id"), dto.Reason)
	if err != nil {
		h.log.Error("blog reject failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"blog": post, "message": "Blog post rejected"})
}

// update PUT /api/admin/blogs/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrUnknownStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		h.log.Error("blog update failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"blog": post})
}

// remove DELETE /api/admin/blogs/:id
func (h *Handler) remove(c *gin.Context) {
	existed, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		h.log.Error("blog delete failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if !existed {
		response.NotFound(c, "Blog post not found")
		return
	}
	response.OK(c, gin.H{"message": "Blog post deleted"})
}

func (h *Handler) toDetail(post *models.BlogPostModel) detailResponse {
	html, err := markdown.Render(post.Content)
	if err != nil {
		h.log.Warn("markdown render failed", zap.String("id", post.ID), zap.Error(err))
		html = ""
	}
	return detailResponse{BlogPostModel: *post, ContentHTML: html}
}
