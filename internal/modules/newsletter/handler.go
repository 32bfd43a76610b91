package newsletter

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/pkg/response"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
)

// SubscribeDTO is the newsletter signup payload.
type SubscribeDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// Handler handles newsletter subscriptions.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

func NewHandler(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", h.subscribe)
}

// subscribe POST /api/newsletter
func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Pre-check for the explicit message; the store re-checks under its
	// lock so concurrent submissions cannot both pass.
	existing, err := h.store.NewsletterByEmail(dto.Email)
	if err != nil {
		h.log.Error("newsletter lookup failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	if existing != nil {
		response.BadRequest(c, "Email already subscribed")
		return
	}

	sub := models.NewsletterModel{Email: dto.Email, IsActive: true}
	if err := h.store.CreateNewsletter(&sub); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			response.BadRequest(c, "Email already subscribed")
			return
		}
		h.log.Error("newsletter create failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"newsletter": sub})
}
