package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/pkg/response"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
)

// CreateContactDTO is the contact form payload.
type CreateContactDTO struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
	Email     string `json:"email"     binding:"required,email"`
	Subject   string `json:"subject"   binding:"required"`
	Message   string `json:"message"   binding:"required"`
}

// Handler handles contact form submissions.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

func NewHandler(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contacts", h.create)
}

// create POST /api/contacts
func (h *Handler) create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact := models.ContactModel{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Subject:   dto.Subject,
		Message:   dto.Message,
	}
	if err := h.store.CreateContact(&contact); err != nil {
		h.log.Error("contact create failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"contact": contact})
}
