package volunteer

import (
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/pkg/response"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
)

// CreateVolunteerDTO is the volunteer signup payload. Areas of interest
// match the website's signup form.
type CreateVolunteerDTO struct {
	FullName       string `json:"fullName"       binding:"required"`
	Email          string `json:"email"          binding:"required,email"`
	Phone          string `json:"phone"          binding:"required"`
	AreaOfInterest string `json:"areaOfInterest" binding:"required,oneof=education women-empowerment environmental spiritual-programs administrative"`
	Skills         string `json:"skills"`
}

// Handler handles volunteer signups.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

func NewHandler(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/volunteers", h.create)
}

// create POST /api/volunteers
func (h *Handler) create(c *gin.Context) {
	var dto CreateVolunteerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	volunteer := models.VolunteerModel{
		FullName:       dto.FullName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		AreaOfInterest: dto.AreaOfInterest,
		Skills:         dto.Skills,
	}
	if err := h.store.CreateVolunteer(&volunteer); err != nil {
		h.log.Error("volunteer create failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"volunteer": volunteer})
}
