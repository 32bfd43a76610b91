package donation

import (
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/models"
	"github.com/seva-foundation/core/internal/pkg/response"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
)

// CreateDonationDTO is the donation intent payload. Amount is whole rupees.
type CreateDonationDTO struct {
	Amount     int    `json:"amount"     binding:"required,gt=0"`
	IsMonthly  bool   `json:"isMonthly"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail" binding:"omitempty,email"`
}

// Handler handles donation intents.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

func NewHandler(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/donations", h.create)
}

// create POST /api/donations
func (h *Handler) create(c *gin.Context) {
	var dto CreateDonationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	donation := models.DonationModel{
		Amount:     dto.Amount,
		IsMonthly:  dto.IsMonthly,
		DonorName:  dto.DonorName,
		DonorEmail: dto.DonorEmail,
		Status:     models.DonationStatusPending,
	}
	if err := h.store.CreateDonation(&donation); err != nil {
		h.log.Error("donation create failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{
		"donation":   donation,
		"paymentUrl": checkoutURL(&donation),
	})
}
