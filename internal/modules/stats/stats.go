package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/pkg/response"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard counters.
type Handler struct {
	store store.Store
	log   *zap.Logger
}

func NewHandler(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.get)
}

// get GET /api/admin/stats
func (h *Handler) get(c *gin.Context) {
	s, err := h.store.Stats()
	if err != nil {
		h.log.Error("stats failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"stats": s})
}
