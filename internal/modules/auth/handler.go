package auth

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/config"
	"github.com/seva-foundation/core/internal/pkg/jwt"
	"github.com/seva-foundation/core/internal/pkg/response"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// LoginDTO is the admin login payload.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Handler issues admin tokens against the configured credential pair.
type Handler struct {
	admin config.AdminConfig
	log   *zap.Logger
}

func NewHandler(admin config.AdminConfig, log *zap.Logger) *Handler {
	return &Handler{admin: admin, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.login)
}

// login POST /api/admin/login
func (h *Handler) login(c *gin.Context) {
	if !h.admin.Enabled() {
		response.NotFound(c, "Admin authentication is not configured")
		return
	}

	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !h.verify(dto.Username, dto.Password) {
		response.Unauthorized(c)
		return
	}

	token, err := jwt.Sign(dto.Username, tokenTTL)
	if err != nil {
		h.log.Error("token sign failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"token": token})
}

func (h *Handler) verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(h.admin.Username)) != 1 {
		return false
	}
	if h.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.admin.Password)) == 1
}
