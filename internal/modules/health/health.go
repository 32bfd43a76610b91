package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the liveness endpoint. db is nil when the service
// runs on the in-memory store.
func RegisterRoutes(rg *gin.RouterGroup, backend string, db *gorm.DB) {
	rg.GET("/health", func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK

		body := gin.H{"store": backend}
		if db != nil {
			sqlDB, err := db.DB()
			dbOK := err == nil && sqlDB.Ping() == nil
			body["database"] = dbOK
			if !dbOK {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		body["status"] = status
		c.JSON(code, body)
	})
}
