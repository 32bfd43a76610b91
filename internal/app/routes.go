package app

import (
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/middleware"
	"github.com/seva-foundation/core/internal/modules/auth"
	"github.com/seva-foundation/core/internal/modules/blog"
	"github.com/seva-foundation/core/internal/modules/contact"
	"github.com/seva-foundation/core/internal/modules/donation"
	"github.com/seva-foundation/core/internal/modules/health"
	"github.com/seva-foundation/core/internal/modules/newsletter"
	"github.com/seva-foundation/core/internal/modules/stats"
	"github.com/seva-foundation/core/internal/modules/volunteer"
	"github.com/seva-foundation/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Rate limiting and duplicate-submission protection need Redis; both
	// are skipped when it is not configured.
	if a.rc != nil {
		r.Use(middleware.RateLimit(a.rc.Raw()))
		r.Use(middleware.Idempotence(a.rc.Raw()))
	}

	api := r.Group("/api")

	backend := "memory"
	if a.db != nil {
		backend = "mysql"
	}
	health.RegisterRoutes(api, backend, a.db)

	contact.NewHandler(a.store, a.logger).RegisterRoutes(api)
	volunteer.NewHandler(a.store, a.logger).RegisterRoutes(api)
	donation.NewHandler(a.store, a.logger).RegisterRoutes(api)
	newsletter.NewHandler(a.store, a.logger).RegisterRoutes(api)
	auth.NewHandler(a.cfg.Admin, a.logger).RegisterRoutes(api)

	admin := api.Group("/admin", middleware.Auth(a.cfg))

	blogSvc := blog.NewService(a.store)
	blog.NewHandler(blogSvc, a.logger).RegisterRoutes(api, admin)
	stats.NewHandler(a.store, a.logger).RegisterRoutes(admin)
}
