package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/seva-foundation/core/internal/config"
	"github.com/seva-foundation/core/internal/database"
	"github.com/seva-foundation/core/internal/middleware"
	jwtpkg "github.com/seva-foundation/core/internal/pkg/jwt"
	pkgredis "github.com/seva-foundation/core/internal/pkg/redis"
	"github.com/seva-foundation/core/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	store  store.Store
	db     *gorm.DB
	rc     *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config → store backend → optional
// Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		jwtpkg.SetSecret(secret)
	} else if cfg.Admin.Enabled() {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}

	var (
		st store.Store
		db *gorm.DB
	)
	if dsn := cfg.Database.DSNValue(); dsn != "" {
		var err error
		db, err = database.Connect(dsn, cfg.IsDev())
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		st = database.NewStore(db)
		logger.Info("using mysql store")
	} else {
		st = store.NewMemory()
		logger.Info("using in-memory store; records do not survive restarts")
	}

	var rc *pkgredis.Client
	if url := strings.TrimSpace(cfg.RedisURL); url != "" {
		var err error
		rc, err = pkgredis.Connect(url)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := originHost(origin)
			for _, pattern := range patterns {
				if originAllowed(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{cfg: cfg, router: router, store: st, db: db, rc: rc, logger: logger}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.cfg.Addr() }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases external connections.
func (a *App) Shutdown() {
	if a.rc != nil {
		_ = a.rc.Close()
	}
}
