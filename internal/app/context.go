package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/repository"
	"github.com/oggyb/noor-names/internal/session"
)

// AppContext holds shared dependencies (DB, Redis, Logger, catalog, sessions).
// It is built once in main and passed explicitly to every service.
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Catalog    *catalog.Catalog
	Auth       *auth.Service
	Sessions   *session.Registry
}

// New creates a new AppContext and wires the session registry to the auth
// service so sign-in/sign-out drive the favorites synchronizers.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, cat *catalog.Catalog) *AppContext {
	authSvc := auth.NewService(repository.NewUserRepository(db), rdb, cfg, logger.With("module", "auth"))
	sessions := session.NewRegistry(repository.NewFavoriteRepository(db), logger.With("module", "favorites"))
	sessions.Attach(authSvc)

	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Catalog:    cat,
		Auth:       authSvc,
		Sessions:   sessions,
	}
}
