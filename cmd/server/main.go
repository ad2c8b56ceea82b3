package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/noor-names/internal/app"
	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/logger"
	"github.com/oggyb/noor-names/internal/server"
	"github.com/oggyb/noor-names/internal/service/account"
	"github.com/oggyb/noor-names/internal/service/explore"
	"github.com/oggyb/noor-names/internal/service/favorites"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Load the catalog once; it is read-only for the life of the process
	records, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to load catalog", "err", err)
		os.Exit(1)
	}
	cat := catalog.New(records, cfg.Catalog.SearchLimit)
	log.Info("catalog loaded", "names", cat.Len())

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	appCtx := app.New(cfg, database, redisCache, log, cat)

	registrars := []server.Registrar{
		explore.NewRegistrar(appCtx),
		favorites.NewRegistrar(appCtx),
		account.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedDemoData(database, records, 3, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go appCtx.Sessions.Run(ctx, cfg.Auth.SweepInterval, appCtx.Auth.Alive)

	log.Info("starting gRPC server", "addr", cfg.GRPC.Host+":"+cfg.GRPC.Port)
	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("gRPC server stopped", "err", err)
	}
}
