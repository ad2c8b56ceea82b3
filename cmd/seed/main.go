package main

import (
	"flag"
	"os"

	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/logger"
)

func main() {
	users := flag.Int("users", 10, "number of demo accounts to create")
	flag.Parse()

	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	records, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to load catalog", "err", err)
		os.Exit(1)
	}

	if err := db.SeedDemoData(database, records, *users, log); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed")
}
