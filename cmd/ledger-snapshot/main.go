package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"

	"go-inventory-hub/internal/repository"
	"go-inventory-hub/pkg/config"
	"go-inventory-hub/pkg/database"
	"go-inventory-hub/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ledger-snapshot prints the most recent ledger snapshot stored in the journal as JSON.
func main() {
	migrate := flag.Bool("migrate", false, "create the journal tables before reading")
	flag.Parse()

	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer log.Sync()

	if !cfg.Database.Enabled() {
		log.Fatal("DATABASE_URL or DB_HOST must be set")
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database.DSN())
	if err != nil {
		log.Fatal("journal database unavailable", zap.Error(err))
	}
	journal := repository.NewJournalRepo(db)
	if *migrate {
		if err := journal.Migrate(); err != nil {
			log.Fatal("journal migration failed", zap.Error(err))
		}
	}

	// 3. Find latest snapshot
	snap, err := journal.LatestSnapshot()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn("no ledger snapshot recorded yet")
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("read ledger snapshot", zap.Error(err))
	}

	// 4. Print
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatal("encode ledger snapshot", zap.Error(err))
	}
}
