package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventory-hub/internal/handler"
	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"
	"go-inventory-hub/internal/service"
	"go-inventory-hub/internal/ws"
	"go-inventory-hub/pkg/config"
	"go-inventory-hub/pkg/database"
	"go-inventory-hub/pkg/logger"
	"go-inventory-hub/pkg/redisbus"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer log.Sync()

	// 2. Ledger with the documented opening stock
	now := time.Now().UTC()
	catalog := model.DefaultCatalog()
	l := ledger.New(model.DefaultLedgerSeed(now), ledger.NewReplenishmentClock(now, cfg.Ledger.RefillIncrement))
	log.Info("ledger seeded", zap.Int("refill_increment", cfg.Ledger.RefillIncrement))

	// 3. Optional journal database
	journal := repository.NewNoopJournal()
	if cfg.Database.Enabled() {
		db, err := database.ConnectDB(cfg.Database.DSN())
		if err != nil {
			log.Fatal("journal database unavailable", zap.Error(err))
		}
		journal = repository.NewJournalRepo(db)
		if err := journal.Migrate(); err != nil {
			log.Fatal("journal migration failed", zap.Error(err))
		}
		log.Info("journal enabled")
	}

	// 4. Setup WebSocket Hub & event sinks
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	sinks := []service.Broadcaster{wsHub}
	if cfg.Redis.Enabled() {
		publisher := redisbus.NewPublisher(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.Channel)
		defer publisher.Close()
		sinks = append(sinks, publisher)
		log.Info("redis stock events enabled", zap.String("channel", publisher.Channel()))
	}
	events := service.NewEventPublisher(log.Named("events"), sinks...)

	// 5. Dependency Injection (Wiring Layers)
	txRepo := repository.NewTransactionRepo()
	distRepo := repository.NewDistributionRepo()
	restockRepo := repository.NewRestockRepo()

	invService := service.NewInventoryService(catalog, l)
	txService := service.NewTransactionService(catalog, l, txRepo, journal, events, log)
	distService := service.NewDistributionService(catalog, l, distRepo, journal, events, log)
	restockService := service.NewRestockService(catalog, restockRepo, journal, events, log)
	analyticsService := service.NewAnalyticsService(catalog, l, txRepo, service.DefaultThresholds)
	dashService := service.NewDashboardService(catalog, l, txRepo, restockRepo, analyticsService, service.DefaultThresholds)
	snapshotService := service.NewSnapshotService(l, journal, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Database.Enabled() {
		go snapshotService.Run(ctx, cfg.Ledger.SnapshotInterval)
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ErrorHandler:          handler.ErrorHandler(log),
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	handler.SetupRoutes(app, handler.Handlers{
		Inventory:    handler.NewInventoryHandler(invService),
		Transaction:  handler.NewTransactionHandler(txService),
		Distribution: handler.NewDistributionHandler(distService),
		Restock:      handler.NewRestockHandler(restockService),
		Dashboard:    handler.NewDashboardHandler(dashService),
	})
	ws.Mount(app, "/ws", wsHub)

	// 8. Graceful Shutdown
	go func() {
		log.Info("listening", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Panic("server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()
	if cfg.Database.Enabled() {
		if _, err := snapshotService.TakeSnapshot(); err != nil {
			log.Error("final ledger snapshot failed", zap.Error(err))
		}
	}
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	wsHub.Stop()

	log.Info("server exited")
}
