package main

import (
	"time"

	"github.com/studyring/reputation-backend/internal/clock"
	"github.com/studyring/reputation-backend/internal/config"
	"github.com/studyring/reputation-backend/internal/handlers"
	"github.com/studyring/reputation-backend/internal/ledger"
	"github.com/studyring/reputation-backend/internal/models"
	"github.com/studyring/reputation-backend/internal/services"
	"github.com/studyring/reputation-backend/internal/utils"
	"github.com/studyring/reputation-backend/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	clock         *clock.LogicalClock
	ledgerService *services.LedgerService
	journal       *services.JournalService
	sweeper       *services.SweeperService
	taskQueue     services.TaskQueue
	worker        *services.Worker
	authHandler   *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, engine, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Reputation engine and its logical clock
	engine := ledger.New(ledger.Config{
		ExpirationTicks: ledger.Tick(cfg.Ledger.ExpirationTicks),
	})
	clk := clock.New(1)
	clk.Start(time.Duration(cfg.Ledger.TickIntervalSeconds) * time.Second)

	journal := services.NewJournalService(models.GetDB())
	ledgerService := services.NewLedgerService(engine, clk, journal)
	processor := services.NewMaintenanceProcessor(ledgerService)

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(processor)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.NewWorker(&cfg.Redis)
		worker.SetProcessor(processor)
		if err := worker.Start(); err != nil {
			logger.Warn().Err(err).Msg("Failed to start async worker")
			worker = nil
		}
	}

	// Start the expiration sweep scheduler
	sweeper := services.NewSweeperService(taskQueue, &cfg.Ledger)
	sweeper.Start()

	// Create default admin account
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin account")
	}

	return &appServices{
		clock:         clk,
		ledgerService: ledgerService,
		journal:       journal,
		sweeper:       sweeper,
		taskQueue:     taskQueue,
		worker:        worker,
		authHandler:   authHandler,
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.sweeper.Stop()
	s.clock.Stop()
	logger.Info().Msg("Schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
