package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/civicstack/token-ledger/internal/adapter"
	"github.com/civicstack/token-ledger/internal/anchor"
	"github.com/civicstack/token-ledger/internal/config"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/store"
	"github.com/civicstack/token-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "anchor-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Anchor Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize the anchoring notary client
	httpClient := adapter.NewHTTPClient(cfg.Anchor.Timeout)
	notary := anchor.NewHTTPNotary(cfg.Anchor.URL, httpClient)
	logger.InfoCtx(ctx, "Initialized anchoring client", zap.String("url", cfg.Anchor.URL))

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Initialize anchor reconciliation sweeper
	sweeperConfig := &sweeper.AnchorReconcileConfig{
		BatchSize:      cfg.AnchorSweeper.BatchSize,
		WorkerPoolSize: cfg.AnchorSweeper.Worker.WorkerPoolSize,
		GraceWindow:    cfg.AnchorSweeper.GraceWindow,
	}
	anchorSweeper := sweeper.NewAnchorReconcileSweeper(sweeperConfig, dataStore, notary, clock)

	logger.InfoCtx(ctx, "Initialized anchor reconciliation sweeper (continuous mode)",
		zap.Int("batch_size", cfg.AnchorSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.AnchorSweeper.Worker.WorkerPoolSize),
		zap.Duration("grace_window", cfg.AnchorSweeper.GraceWindow),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := anchorSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := anchorSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Anchor sweeper stopped")
}
