package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/lowcarbmkt/order-report/internal/catalog"
	"github.com/lowcarbmkt/order-report/internal/config"
	"github.com/lowcarbmkt/order-report/internal/excel"
	httpapi "github.com/lowcarbmkt/order-report/internal/interfaces/http"
	"github.com/lowcarbmkt/order-report/internal/repository"
	"github.com/lowcarbmkt/order-report/internal/store"
	"github.com/lowcarbmkt/order-report/pkg/database"
	"github.com/lowcarbmkt/order-report/pkg/utils"
)

func main() {
	// Local overrides first so config.Load sees them via AutomaticEnv.
	_ = gotenv.Load()

	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting order report service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Bootstrap(); err != nil {
		logger.Fatal("Failed to bootstrap database schema", zap.Error(err))
	}

	catalogs, err := catalog.NewManager(cfg.Catalog.Path, logger)
	if err != nil {
		logger.Fatal("Failed to load product catalog", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
		logger.Fatal("Failed to create report output directory", zap.Error(err))
	}

	var stores store.Lookup
	if cfg.Stores.Endpoint != "" {
		stores = store.NewClient(store.ClientConfig{
			Endpoint: cfg.Stores.Endpoint,
			Timeout:  cfg.Stores.Timeout,
		}, logger)
	} else {
		logger.Warn("Store lookup endpoint not configured; SHOPLINE store pickups will carry address errors")
	}

	runRepo := repository.NewRunRepository(db.DB, logger)
	handlers := httpapi.NewHandlers(
		catalogs,
		stores,
		runRepo,
		excel.NewWriter(logger),
		cfg.Report.OutputDir,
		logger,
	)

	server := httpapi.NewServer(httpapi.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		MaxUploadMB:  cfg.Server.MaxUploadMB,
	}, handlers, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
