package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"procurement/cmd"
	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/verificationrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := getConfigs()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetPendingReconciliationsQueryHandler(),
		root.CreateVerifyInvoicesCommandHandler(),
		config.RetrySchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&root)

	go func() {
		if serveErr := e.Start("0.0.0.0:" + config.HTTPPort); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func buildWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateCreateDeliveryCommandHandler(),
		root.CreateUpdateDeliveryCommandHandler(),
		root.CreateDeleteDeliveryCommandHandler(),
		root.CreateValidateDeliveryCommandHandler(),
		root.CreateDevalidateDeliveryCommandHandler(),
		root.CreateVerifyInvoicesCommandHandler(),
		root.CreateClearVerificationCacheCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetDeliveriesQueryHandler(),
		root.CreateCheckInvoiceUsageQueryHandler(),
		root.AccessScope(),
	)
	server.RegisterRoutes(e)

	return e
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&verificationrepo.CacheEntryDTO{},
	); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func getConfigs() (cmd.Config, error) {
	// Missing .env is fine in containerized deployments where the
	// environment is set directly.
	_ = godotenv.Load(".env")

	verifyTimeout, err := envDuration("VERIFY_TIMEOUT", 5*time.Second)
	if err != nil {
		return cmd.Config{}, err
	}
	cacheTTL, err := envDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return cmd.Config{}, err
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		LedgerBaseURL:   os.Getenv("LEDGER_BASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		CacheTTL:        cacheTTL,
		VerifyTimeout:   verifyTimeout,
		RetrySchedule:   envOrDefault("RECONCILIATION_RETRY_SCHEDULE", "0 */15 * * * *"),
		DefaultStoreIDs: envList("DEFAULT_STORE_IDS"),
		ElevatedUserIDs: envList("ELEVATED_USER_IDS"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
