package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/cmd"
	"restaurant/internal/pkg/errs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	gormDB := connectDB(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	restoreSnapshot(&app, logger)

	jobManager := app.CreateJobManager()
	if jobManager != nil {
		if err := jobManager.StartAll(); err != nil {
			logger.Error("Failed to start background jobs", "error", err)
			os.Exit(1)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file found, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		SnapshotIntervalSeconds: os.Getenv("SNAPSHOT_INTERVAL_SECONDS"),
		MenuItems:               os.Getenv("MENU_ITEMS"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// connectDB opens the snapshot database. Returns nil when DB_HOST is unset;
// the engine then runs in memory only.
func connectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	if configs.DBHost == "" {
		logger.Info("DB_HOST not set, running without snapshot persistence")
		return nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the snapshot database", "error", err)
		os.Exit(1)
	}
	return gormDB
}

func restoreSnapshot(app *cmd.CompositionRoot, logger *slog.Logger) {
	snapshots, ok := app.CreateSnapshotStore()
	if !ok {
		return
	}

	if err := snapshots.Migrate(); err != nil {
		logger.Error("Snapshot store migration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	snap, err := snapshots.Load(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		logger.Info("No snapshot found, starting with an empty store")
		return
	}
	if err != nil {
		logger.Error("Failed to load snapshot", "error", err)
		os.Exit(1)
	}

	if err = app.Store().RestoreSnapshot(snap); err != nil {
		logger.Error("Failed to restore snapshot", "error", err)
		os.Exit(1)
	}
	logger.Info("Snapshot restored",
		"takenAt", snap.TakenAt, "orders", len(snap.Orders), "staff", len(snap.Staff))
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Web server stopped with an error", "error", err)
		os.Exit(1)
	}
}
