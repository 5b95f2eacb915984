package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"news_api/internal/cache"
	"news_api/internal/config"
	"news_api/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dataPath := flag.String("data", "testdata/seed.yaml", "path to seed dataset")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ds, err := postgres.LoadDataset(*dataPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", *dataPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.NewSeeder(db).Seed(ctx, ds); err != nil {
		logger.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	logger.Info("database seeded",
		"topics", len(ds.Topics),
		"users", len(ds.Users),
		"articles", len(ds.Articles),
		"comments", len(ds.Comments),
	)

	// Cached topic and user lists would otherwise outlive the reseed.
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedis(ctx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		}, logger)
		if err != nil {
			logger.Warn("skipping cache invalidation", "error", err)
			return
		}
		defer redisCache.Close()

		if err := redisCache.Invalidate(ctx); err != nil {
			logger.Warn("failed to invalidate cache", "error", err)
		}
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
