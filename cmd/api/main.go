package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/docgen"

	"news_api/internal/cache"
	"news_api/internal/config"
	"news_api/internal/httpapi"
	"news_api/internal/publisher"
	"news_api/internal/service"
	"news_api/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	routes := flag.Bool("routes", false, "print route documentation and exit")
	flag.Parse()

	logger := setupLogger("info")

	if *routes {
		h := httpapi.NewHandler(nil, nil, nil, logger)
		fmt.Println(docgen.MarkdownRoutesDoc(httpapi.NewRouter(h, httpapi.RouterConfig{}, logger), docgen.MarkdownOpts{
			ProjectPath: "news_api",
			Intro:       "Routes served by news_api.",
		}))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database", "driver", cfg.Database.Driver, "host", cfg.Database.Host)

	// Interface values stay nil when a backend is disabled.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	var refCache service.ReferenceCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedis(ctx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		refCache = redisCache
	}

	// Initialize stores
	articleStore := postgres.NewArticleStore(db)
	commentStore := postgres.NewCommentStore(db)
	topicStore := postgres.NewTopicStore(db)
	userStore := postgres.NewUserStore(db)
	txManager := postgres.NewTransactionManager(db)

	articleService := service.NewArticleService(articleStore, commentStore, topicStore, txManager, events, logger)
	commentService := service.NewCommentService(articleStore, commentStore, userStore, txManager, events, logger)
	catalogService := service.NewCatalogService(topicStore, userStore, refCache, logger)

	handler := httpapi.NewHandler(articleService, commentService, catalogService, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{RequestTimeout: cfg.Server.RequestTimeout}, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting news api",
			"addr", cfg.Server.Addr,
			"cache", cfg.Redis.Enabled,
			"events", cfg.RabbitMQ.Enabled,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return
	}
	logger.Info("server stopped")
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

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
