package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"news_api/internal/domain"
)

const (
	topicsKey = "news_api:topics"
	usersKey  = "news_api:users"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis caches the topic and user lists as JSON blobs with a fixed TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedis(ctx context.Context, cfg Config, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("connected to redis", "addr", cfg.Addr, "ttl", cfg.TTL)

	return &Redis{
		client: client,
		ttl:    cfg.TTL,
		logger: logger.With("component", "cache"),
	}, nil
}

func (r *Redis) Topics(ctx context.Context) ([]domain.Topic, bool, error) {
	var topics []domain.Topic
	ok, err := r.get(ctx, topicsKey, &topics)
	return topics, ok, err
}

func (r *Redis) SetTopics(ctx context.Context, topics []domain.Topic) error {
	return r.set(ctx, topicsKey, topics)
}

func (r *Redis) Users(ctx context.Context) ([]domain.User, bool, error) {
	var users []domain.User
	ok, err := r.get(ctx, usersKey, &users)
	return users, ok, err
}

func (r *Redis) SetUsers(ctx context.Context, users []domain.User) error {
	return r.set(ctx, usersKey, users)
}

// Invalidate drops every cached list. Call it after reseeding the database.
func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, topicsKey, usersKey).Err(); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("dropping undecodable cache entry", "key", key, "error", err)
		_ = r.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (r *Redis) set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
