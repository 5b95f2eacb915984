//go:build integration

package cache

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"news_api/internal/domain"
)

type RedisIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	cache     *Redis
}

func (s *RedisIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	cache, err := NewRedis(s.ctx, Config{Addr: endpoint, TTL: time.Minute}, logger)
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisIntegrationSuite) TearDownSuite() {
	if s.cache != nil {
		s.cache.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.Require().NoError(s.cache.Invalidate(s.ctx))
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}

func (s *RedisIntegrationSuite) TestTopics_MissThenHit() {
	_, ok, err := s.cache.Topics(s.ctx)
	s.NoError(err)
	s.False(ok)

	topics := []domain.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}
	s.NoError(s.cache.SetTopics(s.ctx, topics))

	got, ok, err := s.cache.Topics(s.ctx)
	s.NoError(err)
	s.True(ok)
	s.Equal(topics, got)
}

func (s *RedisIntegrationSuite) TestUsers_EmptyListIsAHit() {
	s.NoError(s.cache.SetUsers(s.ctx, []domain.User{}))

	got, ok, err := s.cache.Users(s.ctx)
	s.NoError(err)
	s.True(ok)
	s.Empty(got)
}

func (s *RedisIntegrationSuite) TestCorruptEntryIsAMiss() {
	s.NoError(s.cache.client.Set(s.ctx, usersKey, "not json", time.Minute).Err())

	_, ok, err := s.cache.Users(s.ctx)
	s.NoError(err)
	s.False(ok)

	exists, err := s.cache.client.Exists(s.ctx, usersKey).Result()
	s.NoError(err)
	s.Equal(int64(0), exists)
}

func (s *RedisIntegrationSuite) TestInvalidate() {
	s.NoError(s.cache.SetTopics(s.ctx, []domain.Topic{{Slug: "cats"}}))
	s.NoError(s.cache.SetUsers(s.ctx, []domain.User{{Username: "lurker"}}))

	s.NoError(s.cache.Invalidate(s.ctx))

	_, ok, err := s.cache.Topics(s.ctx)
	s.NoError(err)
	s.False(ok)

	_, ok, err = s.cache.Users(s.ctx)
	s.NoError(err)
	s.False(ok)
}
