package service

import (
	"context"
	"fmt"
	"log/slog"

	"news_api/internal/domain"
)

// CatalogService serves topics and users, through the cache when one is set.
type CatalogService struct {
	topics TopicStore
	users  UserStore
	cache  ReferenceCache
	logger *slog.Logger
}

func NewCatalogService(topics TopicStore, users UserStore, cache ReferenceCache, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		topics: topics,
		users:  users,
		cache:  cache,
		logger: logger.With("service", "catalog"),
	}
}

func (s *CatalogService) Topics(ctx context.Context) ([]domain.Topic, error) {
	if s.cache != nil {
		topics, ok, err := s.cache.Topics(ctx)
		if err != nil {
			s.logger.Warn("topic cache read failed", "error", err)
		} else if ok {
			return topics, nil
		}
	}

	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetTopics(ctx, topics); err != nil {
			s.logger.Warn("topic cache write failed", "error", err)
		}
	}
	return topics, nil
}

func (s *CatalogService) Users(ctx context.Context) ([]domain.User, error) {
	if s.cache != nil {
		users, ok, err := s.cache.Users(ctx)
		if err != nil {
			s.logger.Warn("user cache read failed", "error", err)
		} else if ok {
			return users, nil
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetUsers(ctx, users); err != nil {
			s.logger.Warn("user cache write failed", "error", err)
		}
	}
	return users, nil
}
