package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"news_api/internal/domain"
)

type TopicStore struct {
	db *sqlx.DB
}

func NewTopicStore(db *sqlx.DB) *TopicStore {
	return &TopicStore{db: db}
}

func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	topics := []domain.Topic{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &topics,
		"SELECT slug, description FROM topics ORDER BY slug")
	return topics, classify(err)
}

func (s *TopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)", slug)
	return exists, classify(err)
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &users,
		"SELECT username, name, avatar_url FROM users ORDER BY username")
	return users, classify(err)
}

func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	return exists, classify(err)
}
