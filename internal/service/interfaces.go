package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_api/internal/domain"
)

type ArticleStore interface {
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	LockForUpdate(ctx context.Context, id int64) error
	LockForShare(ctx context.Context, id int64) error
	AddVotes(ctx context.Context, id int64, inc int) (*domain.Article, error)
}

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64) ([]domain.ArticleComment, error)
	Create(ctx context.Context, articleID int64, c domain.NewComment) (*domain.Comment, error)
	Delete(ctx context.Context, commentID int64) (int64, error)
}

type TopicStore interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// ReferenceCache holds topics and users, which this API never mutates.
// A miss is reported as ok == false with a nil error.
type ReferenceCache interface {
	Topics(ctx context.Context) (topics []domain.Topic, ok bool, err error)
	SetTopics(ctx context.Context, topics []domain.Topic) error
	Users(ctx context.Context) (users []domain.User, ok bool, err error)
	SetUsers(ctx context.Context, users []domain.User) error
}
