package httpapi

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_api/internal/domain"
)

type ArticleService interface {
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Comments(ctx context.Context, id int64) ([]domain.ArticleComment, error)
	Vote(ctx context.Context, id int64, incVotes *int) (*domain.Article, error)
}

type CommentService interface {
	Create(ctx context.Context, articleID int64, nc domain.NewComment) (*domain.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type CatalogService interface {
	Topics(ctx context.Context) ([]domain.Topic, error)
	Users(ctx context.Context) ([]domain.User, error)
}
