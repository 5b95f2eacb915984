package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_api/internal/domain"
)

type CommentService struct {
	articles  ArticleStore
	comments  CommentStore
	users     UserStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewCommentService(
	articles ArticleStore,
	comments CommentStore,
	users UserStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		articles:  articles,
		comments:  comments,
		users:     users,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("service", "comments"),
	}
}

// Create checks, in order: both fields present, article exists, author
// exists. The article stays locked against deletion until the insert commits.
func (s *CommentService) Create(ctx context.Context, articleID int64, nc domain.NewComment) (*domain.Comment, error) {
	if err := nc.Validate(); err != nil {
		return nil, err
	}

	var comment *domain.Comment

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.articles.LockForShare(ctx, articleID); err != nil {
			return err
		}

		exists, err := s.users.Exists(ctx, nc.Username)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if !exists {
			return domain.E(domain.KindUserNotFound, fmt.Errorf("user %q", nc.Username))
		}

		comment, err = s.comments.Create(ctx, articleID, nc)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create comment on article %d: %w", articleID, err)
	}

	publish(ctx, s.publisher, s.logger, domain.Event{
		Type:       domain.EventCommentCreated,
		ArticleID:  comment.ArticleID,
		CommentID:  comment.CommentID,
		Author:     comment.Author,
		OccurredAt: time.Now().UTC(),
	})

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID int64) error {
	n, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	if n == 0 {
		return domain.E(domain.KindCommentNotFound, fmt.Errorf("comment %d", commentID))
	}

	publish(ctx, s.publisher, s.logger, domain.Event{
		Type:       domain.EventCommentDeleted,
		CommentID:  commentID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
