package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news_api/internal/domain"
)

type ArticleService struct {
	articles  ArticleStore
	comments  CommentStore
	topics    TopicStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewArticleService(
	articles ArticleStore,
	comments CommentStore,
	topics TopicStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ArticleService {
	return &ArticleService{
		articles:  articles,
		comments:  comments,
		topics:    topics,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("service", "articles"),
	}
}

// List returns the articles matching q. An empty result for a topic filter is
// only valid when the topic exists.
func (s *ArticleService) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	articles, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	if len(articles) == 0 && q.Topic != "" {
		exists, err := s.topics.Exists(ctx, q.Topic)
		if err != nil {
			return nil, fmt.Errorf("check topic: %w", err)
		}
		if !exists {
			return nil, domain.E(domain.KindInvalidTopic, fmt.Errorf("topic %q", q.Topic))
		}
	}

	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

func (s *ArticleService) Comments(ctx context.Context, id int64) ([]domain.ArticleComment, error) {
	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check article %d: %w", id, err)
	}
	if !exists {
		return nil, domain.E(domain.KindArticleNotFound, fmt.Errorf("article %d", id))
	}

	comments, err := s.comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments of article %d: %w", id, err)
	}
	return comments, nil
}

// Vote adds incVotes to the article. A nil incVotes means the request carried
// no usable integer; it is rejected only after the article is known to exist.
func (s *ArticleService) Vote(ctx context.Context, id int64, incVotes *int) (*domain.Article, error) {
	var article *domain.Article

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.articles.LockForUpdate(ctx, id); err != nil {
			return err
		}
		if incVotes == nil {
			return domain.E(domain.KindBadRequest, errors.New("inc_votes must be an integer"))
		}

		var err error
		article, err = s.articles.AddVotes(ctx, id, *incVotes)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("vote on article %d: %w", id, err)
	}

	publish(ctx, s.publisher, s.logger, domain.Event{
		Type:       domain.EventArticleVoted,
		ArticleID:  article.ArticleID,
		IncVotes:   *incVotes,
		Votes:      article.Votes,
		OccurredAt: time.Now().UTC(),
	})

	return article, nil
}

// publish is best effort: the mutation is already committed.
func publish(ctx context.Context, p Publisher, logger *slog.Logger, event domain.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish event",
			"type", event.Type,
			"error", err,
		)
	}
}
