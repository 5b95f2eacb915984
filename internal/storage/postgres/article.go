package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"news_api/internal/domain"
)

const articleColumns = `
	articles.article_id, articles.title, articles.topic, articles.author, articles.body,
	articles.created_at, articles.votes, articles.article_img_url`

const articleWithCount = `
	SELECT ` + articleColumns + `,
		COUNT(comments.comment_id)::int AS comment_count
	FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id`

// Sort expressions are the only SQL fragments that vary with the request;
// they come from this table, never from request text.
var sortExpressions = map[domain.SortColumn]string{
	domain.SortByAuthor:       "articles.author",
	domain.SortByTitle:        "articles.title",
	domain.SortByArticleID:    "articles.article_id",
	domain.SortByTopic:        "articles.topic",
	domain.SortByCreatedAt:    "articles.created_at",
	domain.SortByVotes:        "articles.votes",
	domain.SortByCommentCount: "comment_count",
}

var sortDirections = map[domain.SortOrder]string{
	domain.OrderAsc:  "ASC",
	domain.OrderDesc: "DESC",
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// buildListQuery renders the listing statement for q. Ties on the sort key are
// broken by ascending article_id so pages are stable.
func buildListQuery(q domain.ArticleQuery) (string, []interface{}, error) {
	expr, ok := sortExpressions[q.SortBy]
	if !ok {
		return "", nil, domain.E(domain.KindInvalidQuery, fmt.Errorf("sort column %q", q.SortBy))
	}
	dir, ok := sortDirections[q.Order]
	if !ok {
		return "", nil, domain.E(domain.KindInvalidQuery, fmt.Errorf("sort order %q", q.Order))
	}

	var sb strings.Builder
	var args []interface{}

	sb.WriteString(articleWithCount)
	if q.Topic != "" {
		args = append(args, q.Topic)
		sb.WriteString("\n\tWHERE articles.topic = $1")
	}
	sb.WriteString("\n\tGROUP BY articles.article_id")
	sb.WriteString("\n\tORDER BY ")
	sb.WriteString(expr)
	sb.WriteString(" ")
	sb.WriteString(dir)
	if q.SortBy != domain.SortByArticleID {
		sb.WriteString(", articles.article_id ASC")
	}

	return sb.String(), args, nil
}

func (s *ArticleStore) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	articles := []domain.Article{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, args...); err != nil {
		return nil, classify(err)
	}
	return articles, nil
}

func (s *ArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	query := articleWithCount + `
	WHERE articles.article_id = $1
	GROUP BY articles.article_id`

	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.KindArticleNotFound, err)
	}
	if err != nil {
		return nil, classify(err)
	}
	return &article, nil
}

func (s *ArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id)
	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

// LockForUpdate takes a row lock that blocks concurrent writers until the
// surrounding transaction ends.
func (s *ArticleStore) LockForUpdate(ctx context.Context, id int64) error {
	return s.lock(ctx, "SELECT article_id FROM articles WHERE article_id = $1 FOR UPDATE", id)
}

// LockForShare keeps the row from being deleted until the surrounding
// transaction ends while still allowing other readers.
func (s *ArticleStore) LockForShare(ctx context.Context, id int64) error {
	return s.lock(ctx, "SELECT article_id FROM articles WHERE article_id = $1 FOR SHARE", id)
}

func (s *ArticleStore) lock(ctx context.Context, query string, id int64) error {
	var locked int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &locked, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.E(domain.KindArticleNotFound, err)
	}
	return classify(err)
}

// AddVotes adds inc to the article's votes and returns the updated article.
func (s *ArticleStore) AddVotes(ctx context.Context, id int64, inc int) (*domain.Article, error) {
	query := `
	WITH updated AS (
		UPDATE articles SET votes = votes + $2
		WHERE article_id = $1
		RETURNING *
	)
	SELECT ` + strings.ReplaceAll(articleColumns, "articles.", "updated.") + `,
		(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id)::int AS comment_count
	FROM updated`

	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, id, inc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.KindArticleNotFound, err)
	}
	if err != nil {
		return nil, classify(err)
	}
	return &article, nil
}
