package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"news_api/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.ArticleComment, error) {
	query := `
		SELECT comment_id, votes, created_at, author, body
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`

	comments := []domain.ArticleComment{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &comments, query, articleID); err != nil {
		return nil, classify(err)
	}
	return comments, nil
}

// Create inserts a comment; votes and created_at take their column defaults.
func (s *CommentStore) Create(ctx context.Context, articleID int64, c domain.NewComment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at`

	var comment domain.Comment
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &comment, query, articleID, c.Username, c.Body); err != nil {
		return nil, classify(err)
	}
	return &comment, nil
}

// Delete removes a comment and reports how many rows went with it.
func (s *CommentStore) Delete(ctx context.Context, commentID int64) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", commentID)
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}
