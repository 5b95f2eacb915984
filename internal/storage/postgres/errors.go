package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"news_api/internal/domain"
)

const (
	codeInvalidTextRepresentation = "22P02"
	codeNumericValueOutOfRange    = "22003"
	codeNotNullViolation          = "23502"
	codeForeignKeyViolation       = "23503"
)

var constraintKinds = map[string]domain.Kind{
	"comments_article_id_fkey": domain.KindArticleNotFound,
	"comments_author_fkey":     domain.KindUserNotFound,
}

// classify attaches a domain kind to driver errors callers can act on.
// Errors it does not recognise are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	code, constraint, ok := sqlState(err)
	if !ok {
		return err
	}

	switch code {
	case codeInvalidTextRepresentation, codeNumericValueOutOfRange, codeNotNullViolation:
		return domain.E(domain.KindBadRequest, err)
	case codeForeignKeyViolation:
		if kind, ok := constraintKinds[constraint]; ok {
			return domain.E(kind, err)
		}
	}
	return err
}

func sqlState(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}
