package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure the API reports to callers.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidQuery
	KindInvalidTopic
	KindBadRequest
	KindArticleNotFound
	KindCommentNotFound
	KindUserNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidQuery:
		return "invalid query"
	case KindInvalidTopic:
		return "invalid topic"
	case KindBadRequest:
		return "bad request"
	case KindArticleNotFound:
		return "article not found"
	case KindCommentNotFound:
		return "comment not found"
	case KindUserNotFound:
		return "user not found"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

// E builds a classified error; err may be nil.
func E(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
