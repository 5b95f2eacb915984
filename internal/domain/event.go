package domain

import "time"

type EventType string

const (
	EventCommentCreated EventType = "comment.created"
	EventCommentDeleted EventType = "comment.deleted"
	EventArticleVoted   EventType = "article.voted"
)

// Event describes a committed mutation. Only the fields relevant to Type are set.
type Event struct {
	Type       EventType `json:"type"`
	ArticleID  int64     `json:"article_id,omitempty"`
	CommentID  int64     `json:"comment_id,omitempty"`
	Author     string    `json:"author,omitempty"`
	IncVotes   int       `json:"inc_votes,omitempty"`
	Votes      int       `json:"votes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
