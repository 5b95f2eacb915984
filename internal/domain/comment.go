package domain

import "time"

type Comment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	Author    string    `db:"author" json:"author"`
	Body      string    `db:"body" json:"body"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ArticleComment is a comment as listed under its article; the article id is implied.
type ArticleComment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Author    string    `db:"author" json:"author"`
	Body      string    `db:"body" json:"body"`
}

type NewComment struct {
	Username string
	Body     string
}

// Validate reports whether both fields carry text.
func (c NewComment) Validate() error {
	if c.Username == "" || c.Body == "" {
		return E(KindBadRequest, nil)
	}
	return nil
}
