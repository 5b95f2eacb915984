package httpapi

import (
	"net/http"

	"news_api/internal/domain"
)

//--
// Request payloads
//--

// VoteRequest carries inc_votes. IncVotes stays nil when the field is
// missing, null, or not an integer.
type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

func (v *VoteRequest) Bind(r *http.Request) error {
	return nil
}

type CommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (c *CommentRequest) Bind(r *http.Request) error {
	return nil
}

func (c *CommentRequest) NewComment() domain.NewComment {
	return domain.NewComment{Username: c.Username, Body: c.Body}
}

//--
// Response payloads
//--

type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

func (rd *TopicsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.Topics == nil {
		rd.Topics = []domain.Topic{}
	}
	return nil
}

type UsersResponse struct {
	Users []domain.User `json:"users"`
}

func (rd *UsersResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.Users == nil {
		rd.Users = []domain.User{}
	}
	return nil
}

type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

func (rd *ArticlesResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.Articles == nil {
		rd.Articles = []domain.Article{}
	}
	for i := range rd.Articles {
		rd.Articles[i].CreatedAt = rd.Articles[i].CreatedAt.UTC()
	}
	return nil
}

type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Article.CreatedAt = rd.Article.CreatedAt.UTC()
	return nil
}

type CommentsResponse struct {
	Comments []domain.ArticleComment `json:"comments"`
}

func (rd *CommentsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if rd.Comments == nil {
		rd.Comments = []domain.ArticleComment{}
	}
	for i := range rd.Comments {
		rd.Comments[i].CreatedAt = rd.Comments[i].CreatedAt.UTC()
	}
	return nil
}

type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

func (rd *CommentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Comment.CreatedAt = rd.Comment.CreatedAt.UTC()
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (rd *MessageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
