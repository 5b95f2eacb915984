package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"news_api/internal/domain"
)

// ListOptions filters and orders an article listing. Zero values leave the
// server defaults in place.
type ListOptions struct {
	SortBy string
	Order  string
	Topic  string
}

func (o ListOptions) encode() string {
	v := url.Values{}
	if o.SortBy != "" {
		v.Set("sort_by", o.SortBy)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
	if o.Topic != "" {
		v.Set("topic", o.Topic)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) Topics(ctx context.Context) ([]domain.Topic, error) {
	var resp struct {
		Topics []domain.Topic `json:"topics"`
	}
	if err := c.get(ctx, "/api/topics", &resp); err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}
	return resp.Topics, nil
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Users []domain.User `json:"users"`
	}
	if err := c.get(ctx, "/api/users", &resp); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return resp.Users, nil
}

func (c *Client) Articles(ctx context.Context, opts ListOptions) ([]domain.Article, error) {
	var resp struct {
		Articles []domain.Article `json:"articles"`
	}
	if err := c.get(ctx, "/api/articles"+opts.encode(), &resp); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	return resp.Articles, nil
}

func (c *Client) Article(ctx context.Context, id int64) (*domain.Article, error) {
	var resp struct {
		Article *domain.Article `json:"article"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/articles/%d", id), &resp); err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return resp.Article, nil
}

func (c *Client) ArticleComments(ctx context.Context, id int64) ([]domain.ArticleComment, error) {
	var resp struct {
		Comments []domain.ArticleComment `json:"comments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/articles/%d/comments", id), &resp); err != nil {
		return nil, fmt.Errorf("get comments of article %d: %w", id, err)
	}
	return resp.Comments, nil
}

// Vote adds incVotes to the article's votes. It is not retried.
func (c *Client) Vote(ctx context.Context, id int64, incVotes int) (*domain.Article, error) {
	body := map[string]int{"inc_votes": incVotes}
	var resp struct {
		Article *domain.Article `json:"article"`
	}
	if err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/articles/%d", id), body, &resp); err != nil {
		return nil, fmt.Errorf("vote article %d: %w", id, err)
	}
	return resp.Article, nil
}

func (c *Client) PostComment(ctx context.Context, articleID int64, username, text string) (*domain.Comment, error) {
	body := map[string]string{"username": username, "body": text}
	var resp struct {
		Comment *domain.Comment `json:"comment"`
	}
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", articleID), body, &resp); err != nil {
		return nil, fmt.Errorf("post comment on article %d: %w", articleID, err)
	}
	return resp.Comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", commentID), nil, nil); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}
