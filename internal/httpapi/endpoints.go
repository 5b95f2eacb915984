package httpapi

// Endpoint describes one route for GET /api.
type Endpoint struct {
	Description     string                 `json:"description"`
	Queries         []string               `json:"queries"`
	RequestBody     map[string]interface{} `json:"requestBody,omitempty"`
	ExampleResponse map[string]interface{} `json:"exampleResponse,omitempty"`
}

var exampleArticle = map[string]interface{}{
	"article_id":      1,
	"title":           "Living in the shadow of a great man",
	"topic":           "mitch",
	"author":          "butter_bridge",
	"body":            "I find this existence challenging",
	"created_at":      "2020-07-09T20:11:00Z",
	"votes":           100,
	"article_img_url": nil,
	"comment_count":   11,
}

var endpoints = map[string]Endpoint{
	"GET /api": {
		Description: "serves a description of every endpoint of this api",
		Queries:     []string{},
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		Queries:     []string{},
		ExampleResponse: map[string]interface{}{
			"topics": []interface{}{
				map[string]interface{}{"slug": "mitch", "description": "The man, the Mitch, the legend"},
			},
		},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
		ExampleResponse: map[string]interface{}{
			"users": []interface{}{
				map[string]interface{}{
					"username":   "butter_bridge",
					"name":       "jonny",
					"avatar_url": "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
				},
			},
		},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles with their comment counts",
		Queries:     []string{"topic", "sort_by", "order"},
		ExampleResponse: map[string]interface{}{
			"articles": []interface{}{exampleArticle},
		},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment count",
		Queries:     []string{},
		ExampleResponse: map[string]interface{}{
			"article": exampleArticle,
		},
	},
	"PATCH /api/articles/:article_id": {
		Description: "adds inc_votes to the article's votes and serves the updated article",
		Queries:     []string{},
		RequestBody: map[string]interface{}{"inc_votes": 10},
		ExampleResponse: map[string]interface{}{
			"article": exampleArticle,
		},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves the comments of an article, newest first",
		Queries:     []string{},
		ExampleResponse: map[string]interface{}{
			"comments": []interface{}{
				map[string]interface{}{
					"comment_id": 5,
					"votes":      0,
					"created_at": "2020-11-03T21:00:00Z",
					"author":     "icellusedkars",
					"body":       "I hate streaming noses",
				},
			},
		},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article and serves it",
		Queries:     []string{},
		RequestBody: map[string]interface{}{"username": "butter_bridge", "body": "hi"},
		ExampleResponse: map[string]interface{}{
			"comment": map[string]interface{}{
				"comment_id": 19,
				"article_id": 1,
				"author":     "butter_bridge",
				"body":       "hi",
				"votes":      0,
				"created_at": "2024-01-01T00:00:00Z",
			},
		},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment and serves no content",
		Queries:     []string{},
	},
}

type EndpointsResponse struct {
	Endpoints map[string]Endpoint `json:"endpoints"`
}
