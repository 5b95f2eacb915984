package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"news_api/internal/domain"
)

const (
	msgPathNotFound   = "404 - Path not found"
	msgInternalServer = "500 - Internal server error"
)

// ErrResponse is the body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Message string `json:"message"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

var kindResponses = map[domain.Kind]ErrResponse{
	domain.KindInvalidQuery:    {HTTPStatusCode: http.StatusBadRequest, Message: "400 - Invalid query"},
	domain.KindInvalidTopic:    {HTTPStatusCode: http.StatusBadRequest, Message: "400 - Invalid topic"},
	domain.KindBadRequest:      {HTTPStatusCode: http.StatusBadRequest, Message: "400 - Bad request"},
	domain.KindArticleNotFound: {HTTPStatusCode: http.StatusNotFound, Message: "404 - Article not found"},
	domain.KindCommentNotFound: {HTTPStatusCode: http.StatusNotFound, Message: "404 - Comment not found"},
	domain.KindUserNotFound:    {HTTPStatusCode: http.StatusBadRequest, Message: "400 - User not found"},
}

// ErrFromError maps err to its response. Unclassified errors become a 500
// that does not reveal err.
func ErrFromError(err error) *ErrResponse {
	resp, ok := kindResponses[domain.KindOf(err)]
	if !ok {
		resp = ErrResponse{HTTPStatusCode: http.StatusInternalServerError, Message: msgInternalServer}
	}
	resp.Err = err
	return &resp
}

var ErrPathNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Message: msgPathNotFound}

// respondError is the single exit for failed requests.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrFromError(err)

	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	} else {
		h.logger.Debug("request rejected",
			"path", r.URL.Path,
			"status", resp.HTTPStatusCode,
			"error", err,
		)
	}

	if err := render.Render(w, r, resp); err != nil {
		h.logger.Error("failed to render error response", "error", err)
	}
}
