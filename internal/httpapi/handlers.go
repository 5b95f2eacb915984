package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"news_api/internal/domain"
)

type Handler struct {
	articles ArticleService
	comments CommentService
	catalog  CatalogService
	logger   *slog.Logger
}

func NewHandler(articles ArticleService, comments CommentService, catalog CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		articles: articles,
		comments: comments,
		catalog:  catalog,
		logger:   logger.With("component", "httpapi"),
	}
}

// idParam reads a path id. Anything that is not a 32-bit integer is a bad
// request, matching the width of the serial columns.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.E(domain.KindBadRequest, fmt.Errorf("%s %q: %w", name, raw, err))
	}
	return id, nil
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, &MessageResponse{Message: "Root OK"})
}

func (h *Handler) Endpoints(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, EndpointsResponse{Endpoints: endpoints})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, ErrPathNotFound)
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.catalog.Topics(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &TopicsResponse{Topics: topics})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.catalog.Users(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &UsersResponse{Users: users})
}

func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := domain.ParseArticleQuery(params.Get("sort_by"), params.Get("order"), params.Get("topic"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	articles, err := h.articles.List(r.Context(), q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &ArticlesResponse{Articles: articles})
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &ArticleResponse{Article: article})
}

// VoteArticle hands a nil increment to the service when the body does not
// carry an integer inc_votes, so a missing article is still reported first.
func (h *Handler) VoteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data := &VoteRequest{}
	if err := render.Bind(r, data); err != nil {
		h.logger.Debug("unreadable vote body", "error", err)
		data.IncVotes = nil
	}

	article, err := h.articles.Vote(r.Context(), id, data.IncVotes)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &ArticleResponse{Article: article})
}

func (h *Handler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	comments, err := h.articles.Comments(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, &CommentsResponse{Comments: comments})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "article_id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data := &CommentRequest{}
	if err := render.Bind(r, data); err != nil {
		h.respondError(w, r, domain.E(domain.KindBadRequest, err))
		return
	}

	comment, err := h.comments.Create(r.Context(), id, data.NewComment())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	h.respond(w, r, &CommentResponse{Comment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "comment_id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.logger.Error("failed to render response", "path", r.URL.Path, "error", err)
	}
}
