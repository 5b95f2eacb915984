package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

type RouterConfig struct {
	RequestTimeout time.Duration
}

func NewRouter(h *Handler, cfg RouterConfig, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(requestTimeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Get("/", h.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Endpoints)
		r.Get("/topics", h.ListTopics)
		r.Get("/users", h.ListUsers)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.ListArticles)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", h.GetArticle)
				r.Patch("/", h.VoteArticle)
				r.Get("/comments", h.ListArticleComments)
				r.Post("/comments", h.CreateComment)
			})
		})

		r.Delete("/comments/{comment_id}", h.DeleteComment)
	})

	return r
}
