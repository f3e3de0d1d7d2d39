package handler

import (
	"net/http"

	appmw "club-mareva-site/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures a new chi router.
func NewRouter(contentHandler *ContentHandler, formsHandler *FormsHandler, errorMiddleware func(appmw.AppHandler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/posts", errorMiddleware(contentHandler.listPosts))
		r.Method(http.MethodGet, "/posts/latest", errorMiddleware(contentHandler.latestPosts))
		r.Method(http.MethodGet, "/posts/{slug}", errorMiddleware(contentHandler.postBySlug))

		r.Method(http.MethodGet, "/events", errorMiddleware(contentHandler.listEvents))
		r.Method(http.MethodGet, "/events/slugs", errorMiddleware(contentHandler.eventSlugs))
		r.Method(http.MethodGet, "/events/{slug}", errorMiddleware(contentHandler.eventBySlug))
		r.Method(http.MethodPost, "/events/{id}/register", errorMiddleware(formsHandler.registerForEvent))

		r.Method(http.MethodGet, "/pages", errorMiddleware(contentHandler.listPages))
		r.Method(http.MethodGet, "/pages/{slug}", errorMiddleware(contentHandler.pageBySlug))

		r.Method(http.MethodGet, "/brands", errorMiddleware(contentHandler.listBrands))
		r.Method(http.MethodGet, "/brands/showcase", errorMiddleware(contentHandler.showcaseBrands))
		r.Method(http.MethodGet, "/brands/{id}", errorMiddleware(contentHandler.brandByID))

		r.Method(http.MethodGet, "/categories", errorMiddleware(contentHandler.listCategories))
		r.Method(http.MethodGet, "/authors", errorMiddleware(contentHandler.listAuthors))
		r.Method(http.MethodGet, "/signatures", errorMiddleware(contentHandler.listSignatures))

		r.Method(http.MethodPost, "/contact", errorMiddleware(formsHandler.submitContact))
		r.Method(http.MethodPost, "/cache/clear", errorMiddleware(contentHandler.clearCache))
	})

	return r
}
