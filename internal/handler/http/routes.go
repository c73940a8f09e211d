package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Trace id, access log, panic recovery and
// authorization are global, so they also cover unknown paths.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.auth)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// must be set before subrouters are mounted
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", h.listBookmarks)
		r.Post("/", h.createBookmark)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.bookmarkCtx)

			r.Get("/", h.getBookmark)
			r.Patch("/", h.updateBookmark)
			r.Delete("/", h.deleteBookmark)
		})
	})

	return router
}
