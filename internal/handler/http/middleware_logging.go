package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

// withLogging writes one access-log entry per request with the request-scoped
// logger, so every entry carries the trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		event := logger.FromRequest(r).Info()
		if rw.Status() >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Error()
		}
		if id := chi.URLParam(r, "id"); id != "" {
			event = event.Str("bookmark_id", id)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}
