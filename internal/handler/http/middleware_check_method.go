// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
)

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed]. Instead of chi's default 405 it answers with
// the same JSON 404 as an unknown path, so callers cannot probe which
// methods a route supports.
//
// The allowed methods of the matched route, if it is a static one, are
// logged for diagnostics.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				for method := range route.Handlers {
					allowed = append(allowed, method)
				}
				break
			}
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("allowed", allowed).
			Msg("method not allowed")

		notFound(w, r)
	}
}

// notFound writes 404 {"error":{"message":"Not found"}}.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
