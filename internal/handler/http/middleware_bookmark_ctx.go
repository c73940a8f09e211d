// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
)

// bookmarkCtx resolves the {id} URL parameter before any single-bookmark
// handler runs. A found bookmark is stored in the request context under
// [utils.BookmarkCtxKey]; a missing one, or an id that is not an integer,
// ends the request with 404.
func (h *Handler) bookmarkCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		rawID := chi.URLParam(r, "id")

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			log.Info().Str("id", rawID).Msgf("Bookmark with id %s not found", rawID)
			utils.WriteError(w, app.MsgBookmarkNotFound, http.StatusNotFound)
			return
		}

		bookmark, err := h.services.BookmarkService.GetBookmark(r.Context(), id)
		if err != nil {
			log.Err(err).Str("func", "*Handler.bookmarkCtx").Int64("id", id).Msg("error getting bookmark")
			utils.WriteError(w, messageFromError(err), statusFromError(err))
			return
		}
		if bookmark == nil {
			utils.WriteError(w, app.MsgBookmarkNotFound, http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBookmark(r.Context(), bookmark)))
	})
}
