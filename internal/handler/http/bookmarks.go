package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

// maxBodyBytes caps the size of a create or update request body.
const maxBodyBytes = 1 << 20

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookmarks, err := h.services.BookmarkService.ListBookmarks(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBookmarks").Msg("error listing bookmarks")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	bookmark, ok := utils.GetBookmarkFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgBookmarkNotFound, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateBookmarkRequest
	if err := decodeBody(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.createBookmark").Msg("error decoding request body")
		h.writeServiceError(w, err)
		return
	}

	created, err := h.services.BookmarkService.CreateBookmark(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBookmark").Msg("error creating bookmark")
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", h.bookmarkLocation(created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookmark, ok := utils.GetBookmarkFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgBookmarkNotFound, http.StatusNotFound)
		return
	}

	var request models.UpdateBookmarkRequest
	if err := decodeBody(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.updateBookmark").Msg("error decoding request body")
		h.writeServiceError(w, err)
		return
	}

	if err := h.services.BookmarkService.UpdateBookmark(r.Context(), bookmark.ID, request); err != nil {
		log.Err(err).Str("func", "*Handler.updateBookmark").Int64("id", bookmark.ID).Msg("error updating bookmark")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookmark, ok := utils.GetBookmarkFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgBookmarkNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.BookmarkService.DeleteBookmark(r.Context(), bookmark.ID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBookmark").Int64("id", bookmark.ID).Msg("error deleting bookmark")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	utils.WriteError(w, messageFromError(err), statusFromError(err))
}

func (h *Handler) bookmarkLocation(id int64) string {
	return fmt.Sprintf("%s/api/bookmarks/%s", h.baseURL, strconv.FormatInt(id, 10))
}

// decodeBody reads exactly one JSON value from the request body into v.
// An empty body leaves v at its zero value so validation reports the
// missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return bodyError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
		}
		return bodyError(err)
	}

	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
