package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrRequestTooLarge:     http.StatusRequestEntityTooLarge,
	ErrUnauthorizedRequest: http.StatusUnauthorized,

	validators.ErrMissingTitle:     http.StatusBadRequest,
	validators.ErrMissingURL:       http.StatusBadRequest,
	validators.ErrMissingRating:    http.StatusBadRequest,
	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrInvalidURL:       http.StatusBadRequest,
	validators.ErrInvalidRating:    http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	store.ErrBookmarkNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,
	store.ErrReadingRowsAffected: http.StatusInternalServerError,
}

// clientErrors are reported to the caller verbatim. Order is the order of
// matching.
var clientErrors = []error{
	ErrInvalidJSON,
	ErrRequestTooLarge,
	validators.ErrMissingTitle,
	validators.ErrMissingURL,
	validators.ErrMissingRating,
	validators.ErrEmptyTitle,
	validators.ErrInvalidURL,
	validators.ErrInvalidRating,
	validators.ErrNoFieldsToUpdate,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text written into the error body. Storage
// details never leave the server.
func messageFromError(err error) string {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	if errors.Is(err, store.ErrBookmarkNotFound) {
		return app.MsgBookmarkNotFound
	}
	return app.MsgInternalServerError
}
