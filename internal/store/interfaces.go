package store

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

// BookmarkRepository is the access layer over the bookmarks table.
//
// Absence is not an error for reads: GetBookmarkByID returns (nil, nil).
// Storage failures are returned wrapped in the low-level sentinels of this
// package and are never translated into domain errors.
type BookmarkRepository interface {
	// ListBookmarks returns every bookmark ordered by id. The slice is empty,
	// never nil, when the table is empty.
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	// GetBookmarkByID returns the bookmark with id, or nil if there is none.
	GetBookmarkByID(ctx context.Context, id int64) (*models.Bookmark, error)
	// InsertBookmark stores b (its ID is ignored) and returns the stored row.
	InsertBookmark(ctx context.Context, b models.Bookmark) (models.Bookmark, error)
	// UpdateBookmarkByID writes the non-nil fields of update and returns the
	// number of rows changed. An empty update changes nothing and returns 0.
	UpdateBookmarkByID(ctx context.Context, id int64, update models.BookmarkUpdate) (int64, error)
	// DeleteBookmarkByID removes the bookmark with id. It returns
	// ErrBookmarkNotFound if no row was removed.
	DeleteBookmarkByID(ctx context.Context, id int64) error
	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
