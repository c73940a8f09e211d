// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the bookmarks REST API.
//
// The primary abstraction is [BookmarkAdapter], which decouples the CLI and
// the TUI from the transport. The package ships an HTTP implementation
// ([NewHTTPBookmarkAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server's error message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bookmark_adapter_mock.go -package=mock

// BookmarkAdapter defines communication with the bookmarks server.
// Implementations are responsible for serialisation, the bearer token and
// mapping transport-level errors to the sentinel values of this package.
type BookmarkAdapter interface {
	// List returns every bookmark as stored on the server (HTML-escaped).
	List(ctx context.Context) ([]models.Bookmark, error)

	// Get returns the bookmark with id. A missing bookmark yields
	// [ErrNotFound].
	Get(ctx context.Context, id int64) (models.Bookmark, error)

	// Create stores a new bookmark and returns it together with the
	// Location the server reported for it.
	Create(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, string, error)

	// Update applies a partial update to the bookmark with id.
	Update(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error

	// Delete removes the bookmark with id.
	Delete(ctx context.Context, id int64) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
