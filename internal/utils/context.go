// Package utils provides general-purpose helpers shared by the server and
// client: typed context keys, JSON response writing, HTML escaping of
// outbound bookmarks, trace id generation and the REST client constructor.
package utils

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// BookmarkCtxKey is the key under which the existence check stores the
// bookmark addressed by a single-resource route.
var BookmarkCtxKey = contextKey("bookmark")

// WithBookmark returns a copy of ctx carrying b.
func WithBookmark(ctx context.Context, b *models.Bookmark) context.Context {
	return context.WithValue(ctx, BookmarkCtxKey, b)
}

// GetBookmarkFromContext retrieves the bookmark stored by WithBookmark.
// ok is false when the value is missing, nil or of another type.
func GetBookmarkFromContext(ctx context.Context) (*models.Bookmark, bool) {
	b, ok := ctx.Value(BookmarkCtxKey).(*models.Bookmark)
	if !ok || b == nil {
		return nil, false
	}
	return b, true
}
