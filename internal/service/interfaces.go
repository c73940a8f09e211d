package service

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BookmarkService is the contract the HTTP router uses. It is assembled from
// decorators: sanitizing(validating(core)).
type BookmarkService interface {
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)
	// GetBookmark returns nil, nil when the bookmark does not exist.
	GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error)
	CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error
	DeleteBookmark(ctx context.Context, id int64) error
}

// BookmarkServiceWrapper defines middleware composition for BookmarkService.
// Implementations wrap an existing BookmarkService to add behavior such as
// validating or sanitizing.
type BookmarkServiceWrapper interface {
	Wrap(BookmarkService) BookmarkService // returns a decorated BookmarkService applying additional behavior
}

// AppInfoService exposes the running server's version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the storage backing the server is usable.
type HealthService interface {
	Check(ctx context.Context) error
}
