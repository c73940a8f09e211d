package service

import (
	"context"

	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

// BookmarkSanitizingService HTML-escapes every bookmark returned by the
// inner service. It is the only place escaping happens, so each response is
// escaped exactly once.
type BookmarkSanitizingService struct {
	inner BookmarkService
}

func NewBookmarkSanitizingService() BookmarkServiceWrapper {
	return &BookmarkSanitizingService{}
}

func (s *BookmarkSanitizingService) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks, err := s.inner.ListBookmarks(ctx)
	if err != nil {
		return nil, err
	}

	return utils.SanitizeBookmarks(bookmarks), nil
}

func (s *BookmarkSanitizingService) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	bookmark, err := s.inner.GetBookmark(ctx, id)
	if err != nil || bookmark == nil {
		return nil, err
	}

	sanitized := utils.SanitizeBookmark(*bookmark)
	return &sanitized, nil
}

func (s *BookmarkSanitizingService) CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	created, err := s.inner.CreateBookmark(ctx, request)
	if err != nil {
		return models.Bookmark{}, err
	}

	return utils.SanitizeBookmark(created), nil
}

func (s *BookmarkSanitizingService) UpdateBookmark(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error {
	return s.inner.UpdateBookmark(ctx, id, request)
}

func (s *BookmarkSanitizingService) DeleteBookmark(ctx context.Context, id int64) error {
	return s.inner.DeleteBookmark(ctx, id)
}

func (s *BookmarkSanitizingService) Wrap(wrapper BookmarkService) BookmarkService {
	s.inner = wrapper
	return s
}
