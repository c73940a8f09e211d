package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/validators"
	"github.com/MKhiriev/go-bookmarks/models"
)

// BookmarkValidationService rejects malformed create and update payloads
// before they reach the inner service. Reads and deletes pass through.
type BookmarkValidationService struct {
	inner     BookmarkService
	validator validators.Validator
}

func NewBookmarkValidationService() BookmarkServiceWrapper {
	return &BookmarkValidationService{
		validator: validators.NewBookmarkValidator(),
	}
}

func (v *BookmarkValidationService) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return v.inner.ListBookmarks(ctx)
}

func (v *BookmarkValidationService) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	return v.inner.GetBookmark(ctx, id)
}

func (v *BookmarkValidationService) CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Bookmark{}, fmt.Errorf("error during bookmark validation before saving: %w", err)
	}

	return v.inner.CreateBookmark(ctx, request)
}

func (v *BookmarkValidationService) UpdateBookmark(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during bookmark validation before update: %w", err)
	}

	return v.inner.UpdateBookmark(ctx, id, request)
}

func (v *BookmarkValidationService) DeleteBookmark(ctx context.Context, id int64) error {
	return v.inner.DeleteBookmark(ctx, id)
}

func (v *BookmarkValidationService) Wrap(wrapper BookmarkService) BookmarkService {
	v.inner = wrapper
	return v
}
