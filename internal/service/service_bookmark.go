// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
	"github.com/MKhiriev/go-bookmarks/models"
)

// bookmarkService is the core of the pipeline: it converts requests into
// store calls and nothing else. It expects validated input and returns raw,
// unescaped records.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository

	logger *logger.Logger
}

// NewBookmarkService builds the full bookmark pipeline over repository:
// sanitizing(validating(core)).
func NewBookmarkService(repository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	core := &bookmarkService{
		bookmarkRepository: repository,
		logger:             logger,
	}

	validating := NewBookmarkValidationService().Wrap(core)
	return NewBookmarkSanitizingService().Wrap(validating)
}

func (s *bookmarkService) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return s.bookmarkRepository.ListBookmarks(ctx)
}

func (s *bookmarkService) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepository.GetBookmarkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if bookmark == nil {
		logger.FromContext(ctx).Info().Int64("id", id).Msgf("Bookmark with id %d not found", id)
	}

	return bookmark, nil
}

func (s *bookmarkService) CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	bookmark, err := request.Bookmark()
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", validators.ErrInvalidRating, err)
	}

	created, err := s.bookmarkRepository.InsertBookmark(ctx, bookmark)
	if err != nil {
		return models.Bookmark{}, err
	}
	logger.FromContext(ctx).Info().Int64("id", created.ID).Msgf("Bookmark with id %d created", created.ID)

	return created, nil
}

func (s *bookmarkService) UpdateBookmark(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error {
	update, err := request.Update()
	if err != nil {
		return fmt.Errorf("%w: %w", validators.ErrInvalidRating, err)
	}
	if update.IsEmpty() {
		return validators.ErrNoFieldsToUpdate
	}

	affected, err := s.bookmarkRepository.UpdateBookmarkByID(ctx, id, update)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("update of bookmark %d: %w", id, store.ErrBookmarkNotFound)
	}
	logger.FromContext(ctx).Info().Int64("id", id).Msgf("Bookmark with id %d updated", id)

	return nil
}

func (s *bookmarkService) DeleteBookmark(ctx context.Context, id int64) error {
	if err := s.bookmarkRepository.DeleteBookmarkByID(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Int64("id", id).Msgf("Bookmark with id %d deleted", id)

	return nil
}
