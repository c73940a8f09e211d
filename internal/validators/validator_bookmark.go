// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-bookmarks/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle       = "title"
	FieldURL         = "url"
	FieldDescription = "description"
	FieldRating      = "rating"
)

// Rules applied through go-playground/validator.
const (
	urlRule    = "http_url"
	ratingRule = "min=1,max=5"
)

// BookmarkValidator implements [Validator] for bookmark payloads:
// models.CreateBookmarkRequest, models.UpdateBookmarkRequest and
// models.Bookmark, as values or pointers.
//
// Create payloads are checked for presence first, in the order title, url,
// rating, and then for well-formedness. The first failure is returned.
type BookmarkValidator struct {
	validate *validator.Validate
}

// NewBookmarkValidator constructs a [BookmarkValidator].
func NewBookmarkValidator() Validator {
	return &BookmarkValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches to the type-specific check for obj. fields is honoured
// for create requests and bookmarks; update requests always check every
// supplied field.
func (v *BookmarkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateBookmarkRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateBookmarkRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateBookmarkRequest:
		return v.validateUpdateRequest(ctx, value)
	case *models.UpdateBookmarkRequest:
		return v.validateUpdateRequest(ctx, *value)

	case models.Bookmark:
		return v.validateBookmark(ctx, value, fields...)
	case *models.Bookmark:
		return v.validateBookmark(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BookmarkValidator) validateCreateRequest(ctx context.Context, request models.CreateBookmarkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL, FieldRating}
	}

	// presence before format
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrMissingTitle
			}
		case FieldURL:
			if strings.TrimSpace(request.URL) == "" {
				return ErrMissingURL
			}
		case FieldRating:
			if !request.HasRating() {
				return ErrMissingRating
			}
		case FieldDescription:
		default:
			return ErrUnknownField
		}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if err := v.checkURL(ctx, request.URL); err != nil {
				return err
			}
		case FieldRating:
			if err := v.checkRawRating(ctx, request); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *BookmarkValidator) validateUpdateRequest(ctx context.Context, request models.UpdateBookmarkRequest) error {
	if request.Title == nil && request.URL == nil && request.Description == nil && !request.HasRating() {
		return ErrNoFieldsToUpdate
	}

	if request.Title != nil && strings.TrimSpace(*request.Title) == "" {
		return ErrEmptyTitle
	}

	if request.URL != nil {
		if err := v.checkURL(ctx, *request.URL); err != nil {
			return err
		}
	}

	if request.HasRating() {
		rating, err := models.ParseRating(request.Rating)
		if err != nil {
			return ErrInvalidRating
		}
		if err = v.checkRating(ctx, rating); err != nil {
			return err
		}
	}

	return nil
}

func (v *BookmarkValidator) validateBookmark(ctx context.Context, bookmark models.Bookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL, FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(bookmark.Title) == "" {
				return ErrMissingTitle
			}
		case FieldURL:
			if err := v.checkURL(ctx, bookmark.URL); err != nil {
				return err
			}
		case FieldRating:
			if err := v.checkRating(ctx, bookmark.Rating); err != nil {
				return err
			}
		case FieldDescription:
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BookmarkValidator) checkURL(ctx context.Context, url string) error {
	if err := v.validate.VarCtx(ctx, url, urlRule); err != nil {
		return ErrInvalidURL
	}

	return nil
}

func (v *BookmarkValidator) checkRawRating(ctx context.Context, request models.CreateBookmarkRequest) error {
	rating, err := models.ParseRating(request.Rating)
	if err != nil {
		return ErrInvalidRating
	}

	return v.checkRating(ctx, rating)
}

func (v *BookmarkValidator) checkRating(ctx context.Context, rating int) error {
	if err := v.validate.VarCtx(ctx, rating, ratingRule); err != nil {
		return ErrInvalidRating
	}

	return nil
}
