// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmarks/models"
)

const bookmarksTable = "bookmarks"

// bookmarkColumns is the scan order of every query returning bookmarks.
var bookmarkColumns = []string{"id", "title", "url", "description", "rating"}

func buildListBookmarksQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(bookmarkColumns...).
		From(bookmarksTable).
		OrderBy("id").
		PlaceholderFormat(ph).
		ToSql()
}

func buildGetBookmarkByIDQuery(ph sq.PlaceholderFormat, id int64) (string, []any, error) {
	return sq.Select(bookmarkColumns...).
		From(bookmarksTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertBookmarkQuery(ph sq.PlaceholderFormat, b models.Bookmark) (string, []any, error) {
	return sq.Insert(bookmarksTable).
		Columns("title", "url", "description", "rating").
		Values(b.Title, b.URL, b.Description, b.Rating).
		Suffix("RETURNING id, title, url, description, rating").
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpdateBookmarkQuery sets only the non-nil fields of update, in column
// order. It fails with ErrEmptyUpdate when there is nothing to set.
func buildUpdateBookmarkQuery(ph sq.PlaceholderFormat, id int64, update models.BookmarkUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, ErrEmptyUpdate)
	}

	builder := sq.Update(bookmarksTable).PlaceholderFormat(ph)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Rating != nil {
		builder = builder.Set("rating", *update.Rating)
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteBookmarkQuery(ph sq.PlaceholderFormat, id int64) (string, []any, error) {
	return sq.Delete(bookmarksTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}
