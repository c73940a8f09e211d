// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmarks/models"
)

func Test_buildListBookmarksQuery(t *testing.T) {
	query, args, err := buildListBookmarksQuery(sq.Dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "from bookmarks")
	assert.Contains(t, q, "order by id")
	for _, c := range bookmarkColumns {
		assert.Contains(t, q, c)
	}
}

func Test_buildGetBookmarkByIDQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		ph          sq.PlaceholderFormat
		placeholder string
	}{
		{name: "postgres", ph: sq.Dollar, placeholder: "id = $1"},
		{name: "sqlite", ph: sq.Question, placeholder: "id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetBookmarkByIDQuery(tt.ph, 7)
			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{int64(7)}, args)
		})
	}
}

func Test_buildInsertBookmarkQuery_IgnoresID(t *testing.T) {
	b := models.Bookmark{ID: 42, Title: "Firefox", URL: "https://www.firefox.com/", Description: "d", Rating: 5}

	query, args, err := buildInsertBookmarkQuery(sq.Dollar, b)
	require.NoError(t, err)

	assert.Equal(t, []any{"Firefox", "https://www.firefox.com/", "d", 5}, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into bookmarks")
	assert.Contains(t, q, "returning id")
	assert.NotContains(t, q, "(id,")
}

func Test_buildUpdateBookmarkQuery(t *testing.T) {
	title, url, desc, rating := "T", "https://t.io", "D", 2

	tests := []struct {
		name      string
		update    models.BookmarkUpdate
		wantSet   string
		wantArgs  []any
		wantError bool
	}{
		{
			name:     "title only",
			update:   models.BookmarkUpdate{Title: &title},
			wantSet:  "SET title = $1 WHERE id = $2",
			wantArgs: []any{"T", int64(9)},
		},
		{
			name:     "rating and url",
			update:   models.BookmarkUpdate{URL: &url, Rating: &rating},
			wantSet:  "SET url = $1, rating = $2 WHERE id = $3",
			wantArgs: []any{"https://t.io", 2, int64(9)},
		},
		{
			name:     "description can be emptied",
			update:   models.BookmarkUpdate{Description: &desc},
			wantSet:  "SET description = $1 WHERE id = $2",
			wantArgs: []any{"D", int64(9)},
		},
		{
			name:      "empty update",
			update:    models.BookmarkUpdate{},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateBookmarkQuery(sq.Dollar, 9, tt.update)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrEmptyUpdate)
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantSet)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteBookmarkQuery(t *testing.T) {
	query, args, err := buildDeleteBookmarkQuery(sq.Question, 3)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookmarks WHERE id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}
