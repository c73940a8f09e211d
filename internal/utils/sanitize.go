// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/go-bookmarks/models"
)

var (
	markupEscaper   = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	markupUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">")
)

// EscapeHTML neutralizes markup by replacing < and > with HTML entities.
// Ampersands and quotes are left alone, so URLs with query strings survive
// and escaping an already escaped value changes nothing.
func EscapeHTML(s string) string {
	return markupEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML for display.
func UnescapeHTML(s string) string {
	return markupUnescaper.Replace(s)
}

// SanitizeBookmark returns a copy of b with its string fields escaped.
// ID and Rating are numbers and pass through unchanged.
func SanitizeBookmark(b models.Bookmark) models.Bookmark {
	b.Title = EscapeHTML(b.Title)
	b.URL = EscapeHTML(b.URL)
	b.Description = EscapeHTML(b.Description)

	return b
}

// SanitizeBookmarks escapes every bookmark of bs into a new slice.
// The result is never nil.
func SanitizeBookmarks(bs []models.Bookmark) []models.Bookmark {
	out := make([]models.Bookmark, 0, len(bs))
	for _, b := range bs {
		out = append(out, SanitizeBookmark(b))
	}

	return out
}
