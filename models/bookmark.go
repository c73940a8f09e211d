// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bookmark is the single persisted entity of the service: a titled link with
// an optional description and a 1..5 rating.
type Bookmark struct {
	// ID is assigned by the database on insert. Client-supplied values are
	// ignored on create.
	ID int64 `json:"id" yaml:"id"`

	// Title is a required, non-empty label.
	Title string `json:"title" yaml:"title"`

	// URL is a required absolute http(s) address.
	URL string `json:"url" yaml:"url"`

	// Description is optional free text. It may contain markup on input and
	// is escaped before it is returned to a caller.
	Description string `json:"description" yaml:"description"`

	// Rating is an integer between 1 and 5 inclusive.
	Rating int `json:"rating" yaml:"rating"`
}

// BookmarkUpdate describes a partial update of a single bookmark.
// Only non-nil fields are written; nil means "leave unchanged".
type BookmarkUpdate struct {
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u BookmarkUpdate) IsEmpty() bool {
	return u.Title == nil && u.URL == nil && u.Description == nil && u.Rating == nil
}
