// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the fixed message strings of the bookmarks API.
//
// They are written into HTTP response bodies verbatim, so clients and tests
// may compare against them.
package app

const (
	// MsgUnauthorizedRequest is the body of every rejected request:
	// {"error":"Unauthorized request"}.
	MsgUnauthorizedRequest = "Unauthorized request"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgRequestTooLarge is returned when a request body exceeds the size cap.
	MsgRequestTooLarge = "Request body is too large"

	// MsgBookmarkNotFound is returned for a well-formed id that matches no
	// stored bookmark.
	MsgBookmarkNotFound = "Bookmark not found"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgInternalServerError hides storage failures from the client.
	MsgInternalServerError = "Internal Server Error"
)
