// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-bookmarks/internal/app"
)

// Sentinel errors used by the HTTP layer. Callers can match against them
// with [errors.Is].
var (
	// ErrUnauthorizedRequest is returned by the auth middleware for a missing,
	// malformed or wrong bearer token. Its text is the body the client sees.
	ErrUnauthorizedRequest = errors.New(app.MsgUnauthorizedRequest)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrRequestTooLarge is reported when a request body exceeds maxBodyBytes.
	ErrRequestTooLarge = errors.New(app.MsgRequestTooLarge)
)
