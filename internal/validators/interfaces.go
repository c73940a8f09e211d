// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks bookmark payloads before they reach storage.
//
// Checks run in a fixed order (title, url, rating) and the first failing
// rule is reported as one of the sentinel errors in errors.go, which the HTTP
// layer maps to 400 responses.
package validators

import "context"

// Validator checks a create or update request. fields optionally names the
// rule set to apply; unknown input types are rejected.
type Validator interface {
	Validate(ctx context.Context, input any, fields ...string) error
}
