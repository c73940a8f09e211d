package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Bookmark validation errors. Their messages are returned to API callers
// verbatim.
var (
	ErrMissingTitle     = errors.New("Missing title in request body")
	ErrMissingURL       = errors.New("Missing url in request body")
	ErrMissingRating    = errors.New("Missing rating in request body")
	ErrEmptyTitle       = errors.New("'title' must not be empty")
	ErrInvalidURL       = errors.New("'url' must be a valid URL")
	ErrInvalidRating    = errors.New("'rating' must be a number between 1 and 5")
	ErrNoFieldsToUpdate = errors.New("Request body must contain either 'title', 'url', 'description', or 'rating'")
)
