package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrRatingIsNotInteger is returned when a rating value cannot be read as an
// integer (e.g. "lol" or 4.5).
var ErrRatingIsNotInteger = errors.New("rating is not an integer")

// CreateBookmarkRequest is the body of POST /api/bookmarks.
//
// Rating is kept raw so that both numbers and integer-like strings ("4")
// reach validation instead of failing JSON decoding. Any client-supplied id
// is dropped by the decoder.
type CreateBookmarkRequest struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Rating      json.RawMessage `json:"rating"`
}

// UpdateBookmarkRequest is the body of PATCH /api/bookmarks/{id}.
// A nil pointer (or an absent rating) means the field was not supplied.
type UpdateBookmarkRequest struct {
	Title       *string         `json:"title"`
	URL         *string         `json:"url"`
	Description *string         `json:"description"`
	Rating      json.RawMessage `json:"rating"`
}

// HasRating reports whether the create request carries a rating value.
func (r CreateBookmarkRequest) HasRating() bool {
	return !isAbsent(r.Rating)
}

// Bookmark converts the request into a Bookmark without an ID.
func (r CreateBookmarkRequest) Bookmark() (Bookmark, error) {
	rating, err := ParseRating(r.Rating)
	if err != nil {
		return Bookmark{}, err
	}

	return Bookmark{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Rating:      rating,
	}, nil
}

// HasRating reports whether the update request carries a rating value.
func (r UpdateBookmarkRequest) HasRating() bool {
	return !isAbsent(r.Rating)
}

// Update converts the request into a BookmarkUpdate.
func (r UpdateBookmarkRequest) Update() (BookmarkUpdate, error) {
	update := BookmarkUpdate{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
	}

	if r.HasRating() {
		rating, err := ParseRating(r.Rating)
		if err != nil {
			return BookmarkUpdate{}, err
		}
		update.Rating = &rating
	}

	return update, nil
}

// ParseRating reads a raw JSON rating. Numbers must be integral; strings must
// hold a base-10 integer, surrounding spaces allowed.
func ParseRating(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if isAbsent(raw) {
		return 0, ErrRatingIsNotInteger
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, ErrRatingIsNotInteger
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, ErrRatingIsNotInteger
		}
		return n, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, ErrRatingIsNotInteger
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, ErrRatingIsNotInteger
	}

	return int(f), nil
}

// RawRating turns user input into a rating payload: integers are sent as JSON
// numbers, anything else as a JSON string, and blank input as no rating.
func RawRating(s string) json.RawMessage {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err == nil {
		return json.RawMessage(s)
	}
	raw, _ := json.Marshal(s)
	return raw
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`))
}

// ErrorMessage is the inner object of the standard error body.
type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body: {"error":{"message":"..."}}.
type ErrorResponse struct {
	Error ErrorMessage `json:"error"`
}

// UnauthorizedResponse is the fixed-shape body of a rejected request:
// {"error":"Unauthorized request"}.
type UnauthorizedResponse struct {
	Error string `json:"error"`
}
