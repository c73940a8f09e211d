package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "integer", raw: `4`, want: 4},
		{name: "integral float", raw: `4.0`, want: 4},
		{name: "numeric string", raw: `"4"`, want: 4},
		{name: "padded numeric string", raw: `" 3 "`, want: 3},
		{name: "negative", raw: `-1`, want: -1},
		{name: "out of 1..5 is still an integer", raw: `10`, want: 10},
		{name: "fraction", raw: `4.5`, wantErr: true},
		{name: "word", raw: `"lol"`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "absent", raw: ``, wantErr: true},
		{name: "huge", raw: `1e20`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRating(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRatingIsNotInteger)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateBookmarkRequest_Decode(t *testing.T) {
	body := `{"id": 99, "title": "Firefox", "url": "https://www.firefox.com/", "description": "Less ads than Chrome", "rating": "5"}`

	var req CreateBookmarkRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.True(t, req.HasRating())

	b, err := req.Bookmark()
	require.NoError(t, err)
	assert.Equal(t, Bookmark{
		Title:       "Firefox",
		URL:         "https://www.firefox.com/",
		Description: "Less ads than Chrome",
		Rating:      5,
	}, b)
}

func TestCreateBookmarkRequest_HasRating(t *testing.T) {
	assert.False(t, CreateBookmarkRequest{}.HasRating())
	assert.False(t, CreateBookmarkRequest{Rating: json.RawMessage(`null`)}.HasRating())
	assert.True(t, CreateBookmarkRequest{Rating: json.RawMessage(`0`)}.HasRating())
}

func TestUpdateBookmarkRequest_Update(t *testing.T) {
	var req UpdateBookmarkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": "New", "rating": 2}`), &req))

	u, err := req.Update()
	require.NoError(t, err)
	require.NotNil(t, u.Title)
	require.NotNil(t, u.Rating)
	assert.Equal(t, "New", *u.Title)
	assert.Equal(t, 2, *u.Rating)
	assert.Nil(t, u.URL)
	assert.Nil(t, u.Description)
	assert.False(t, u.IsEmpty())
}

func TestUpdateBookmarkRequest_EmptyBody(t *testing.T) {
	var req UpdateBookmarkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"unrelated": true}`), &req))

	u, err := req.Update()
	require.NoError(t, err)
	assert.True(t, u.IsEmpty())
}

func TestUpdateBookmarkRequest_BadRating(t *testing.T) {
	req := UpdateBookmarkRequest{Rating: json.RawMessage(`"five"`)}

	_, err := req.Update()
	assert.ErrorIs(t, err, ErrRatingIsNotInteger)
}

func TestRawRating(t *testing.T) {
	assert.Nil(t, RawRating("  "))
	assert.Equal(t, json.RawMessage(`4`), RawRating(" 4 "))
	assert.Equal(t, json.RawMessage(`"lol"`), RawRating("lol"))

	rating, err := ParseRating(RawRating("5"))
	require.NoError(t, err)
	assert.Equal(t, 5, rating)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.2.0 ", "2026-01-01", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.2.0 (commit abc123, built 2026-01-01)", info.String())
}
