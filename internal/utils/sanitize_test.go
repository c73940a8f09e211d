package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bookmarks/models"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Google", want: "Google"},
		{name: "empty", in: "", want: ""},
		{name: "script tag", in: `<script>alert("xss");</script>`, want: `&lt;script&gt;alert("xss");&lt;/script&gt;`},
		{name: "ampersand", in: "a & b", want: "a & b"},
		{name: "single quote", in: "it's", want: "it's"},
		{name: "img onerror", in: `<img src="x" onerror="alert(1)">`, want: `&lt;img src="x" onerror="alert(1)"&gt;`},
		{name: "url with query", in: "https://www.firefox.com/?a=1&b=2", want: "https://www.firefox.com/?a=1&b=2"},
		{name: "safe url", in: "https://www.ninjaz4lyfe.com", want: "https://www.ninjaz4lyfe.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestEscapeHTML_Idempotent(t *testing.T) {
	once := EscapeHTML("<b>")
	assert.Equal(t, "&lt;b&gt;", once)
	assert.Equal(t, once, EscapeHTML(once))
}

func TestUnescapeHTML(t *testing.T) {
	in := `Ur haxxed! <script>alert("xss");</script> & more`
	assert.Equal(t, in, UnescapeHTML(EscapeHTML(in)))
	assert.Equal(t, "a &amp; b", UnescapeHTML("a &amp; b"))
}

func TestSanitizeBookmark(t *testing.T) {
	in := models.Bookmark{
		ID:          911,
		Title:       `Ur haxxed! <script>alert("xss");</script>`,
		URL:         "https://www.ninjaz4lyfe.com",
		Description: `Bad image <img src="https://url.to.file.which/does-not.exist">`,
		Rating:      5,
	}

	got := SanitizeBookmark(in)

	assert.Equal(t, int64(911), got.ID)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "https://www.ninjaz4lyfe.com", got.URL)
	assert.Equal(t, `Ur haxxed! &lt;script&gt;alert("xss");&lt;/script&gt;`, got.Title)
	assert.Equal(t, `Bad image &lt;img src="https://url.to.file.which/does-not.exist"&gt;`, got.Description)

	// input untouched
	assert.Contains(t, in.Title, "<script>")
}

func TestSanitizeBookmarks(t *testing.T) {
	assert.NotNil(t, SanitizeBookmarks(nil))
	assert.Empty(t, SanitizeBookmarks(nil))

	got := SanitizeBookmarks([]models.Bookmark{{Title: "<a>"}, {Title: "b"}})
	assert.Equal(t, []string{"&lt;a&gt;", "b"}, []string{got[0].Title, got[1].Title})
}
