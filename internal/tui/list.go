package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmarks/models"
)

const listTitleWidth = 40

func renderList(items []models.Bookmark, idx int, loading bool, spinnerView string) string {
	if loading {
		return spinnerView + " Loading..."
	}
	if len(items) == 0 {
		return "No bookmarks yet. Press a to add one."
	}

	var b strings.Builder
	for i, item := range items {
		line := fmt.Sprintf("%-*s %s", listTitleWidth, fitText(plain(item.Title), listTitleWidth), ratingStyle.Render(stars(item.Rating)))
		if i == idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDetail(item models.Bookmark) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:          %d\n", item.ID)
	fmt.Fprintf(&b, "Title:       %s\n", plain(item.Title))
	fmt.Fprintf(&b, "URL:         %s\n", plain(item.URL))
	fmt.Fprintf(&b, "Description: %s\n", valueOrDash(plain(item.Description)))
	fmt.Fprintf(&b, "Rating:      %s (%d)", ratingStyle.Render(stars(item.Rating)), item.Rating)

	return b.String()
}
