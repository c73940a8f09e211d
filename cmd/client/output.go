package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// write prints v in the requested format. JSON and YAML show the payload as
// the server returned it; the table shows unescaped text.
func write(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputTable, "":
		return writeTable(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, v any) error {
	var bookmarks []models.Bookmark
	switch b := v.(type) {
	case []models.Bookmark:
		bookmarks = b
	case models.Bookmark:
		bookmarks = []models.Bookmark{b}
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}

	if len(bookmarks) == 0 {
		_, err := fmt.Fprintln(w, "No bookmarks.")
		return err
	}

	rows := make([][]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			utils.UnescapeHTML(b.Title),
			utils.UnescapeHTML(b.URL),
			utils.UnescapeHTML(b.Description),
			strconv.Itoa(b.Rating),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "TITLE", "URL", "DESCRIPTION", "RATING").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
