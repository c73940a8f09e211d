package tui

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-bookmarks/models"
)

const (
	fieldTitle = iota
	fieldURL
	fieldDescription
	fieldRating
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title:      ",
	"URL:        ",
	"Description:",
	"Rating 1-5: ",
}

// formModel edits a single bookmark. A zero id means a new bookmark.
type formModel struct {
	inputs     []textinput.Model
	focus      int
	id         int64
	submitting bool
	err        string
}

func newFormModel(item *models.Bookmark) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldTitle].Placeholder = "Google"
	inputs[fieldURL].Placeholder = "https://www.google.com"
	inputs[fieldRating].Placeholder = "3"
	inputs[fieldRating].CharLimit = 1
	inputs[fieldTitle].Focus()

	m := formModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.id = item.ID
	m.inputs[fieldTitle].SetValue(plain(item.Title))
	m.inputs[fieldURL].SetValue(plain(item.URL))
	m.inputs[fieldDescription].SetValue(plain(item.Description))
	m.inputs[fieldRating].SetValue(strconv.Itoa(item.Rating))
	return m
}

func (m formModel) editing() bool {
	return m.id != 0
}

func (m *formModel) next() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) prev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// rating is sent as typed; the server decides whether it is valid.
func (m formModel) rating() json.RawMessage {
	return models.RawRating(m.value(fieldRating))
}

func (m formModel) toCreateRequest() models.CreateBookmarkRequest {
	return models.CreateBookmarkRequest{
		Title:       m.value(fieldTitle),
		URL:         m.value(fieldURL),
		Description: m.value(fieldDescription),
		Rating:      m.rating(),
	}
}

func (m formModel) toUpdateRequest() models.UpdateBookmarkRequest {
	title := m.value(fieldTitle)
	url := m.value(fieldURL)
	description := m.value(fieldDescription)

	return models.UpdateBookmarkRequest{
		Title:       &title,
		URL:         &url,
		Description: &description,
		Rating:      m.rating(),
	}
}

func (m formModel) View() string {
	title := "New bookmark"
	if m.editing() {
		title = "Edit: " + m.value(fieldTitle)
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(fieldLabels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	return renderPage(title, b.String(), "esc cancel  tab next field  enter save")
}
