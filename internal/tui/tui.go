// Package tui implements the interactive bookmark browser of the client.
//
// The browser is a single bubbletea model backed by an
// [adapter.BookmarkAdapter]. Every server call runs as a tea.Cmd and reports
// back through a message, so the model itself never blocks.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

type TUI struct {
	adapter   adapter.BookmarkAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(bookmarkAdapter adapter.BookmarkAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if bookmarkAdapter == nil {
		return nil, ErrNoAdapter
	}
	return &TUI{adapter: bookmarkAdapter, buildInfo: buildInfo, logger: logger}, nil
}

// Browse runs the browser in the alternate screen until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.adapter, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Browse").Msg("tui program stopped with error")
		return err
	}

	if _, ok := finalModel.(browserModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
