package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/models"
)

const statusTTL = 3 * time.Second

type browserModel struct {
	ctx       context.Context
	adapter   adapter.BookmarkAdapter
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	items         []models.Bookmark
	idx           int
	loading       bool
	spinner       spinner.Model
	serverVersion string
	status        string

	detail        bool
	form          *formModel
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
}

func newBrowserModel(ctx context.Context, bookmarkAdapter adapter.BookmarkAdapter, buildInfo models.AppBuildInfo) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:       ctx,
		adapter:   bookmarkAdapter,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		loading:   true,
		spinner:   s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadList(), m.cmdLoadVersion())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.items = msg.items
		m.clampIndex()
		return m, nil
	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.detail = false
		m.loading = true
		clearCmd := m.setStatus(fmt.Sprintf("Bookmark %d deleted", msg.id))
		return m, tea.Batch(clearCmd, m.cmdLoadList())
	case saveDoneMsg:
		if m.form == nil {
			return m, nil
		}
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.form = nil
		m.loading = true
		status := "Bookmark updated"
		if msg.created {
			status = "Bookmark added"
		}
		clearCmd := m.setStatus(status)
		return m, tea.Batch(clearCmd, m.cmdLoadList())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	case m.showConfirm:
		return m.updateConfirm(keyMsg)
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.form != nil:
		return m.updateForm(msg)
	case m.detail:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadList()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.newItem):
		form := newFormModel(nil)
		m.form = &form
	case key.Matches(msg, keys.enter):
		return m.copyCurrentURL()
	case key.Matches(msg, keys.details):
		if _, ok := m.current(); ok {
			m.detail = true
		}
	case key.Matches(msg, keys.edit):
		return m.startEdit()
	case key.Matches(msg, keys.delete):
		return m.askDelete()
	}

	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.detail = false
	case key.Matches(msg, keys.enter):
		return m.copyCurrentURL()
	case key.Matches(msg, keys.edit):
		m.detail = false
		return m.startEdit()
	case key.Matches(msg, keys.delete):
		return m.askDelete()
	}
	return m, nil
}

func (m browserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id := m.pendingDelete
		m.pendingDelete = 0
		if id == 0 {
			return m, nil
		}
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = 0
	}
	return m, nil
}

func (m browserModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := *m.form

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form = nil
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			form.next()
			m.form = &form
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			form.prev()
			m.form = &form
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if form.submitting {
				return m, nil
			}
			form.submitting = true
			form.err = ""
			m.form = &form
			return m, m.cmdSave(form)
		}
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	m.form = &form
	return m, cmd
}

func (m browserModel) copyCurrentURL() (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m.fail(errNoBookmarks), nil
	}

	url := plain(item.URL)
	if err := m.copyText(url); err != nil {
		return m.fail(fmt.Errorf("copy to clipboard: %w", err)), nil
	}
	clearCmd := m.setStatus("Copied " + url)
	return m, clearCmd
}

func (m browserModel) startEdit() (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m.fail(errNoBookmarks), nil
	}
	form := newFormModel(&item)
	m.form = &form
	return m, nil
}

func (m browserModel) askDelete() (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		return m.fail(errNoBookmarks), nil
	}
	m.showConfirm = true
	m.pendingDelete = item.ID
	m.confirm = confirmModel{message: plain(item.Title)}
	return m, nil
}

func (m browserModel) current() (models.Bookmark, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Bookmark{}, false
	}
	return m.items[m.idx], true
}

func (m *browserModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m browserModel) fail(err error) browserModel {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err)}
	return m
}

func (m *browserModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browserModel) cmdLoadList() tea.Cmd {
	return func() tea.Msg {
		items, err := m.adapter.List(m.ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m browserModel) cmdLoadVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.adapter.Version(m.ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m browserModel) cmdDelete(id int64) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: m.adapter.Delete(m.ctx, id)}
	}
}

func (m browserModel) cmdSave(form formModel) tea.Cmd {
	return func() tea.Msg {
		if form.editing() {
			return saveDoneMsg{err: m.adapter.Update(m.ctx, form.id, form.toUpdateRequest())}
		}
		_, _, err := m.adapter.Create(m.ctx, form.toCreateRequest())
		return saveDoneMsg{created: true, err: err}
	}
}

func (m browserModel) View() string {
	switch {
	case m.showError:
		return appStyle.Render(m.errorOverlay.View())
	case m.showConfirm:
		return appStyle.Render(m.confirm.View())
	case m.showBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	case m.form != nil:
		return m.form.View()
	}

	title := "BOOKMARKS"
	if m.serverVersion != "" {
		title += "  (server " + m.serverVersion + ")"
	}

	if m.detail {
		if item, ok := m.current(); ok {
			return renderPage(title, m.withStatus(renderDetail(item)), "enter copy url  e edit  d delete  esc back")
		}
	}

	body := renderList(m.items, m.idx, m.loading, m.spinner.View())
	return renderPage(title, m.withStatus(body), "enter copy url  i details  a add  e edit  d delete  r reload  v about  q quit")
}

func (m browserModel) withStatus(body string) string {
	if m.status == "" {
		return body
	}
	return body + "\n\n" + statusStyle.Render(m.status)
}
