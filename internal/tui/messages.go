package tui

import (
	"github.com/MKhiriev/go-bookmarks/models"
)

type listLoadedMsg struct {
	items []models.Bookmark
	err   error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type deleteDoneMsg struct {
	id  int64
	err error
}

type saveDoneMsg struct {
	created bool
	err     error
}

type clearStatusMsg struct{}
