// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AppBuildInfo is the version, date and commit linked into a binary with
// -ldflags "-X main.buildVersion=...". It is read-only once built.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(buildVersion),
		date:    strings.TrimSpace(buildDate),
		commit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the info on one line, e.g. "1.2.0 (commit abc123, built 2026-01-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.version, a.commit, a.date)
}
