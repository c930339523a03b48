// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags and shown
// by both binaries on startup and by the client build info window.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing blank values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

// String renders the three build lines printed at process start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}
