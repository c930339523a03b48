// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-array-keeper/models"

const (
	pageAcquire    = "acquire"
	pageCollection = "collection"
)

// NavigateTo switches the active page.
type NavigateTo struct {
	Page string
}

// themeChangedMsg is sent by the ThemePreference subscription.
type themeChangedMsg struct {
	theme models.Theme
}

type themeToggledMsg struct {
	theme models.Theme
	err   error
}

type submitDoneMsg struct {
	err error
}

type draftLoadedMsg struct {
	err error
}

type selectionLoadedMsg struct {
	err error
}

type collectionLoadedMsg struct {
	err error
}

type rowAction int

const (
	rowSave rowAction = iota
	rowSort
	rowDelete
)

type rowActionDoneMsg struct {
	action rowAction
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copyDoneMsg struct {
	page string
	err  error
}
