// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global hotkeys (quit, pages, theme, build info)
// 3) handles NavigateTo messages
// 4) delegates keys to the active page and every other message to all pages
type RootModel struct {
	ctx     context.Context
	pages   map[string]tea.Model
	current string

	theme     service.ThemePreference
	st        *styles
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	errMsg        string
}

// NewRootModel builds both pages over services and opens the acquisition
// page.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) RootModel {
	st := newStyles(services.Theme.Get())

	return RootModel{
		ctx: ctx,
		pages: map[string]tea.Model{
			pageAcquire:    newAcquireModel(ctx, services, st),
			pageCollection: newCollectionModel(ctx, services, st),
		},
		current:   pageAcquire,
		theme:     services.Theme,
		st:        st,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return r, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(msg, keys.acquirePage):
			return r.navigate(pageAcquire)
		case key.Matches(msg, keys.collectionPage):
			return r.navigate(pageCollection)
		case key.Matches(msg, keys.theme):
			return r, r.cmdToggleTheme()
		}

		updated, cmd := r.pages[r.current].Update(msg)
		r.pages[r.current] = updated
		return r, cmd

	case NavigateTo:
		return r.navigate(msg.Page)

	case themeChangedMsg:
		r.st.apply(msg.theme)
		return r, nil

	case themeToggledMsg:
		r.errMsg = errorText(msg.err)
		return r, nil
	}

	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) navigate(page string) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists || page == r.current {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = page
	return r, next.Init()
}

func (r RootModel) cmdToggleTheme() tea.Cmd {
	ctx := r.ctx
	theme := r.theme

	return func() tea.Msg {
		next, err := theme.Toggle(ctx)
		return themeToggledMsg{theme: next, err: err}
	}
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.st, r.buildInfo)
	}

	view := r.pages[r.current].View()
	if r.errMsg != "" {
		view += "\n  " + r.st.err.Render(r.errMsg)
	}
	return view
}
