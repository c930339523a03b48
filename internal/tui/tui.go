// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front-end of the client: the acquisition page
// with the sort output and the stored arrays page.
//
// Models never block: every service call runs inside a tea.Cmd and reports
// back with a *DoneMsg or *LoadedMsg, after which the model takes a fresh
// snapshot of the service state.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Theme.OnChange(func(theme models.Theme) {
		program.Send(themeChangedMsg{theme: theme})
	})
	defer unsubscribe()

	t.logger.Info().Str("func", "TUI.Run").Str("theme", string(t.services.Theme.Get())).Msg("starting ui")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running ui: %w", err)
	}
	return nil
}
