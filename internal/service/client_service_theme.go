// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/models"
)

// ThemePreferenceKey is the preference store key of the theme.
const ThemePreferenceKey = "theme"

type themePreference struct {
	storage store.PreferenceStorage

	mu        sync.Mutex
	theme     models.Theme
	listeners map[int]func(models.Theme)
	nextID    int

	logger *logger.Logger
}

// NewThemePreference loads the stored theme. A missing, unreadable or invalid
// value falls back to [models.ThemeLight].
func NewThemePreference(ctx context.Context, storage store.PreferenceStorage, logger *logger.Logger) ThemePreference {
	p := &themePreference{
		storage:   storage,
		theme:     models.ThemeLight,
		listeners: make(map[int]func(models.Theme)),
		logger:    logger,
	}

	value, err := storage.GetPreference(ctx, ThemePreferenceKey)
	switch {
	case errors.Is(err, store.ErrPreferenceNotFound):
	case err != nil:
		logger.Err(err).Str("func", "NewThemePreference").Msg("error loading theme preference")
	case models.Theme(value).Valid():
		p.theme = models.Theme(value)
	default:
		logger.Warn().Str("func", "NewThemePreference").Str("theme", value).Msg("ignoring invalid stored theme")
	}

	return p
}

func (p *themePreference) Get() models.Theme {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.theme
}

func (p *themePreference) Set(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	if err := p.storage.SetPreference(ctx, ThemePreferenceKey, string(theme)); err != nil {
		return fmt.Errorf("error saving theme preference: %w", err)
	}

	p.mu.Lock()
	changed := p.theme != theme
	p.theme = theme
	listeners := make([]func(models.Theme), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(theme)
		}
	}
	return nil
}

func (p *themePreference) Toggle(ctx context.Context) (models.Theme, error) {
	next := p.Get().Toggled()
	if err := p.Set(ctx, next); err != nil {
		return p.Get(), err
	}
	return next, nil
}

func (p *themePreference) OnChange(fn func(models.Theme)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}
