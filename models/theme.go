// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Theme is the client colour scheme persisted between sessions.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
