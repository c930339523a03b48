// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding

	acquirePage    key.Binding
	collectionPage key.Binding
	buildInfo      key.Binding
	theme          key.Binding

	bulk      key.Binding
	save      key.Binding
	sort      key.Binding
	copy      key.Binding
	export    key.Binding
	search    key.Binding
	refresh   key.Binding
	firstPage key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	lastPage  key.Binding
	edit      key.Binding
	sortRow   key.Binding
	delete    key.Binding
	copyRow   key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left")),
	right:   key.NewBinding(key.WithKeys("right")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),

	acquirePage:    key.NewBinding(key.WithKeys("f2")),
	collectionPage: key.NewBinding(key.WithKeys("f3")),
	buildInfo:      key.NewBinding(key.WithKeys("f1")),
	theme:          key.NewBinding(key.WithKeys("ctrl+t")),

	bulk:      key.NewBinding(key.WithKeys("ctrl+b")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	sort:      key.NewBinding(key.WithKeys("ctrl+r")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	export:    key.NewBinding(key.WithKeys("ctrl+e")),
	search:    key.NewBinding(key.WithKeys("/")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	firstPage: key.NewBinding(key.WithKeys("home")),
	prevPage:  key.NewBinding(key.WithKeys("pgup", "[")),
	nextPage:  key.NewBinding(key.WithKeys("pgdown", "]")),
	lastPage:  key.NewBinding(key.WithKeys("end")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	sortRow:   key.NewBinding(key.WithKeys("s")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copyRow:   key.NewBinding(key.WithKeys("c")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n", "esc")),
}
