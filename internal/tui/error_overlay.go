// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(st *styles) string {
	content := st.err.Render("Ошибка") + "\n\n" + m.message + "\n\nenter / esc закрыть"
	return st.overlay.Render(content)
}
