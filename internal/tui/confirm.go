// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	question string
}

func newDeleteConfirm(label string) *confirmModel {
	return &confirmModel{question: "Удалить " + label + "?"}
}

func newOverwriteConfirm(path string) *confirmModel {
	return &confirmModel{question: "Файл \"" + path + "\" уже существует. Перезаписать?"}
}

func (m confirmModel) View(st *styles) string {
	content := m.question + "\n\n"
	content += "y да    n нет"
	return st.overlay.Render(content)
}
