// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-array-keeper/models"
)

func renderBuildInfoWindow(st *styles, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: ArrayKeeper\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.Commit))

	return renderPage(st, "ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
