// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────"

// previewLimit is how many elements of an array a table row shows.
const previewLimit = 30

func renderPage(st *styles, title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(st.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(st.help.Render("f2 ввод  f3 коллекция  ctrl+t тема  f1 о программе  ctrl+c: выход"))

	return st.app.Render(b.String())
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// previewArray renders at most previewLimit elements followed by "...".
func previewArray(data []int64) string {
	n := min(len(data), previewLimit)

	parts := make([]string, 0, n+1)
	for _, v := range data[:n] {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	if len(data) > previewLimit {
		parts = append(parts, "...")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// previewTokens is previewArray for a draft that may hold placeholders.
func previewTokens(tokens []string) string {
	n := min(len(tokens), previewLimit)

	out := strings.Join(tokens[:n], " ")
	if len(tokens) > previewLimit {
		out += " ..."
	}
	return out
}

// relativeTime renders t relative to now: "только что", "5 мин. назад" and
// so on. Timestamps in the future are treated as now.
func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "только что"
	case d < time.Hour:
		return fmt.Sprintf("%d мин. назад", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d ч. назад", int(d/time.Hour))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d дн. назад", int(d/(24*time.Hour)))
	default:
		return t.Local().Format("02.01.2006")
	}
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("02.01.2006 15:04:05")
}

func formatExecutionTime(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + " мс"
}
