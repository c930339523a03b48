// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// collectionModel is the stored arrays page: search by id, pagination, row
// actions and the edit dialog.
type collectionModel struct {
	ctx      context.Context
	services *service.ClientServices
	st       *styles
	now      func() time.Time

	view    service.CollectionView
	idx     int
	loading bool

	searchInput textinput.Model
	searching   bool

	editor     textarea.Model
	confirm    *confirmModel
	confirmID  int64
	errOverlay *errorOverlayModel

	spinner spinner.Model
	status  string
}

func newCollectionModel(ctx context.Context, services *service.ClientServices, st *styles) collectionModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "id"
	searchInput.CharLimit = 20
	searchInput.Width = 20

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.SetWidth(60)
	editor.SetHeight(6)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return collectionModel{
		ctx:         ctx,
		services:    services,
		st:          st,
		now:         time.Now,
		view:        services.Collection.View(),
		loading:     true,
		searchInput: searchInput,
		editor:      editor,
		spinner:     s,
	}
}

// Init refetches on every visit so the page never shows stale rows.
func (m collectionModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m collectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case collectionLoadedMsg:
		m.loading = false
		m.syncView()
		return m, nil

	case rowActionDoneMsg:
		m.loading = false
		m.syncView()
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: errorText(msg.err)}
			return m, nil
		}
		m.status = rowActionStatus(msg.action)
		if m.view.Editing == nil {
			m.editor.Blur()
		}
		return m, nil

	case copyDoneMsg:
		if msg.page != pageCollection {
			return m, nil
		}
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: errorText(msg.err)}
			return m, nil
		}
		m.status = "Скопировано в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *collectionModel) syncView() {
	m.view = m.services.Collection.View()
	m.idx = min(m.idx, max(len(m.view.Items)-1, 0))
}

func (m collectionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDelete(m.confirmID))
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.view.Editing != nil {
		return m.handleEditKey(msg)
	}

	if m.searching {
		switch {
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdSearch(m.searchInput.Value()))
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.loading {
		return m, nil
	}

	pager := m.view.Pager()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.view.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.refresh):
		return m.load(m.cmdRefresh())
	case key.Matches(msg, keys.firstPage):
		if pager.Visible() && pager.CanFirst() {
			return m.load(m.cmdSetPage(1))
		}
	case key.Matches(msg, keys.prevPage):
		if pager.Visible() && pager.CanPrev() {
			return m.load(m.cmdSetPage(pager.Page - 1))
		}
	case key.Matches(msg, keys.nextPage):
		if pager.Visible() && pager.CanNext() {
			return m.load(m.cmdSetPage(pager.Page + 1))
		}
	case key.Matches(msg, keys.lastPage):
		if pager.Visible() && pager.CanLast() {
			return m.load(m.cmdSetPage(pager.LastPage()))
		}
	case key.Matches(msg, keys.edit):
		record, ok := m.current()
		if !ok || !m.services.Collection.OpenEdit(record.ID) {
			return m, nil
		}
		m.syncView()
		m.editor.SetValue(input.RenderTokens(input.FromInts(record.Data)))
		return m, m.editor.Focus()
	case key.Matches(msg, keys.sortRow):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.load(m.cmdRowAction(rowSort, record.ID, input.FromInts(record.Data)))
	case key.Matches(msg, keys.delete):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirmID = record.ID
		m.confirm = newDeleteConfirm(fmt.Sprintf("массив #%d", record.ID))
	case key.Matches(msg, keys.copyRow):
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyData(pageCollection, record.Data)
	}

	return m, nil
}

func (m collectionModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.view.Editing.ID

	switch {
	case key.Matches(msg, keys.esc):
		m.services.Collection.CloseEdit()
		m.syncView()
		m.editor.Blur()
		return m, nil
	case key.Matches(msg, keys.save):
		if m.loading {
			return m, nil
		}
		return m.load(m.cmdRowAction(rowSave, id, input.ParseTokens(m.editor.Value())))
	case key.Matches(msg, keys.sort):
		if m.loading {
			return m, nil
		}
		return m.load(m.cmdRowAction(rowSort, id, input.ParseTokens(m.editor.Value())))
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m collectionModel) load(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m collectionModel) current() (models.ArrayRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.view.Items) {
		return models.ArrayRecord{}, false
	}
	return m.view.Items[m.idx], true
}

func (m collectionModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Collection

	return func() tea.Msg {
		return collectionLoadedMsg{err: svc.Refresh(ctx)}
	}
}

func (m collectionModel) cmdSetPage(page int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Collection

	return func() tea.Msg {
		return collectionLoadedMsg{err: svc.SetPage(ctx, page)}
	}
}

func (m collectionModel) cmdSearch(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Collection

	return func() tea.Msg {
		return collectionLoadedMsg{err: svc.Search(ctx, text)}
	}
}

func (m collectionModel) cmdRowAction(action rowAction, id int64, tokens []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Collection

	return func() tea.Msg {
		var err error
		switch action {
		case rowSave:
			err = svc.SaveEdit(ctx, id, tokens)
		case rowSort:
			err = svc.SortRecord(ctx, id, tokens)
		}
		return rowActionDoneMsg{action: action, err: err}
	}
}

func (m collectionModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Collection

	return func() tea.Msg {
		return rowActionDoneMsg{action: rowDelete, err: svc.Delete(ctx, id)}
	}
}

func cmdCopyData(page string, data []int64) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{page: page, err: writeClipboard(input.RenderTokens(input.FromInts(data)))}
	}
}

func rowActionStatus(action rowAction) string {
	switch action {
	case rowSave:
		return "Массив сохранён"
	case rowSort:
		return "Массив отсортирован"
	case rowDelete:
		return "Массив удалён"
	default:
		return ""
	}
}

func (m collectionModel) View() string {
	var b strings.Builder

	b.WriteString("Поиск по id: " + m.searchInput.View() + "\n")
	if m.view.SearchID != nil {
		b.WriteString(m.st.help.Render("Фильтр активен. Пустой поиск сбрасывает его.") + "\n")
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	}
	if m.view.Err != nil {
		b.WriteString(m.st.err.Render(errorText(m.view.Err)) + "\n")
	}

	b.WriteString(m.renderTable())
	b.WriteString(m.renderPager())

	if m.status != "" {
		b.WriteString("\n" + m.st.info.Render(m.status) + "\n")
	}

	switch {
	case m.errOverlay != nil:
		b.WriteString("\n" + m.errOverlay.View(m.st))
	case m.confirm != nil:
		b.WriteString("\n" + m.confirm.View(m.st))
	case m.view.Editing != nil:
		b.WriteString("\n" + m.renderEditor())
	}

	hotKeys := "/ поиск  r обновить  e изменить  s сортировать  d удалить  c копировать"
	return renderPage(m.st, "СОХРАНЁННЫЕ МАССИВЫ", b.String(), hotKeys)
}

func (m collectionModel) renderTable() string {
	if len(m.view.Items) == 0 {
		if m.view.Searching() {
			return "Не найдено\n"
		}
		return "Нет записей\n"
	}

	var b strings.Builder
	now := m.now()

	fmt.Fprintf(&b, "  %-7s %-6s %-16s %-19s %s\n", "ID", "Сорт.", "Изменён", "Создан", "Данные")
	for i, item := range m.view.Items {
		sorted := "нет"
		if item.IsSorted {
			sorted = "да"
		}

		line := fmt.Sprintf("%-7d %-6s %-16s %-19s %s",
			item.ID, sorted, relativeTime(now, item.UpdateDate), formatTimestamp(item.CreationDate), previewArray(item.Data))

		if i == m.idx {
			b.WriteString("> " + m.st.selected.Render(line) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m collectionModel) renderPager() string {
	pager := m.view.Pager()
	if !pager.Visible() {
		return ""
	}

	control := func(label string, enabled bool) string {
		if enabled {
			return label
		}
		return m.st.disabled.Render(label)
	}

	return fmt.Sprintf("\nСтраница %d из %d   %s  %s  %s  %s\n",
		pager.Page, pager.LastPage(),
		control("home первая", pager.CanFirst()),
		control("pgup назад", pager.CanPrev()),
		control("pgdown вперёд", pager.CanNext()),
		control("end последняя", pager.CanLast()),
	)
}

func (m collectionModel) renderEditor() string {
	content := fmt.Sprintf("Редактирование массива #%d\n\n", m.view.Editing.ID)
	content += m.editor.View()
	content += "\n\nctrl+s сохранить  ctrl+r сохранить и сортировать  esc закрыть"
	return m.st.overlay.Render(content)
}
