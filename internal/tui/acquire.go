// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var methodLabels = map[input.Kind]string{
	input.KindManual:          "Вручную",
	input.KindRandom:          "Случайно",
	input.KindFile:            "Из файла",
	input.KindRemoteSelection: "Из хранилища",
}

// acquireModel is the acquisition page: method tabs, the draft, the submit
// controls and the sort output.
type acquireModel struct {
	ctx      context.Context
	services *service.ClientServices
	st       *styles

	state service.AcquisitionState

	token    textinput.Model
	bulkArea textarea.Model
	random   []textinput.Model
	focus    int
	path     textinput.Model

	selection    service.CollectionView
	selIdx       int
	editingDraft bool

	exportInput textinput.Model
	exporting   bool
	confirm     *confirmModel

	spinner spinner.Model
	busy    bool
	status  string
	errMsg  string
}

func newAcquireModel(ctx context.Context, services *service.ClientServices, st *styles) acquireModel {
	token := textinput.New()
	token.Placeholder = "число"
	token.CharLimit = 32
	token.Width = 20

	bulkArea := textarea.New()
	bulkArea.Placeholder = "числа через пробел или с новой строки"
	bulkArea.ShowLineNumbers = false
	bulkArea.SetWidth(60)
	bulkArea.SetHeight(5)

	random := make([]textinput.Model, 3)
	for i, placeholder := range []string{"количество", "минимум", "максимум"} {
		random[i] = textinput.New()
		random[i].Placeholder = placeholder
		random[i].CharLimit = 20
		random[i].Width = 20
	}

	path := textinput.New()
	path.Placeholder = "путь к .txt файлу"
	path.Width = 50

	exportInput := textinput.New()
	exportInput.Placeholder = "sorted.txt"
	exportInput.Width = 50

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := acquireModel{
		ctx:         ctx,
		services:    services,
		st:          st,
		token:       token,
		bulkArea:    bulkArea,
		random:      random,
		path:        path,
		exportInput: exportInput,
		spinner:     s,
	}
	m.state = services.Acquisition.State()
	focus := &methodFocus{m: &m}
	input.Accept(m.state.Method, focus)
	return m
}

func (m acquireModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m acquireModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitDoneMsg:
		m.busy = false
		m.state = m.services.Acquisition.State()
		m.errMsg = errorText(msg.err)
		if msg.err == nil {
			m.token.Reset()
			m.bulkArea.Reset()
		}
		return m, nil

	case draftLoadedMsg:
		m.busy = false
		m.state = m.services.Acquisition.State()
		m.errMsg = errorText(msg.err)
		return m, nil

	case selectionLoadedMsg:
		m.busy = false
		m.selection = m.services.Selection.View()
		m.selIdx = min(m.selIdx, max(len(m.selection.Items)-1, 0))
		m.errMsg = errorText(msg.err)
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if errors.Is(msg.err, input.ErrExportFileExists) {
			m.confirm = newOverwriteConfirm(m.exportInput.Value())
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.exporting = false
		m.exportInput.Reset()
		m.exportInput.Blur()
		m.errMsg = ""
		m.status = "Сохранено в " + msg.path
		return m, m.refocus()

	case copyDoneMsg:
		if msg.page != pageAcquire {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.status = "Скопировано в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m acquireModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdExport(true))
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.exporting {
		switch {
		case key.Matches(msg, keys.esc):
			m.exporting = false
			m.exportInput.Blur()
			return m, m.refocus()
		case key.Matches(msg, keys.enter):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdExport(false))
		}
		var cmd tea.Cmd
		m.exportInput, cmd = m.exportInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.tab):
		return m.selectMethod((int(m.state.Method.Kind()) + 1) % len(input.Methods()))
	case key.Matches(msg, keys.backtab):
		n := len(input.Methods())
		return m.selectMethod((int(m.state.Method.Kind()) + n - 1) % n)
	case key.Matches(msg, keys.save):
		return m.submit(service.SubmitSave)
	case key.Matches(msg, keys.sort):
		return m.submit(service.SubmitSort)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(msg, keys.export):
		if _, ok := m.services.Output.Latest(); !ok {
			m.errMsg = errorText(service.ErrNoSortResult)
			return m, nil
		}
		m.exporting = true
		m.blurAll()
		return m, m.exportInput.Focus()
	case key.Matches(msg, keys.bulk):
		return m.toggleBulk()
	}

	switch method := m.state.Method.(type) {
	case input.Manual:
		if method.Bulk {
			return m.updateBulk(msg)
		}
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			m.commitToken()
			return m, nil
		}

	case input.Random:
		switch msg.Type {
		case tea.KeyUp:
			return m.moveRandomFocus(-1)
		case tea.KeyDown:
			return m.moveRandomFocus(1)
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdGenerate())
		}

	case input.File:
		if msg.Type == tea.KeyEnter {
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdImport())
		}

	case input.RemoteSelection:
		if m.editingDraft {
			return m.updateBulk(msg)
		}
		return m.updateSelection(msg)
	}

	return m.updateInputs(msg)
}

// selectMethod switches to the method at idx. The workflow resets the draft
// on every switch, so the inputs are reset as well.
func (m acquireModel) selectMethod(idx int) (tea.Model, tea.Cmd) {
	method := input.Methods()[idx]
	m.services.Acquisition.SelectMethod(method)
	m.state = m.services.Acquisition.State()
	m.resetInputs()

	focus := &methodFocus{m: &m}
	input.Accept(method, focus)
	return m, focus.cmd
}

func (m acquireModel) toggleBulk() (tea.Model, tea.Cmd) {
	switch method := m.state.Method.(type) {
	case input.Manual:
		m.services.Acquisition.SelectMethod(input.Manual{Bulk: !method.Bulk})
		m.state = m.services.Acquisition.State()
		m.resetInputs()
		return m, m.refocus()
	case input.RemoteSelection:
		m.editingDraft = !m.editingDraft
		return m, m.refocus()
	}
	return m, nil
}

func (m acquireModel) submit(mode service.SubmitMode) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if manual, ok := m.state.Method.(input.Manual); ok && !manual.Bulk {
		m.commitToken()
	}
	if !m.state.CanSubmit() {
		return m, nil
	}

	m.busy = true
	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(mode))
}

// commitToken appends the pending token to the draft. Leaving the token input
// commits it too, which is why submit calls this first.
func (m *acquireModel) commitToken() {
	value := strings.TrimSpace(m.token.Value())
	if value == "" {
		return
	}
	m.services.Acquisition.AppendToken(value)
	m.state = m.services.Acquisition.State()
	m.token.Reset()
}

func (m acquireModel) updateBulk(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.bulkArea, cmd = m.bulkArea.Update(msg)
	m.services.Acquisition.SetDraftText(m.bulkArea.Value())
	m.state = m.services.Acquisition.State()
	return m, cmd
}

func (m acquireModel) moveRandomFocus(delta int) (tea.Model, tea.Cmd) {
	m.random[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.random)) % len(m.random)
	return m, m.random[m.focus].Focus()
}

func (m acquireModel) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pager := m.selection.Pager()

	switch {
	case key.Matches(msg, keys.up):
		if m.selIdx > 0 {
			m.selIdx--
		}
	case key.Matches(msg, keys.down):
		if m.selIdx < len(m.selection.Items)-1 {
			m.selIdx++
		}
	case key.Matches(msg, keys.left):
		if pager.CanPrev() && !m.busy {
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSelectionPage(pager.Page-1))
		}
	case key.Matches(msg, keys.right):
		if pager.CanNext() && !m.busy {
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSelectionPage(pager.Page+1))
		}
	case key.Matches(msg, keys.enter):
		if m.selIdx >= len(m.selection.Items) {
			return m, nil
		}
		record := m.selection.Items[m.selIdx]
		m.services.Acquisition.SelectRecord(record)
		m.state = m.services.Acquisition.State()
		m.bulkArea.SetValue(input.RenderTokens(m.state.Draft))
		m.status = fmt.Sprintf("Выбран массив #%d", record.ID)
	}
	return m, nil
}

func (m acquireModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.Method.(type) {
	case input.Manual:
		m.token, cmd = m.token.Update(msg)
	case input.Random:
		m.random[m.focus], cmd = m.random[m.focus].Update(msg)
	case input.File:
		m.path, cmd = m.path.Update(msg)
	}
	return m, cmd
}

func (m *acquireModel) resetInputs() {
	m.token.Reset()
	m.bulkArea.Reset()
	for i := range m.random {
		m.random[i].Reset()
	}
	m.path.Reset()
	m.focus = 0
	m.editingDraft = false
	m.status = ""
	m.errMsg = ""
	m.blurAll()
}

func (m *acquireModel) blurAll() {
	m.token.Blur()
	m.bulkArea.Blur()
	for i := range m.random {
		m.random[i].Blur()
	}
	m.path.Blur()
}

func (m *acquireModel) refocus() tea.Cmd {
	m.blurAll()
	switch method := m.state.Method.(type) {
	case input.Manual:
		if method.Bulk {
			return m.bulkArea.Focus()
		}
		return m.token.Focus()
	case input.Random:
		return m.random[m.focus].Focus()
	case input.File:
		return m.path.Focus()
	case input.RemoteSelection:
		if m.editingDraft {
			return m.bulkArea.Focus()
		}
	}
	return nil
}

// methodFocus prepares the inputs of a freshly selected method.
type methodFocus struct {
	m   *acquireModel
	cmd tea.Cmd
}

func (f *methodFocus) VisitManual(method input.Manual) {
	if method.Bulk {
		f.cmd = f.m.bulkArea.Focus()
		return
	}
	f.cmd = f.m.token.Focus()
}

func (f *methodFocus) VisitRandom(input.Random) {
	f.m.focus = 0
	f.cmd = f.m.random[0].Focus()
}

func (f *methodFocus) VisitFile(input.File) {
	f.cmd = f.m.path.Focus()
}

func (f *methodFocus) VisitRemoteSelection(input.RemoteSelection) {
	f.m.selIdx = 0
	f.m.busy = true
	f.cmd = tea.Batch(f.m.spinner.Tick, f.m.cmdSelectionRefresh())
}

func (m acquireModel) cmdSubmit(mode service.SubmitMode) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Acquisition

	return func() tea.Msg {
		return submitDoneMsg{err: svc.Submit(ctx, mode)}
	}
}

func (m acquireModel) cmdGenerate() tea.Cmd {
	svc := m.services.Acquisition
	params := input.RandomParams{
		Count: m.random[0].Value(),
		Min:   m.random[1].Value(),
		Max:   m.random[2].Value(),
	}

	return func() tea.Msg {
		return draftLoadedMsg{err: svc.GenerateRandom(params)}
	}
}

func (m acquireModel) cmdImport() tea.Cmd {
	svc := m.services.Acquisition
	path := strings.TrimSpace(m.path.Value())

	return func() tea.Msg {
		return draftLoadedMsg{err: svc.ImportFile(path)}
	}
}

func (m acquireModel) cmdSelectionRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Selection

	return func() tea.Msg {
		return selectionLoadedMsg{err: svc.Refresh(ctx)}
	}
}

func (m acquireModel) cmdSelectionPage(page int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Selection

	return func() tea.Msg {
		return selectionLoadedMsg{err: svc.SetPage(ctx, page)}
	}
}

func (m acquireModel) cmdExport(overwrite bool) tea.Cmd {
	svc := m.services.Output
	path := strings.TrimSpace(m.exportInput.Value())

	return func() tea.Msg {
		written, err := svc.Export(path, overwrite)
		return exportDoneMsg{path: written, err: err}
	}
}

func (m acquireModel) cmdCopy() tea.Cmd {
	result, ok := m.services.Output.Latest()
	if !ok {
		return func() tea.Msg {
			return copyDoneMsg{page: pageAcquire, err: errNothingToCopy}
		}
	}
	return cmdCopyData(pageAcquire, result.Data)
}

func (m acquireModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	view := &methodView{m: m, b: &b}
	input.Accept(m.state.Method, view)

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Массив (%d): %s\n", len(m.state.Draft), previewTokens(m.state.Draft))

	if m.busy {
		b.WriteString(m.spinner.View() + " Выполняется...\n")
	}
	if notice := noticeText(m.state.Notice); notice != "" && m.errMsg == "" {
		b.WriteString(m.st.info.Render(notice) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.st.info.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.st.err.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderOutput())

	if m.exporting {
		b.WriteString("\n\nЭкспорт в файл: " + m.exportInput.View())
	}
	if m.confirm != nil {
		b.WriteString("\n\n" + m.confirm.View(m.st))
	}

	return renderPage(m.st, "ВВОД МАССИВА", b.String(), m.hotKeys())
}

func (m acquireModel) renderTabs() string {
	parts := make([]string, 0, len(input.Methods()))
	for _, method := range input.Methods() {
		label := methodLabels[method.Kind()]
		if method.Kind() == m.state.Method.Kind() {
			parts = append(parts, m.st.activeTab.Render(label))
			continue
		}
		parts = append(parts, m.st.tab.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m acquireModel) renderOutput() string {
	result, ok := m.services.Output.Latest()
	if !ok {
		return "Результат сортировки: -"
	}
	return fmt.Sprintf("Результат сортировки (%d): %s\nВремя выполнения: %s",
		len(result.Data), previewArray(result.Data), formatExecutionTime(result.ExecutionTime))
}

func (m acquireModel) hotKeys() string {
	save := "ctrl+s сохранить"
	sort := "ctrl+r сохранить и сортировать"
	if !m.state.CanSubmit() && strings.TrimSpace(m.token.Value()) == "" {
		save = m.st.disabled.Render(save)
		sort = m.st.disabled.Render(sort)
	}
	return strings.Join([]string{"tab метод", save, sort, "ctrl+y копировать", "ctrl+e экспорт"}, "  ")
}

func noticeText(n service.Notice) string {
	switch n {
	case service.NoticeArrayAdded:
		return "Массив добавлен в хранилище"
	case service.NoticeArraySorted:
		return "Массив добавлен в хранилище и отсортирован"
	default:
		return ""
	}
}

// methodView renders the input area of the active method.
type methodView struct {
	m acquireModel
	b *strings.Builder
}

func (v *methodView) VisitManual(method input.Manual) {
	if method.Bulk {
		v.b.WriteString("Ввод списком (ctrl+b: по одному)\n")
		v.b.WriteString(v.m.bulkArea.View())
		return
	}
	v.b.WriteString("Ввод по одному (enter/пробел: добавить, ctrl+b: списком)\n")
	v.b.WriteString(v.m.token.View())
}

func (v *methodView) VisitRandom(input.Random) {
	labels := []string{"Количество", "Минимум", "Максимум"}
	for i, in := range v.m.random {
		cursor := "  "
		if i == v.m.focus {
			cursor = "> "
		}
		fmt.Fprintf(v.b, "%s%-11s %s\n", cursor, labels[i]+":", in.View())
	}
	v.b.WriteString("↑/↓ поле  enter сгенерировать")
}

func (v *methodView) VisitFile(input.File) {
	v.b.WriteString("Файл: " + v.m.path.View() + "\n")
	v.b.WriteString("enter загрузить")
}

func (v *methodView) VisitRemoteSelection(input.RemoteSelection) {
	sel := v.m.selection
	if len(sel.Items) == 0 {
		v.b.WriteString("Нет записей\n")
	}
	for i, item := range sel.Items {
		cursor := "  "
		line := fmt.Sprintf("#%-6d %s", item.ID, fitText(previewArray(item.Data), 60))
		if i == v.m.selIdx && !v.m.editingDraft {
			cursor = "> "
			line = v.m.st.selected.Render(line)
		}
		v.b.WriteString(cursor + line + "\n")
	}
	if pager := sel.Pager(); pager.Visible() {
		fmt.Fprintf(v.b, "Страница %d из %d  ←/→\n", pager.Page, pager.LastPage())
	}
	v.b.WriteString("enter выбрать  ctrl+b редактировать\n")
	if v.m.editingDraft {
		v.b.WriteString(v.m.bulkArea.View())
	}
}
