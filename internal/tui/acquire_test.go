// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/models"
)

func newTestAcquire(t *testing.T) (tea.Model, testEnv) {
	t.Helper()

	env := newTestEnv(t)
	return newAcquireModel(context.Background(), env.services, newStyles(models.ThemeLight)), env
}

func TestAcquire_ManualTokensSave(t *testing.T) {
	m, env := newTestAcquire(t)

	env.client.EXPECT().
		Create(gomock.Any(), models.WriteArrayRequest{Data: []int64{5, -3}, IsSorted: false}).
		Return(models.ArrayRecord{ID: 1, Data: []int64{5, -3}}, nil)

	m, _ = press(m, "5", "space", "-3")
	// незафиксированный токен уходит в массив при отправке
	m, cmd := press(m, "ctrl+s")
	assert.True(t, m.(acquireModel).busy)

	m, _ = m.Update(execCmd[submitDoneMsg](t, cmd))

	am := m.(acquireModel)
	assert.False(t, am.busy)
	assert.Empty(t, am.state.Draft)
	assert.Contains(t, m.View(), "Массив добавлен в хранилище")
}

func TestAcquire_SubmitDisabledWhileDraftEmpty(t *testing.T) {
	m, _ := newTestAcquire(t)

	m, cmd := press(m, "ctrl+s")
	assert.Nil(t, cmd)
	assert.False(t, m.(acquireModel).busy)

	_, cmd = press(m, "ctrl+r")
	assert.Nil(t, cmd)
}

func TestAcquire_BulkSortPublishesOutput(t *testing.T) {
	m, env := newTestAcquire(t)

	gomock.InOrder(
		env.client.EXPECT().
			Create(gomock.Any(), models.WriteArrayRequest{Data: []int64{5, 3, 9}, IsSorted: false}).
			Return(models.ArrayRecord{ID: 11}, nil),
		env.client.EXPECT().
			Sort(gomock.Any(), int64(11)).
			Return(models.SortResult{Data: []int64{3, 5, 9}, ExecutionTime: 1.5}, nil),
	)

	m, _ = press(m, "ctrl+b", "5 3 9")
	require.Equal(t, input.Manual{Bulk: true}, m.(acquireModel).state.Method)
	require.Equal(t, []string{"5", "3", "9"}, m.(acquireModel).state.Draft)

	m, cmd := press(m, "ctrl+r")
	m, _ = m.Update(execCmd[submitDoneMsg](t, cmd))

	view := m.View()
	assert.Contains(t, view, "Массив добавлен в хранилище и отсортирован")
	assert.Contains(t, view, "[3, 5, 9]")
	assert.Contains(t, view, "Время выполнения: 1.5 мс")
}

func TestAcquire_SubmitFailureKeepsDraft(t *testing.T) {
	m, env := newTestAcquire(t)

	env.client.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ArrayRecord{}, assert.AnError)

	m, _ = press(m, "ctrl+b", "1 2")
	m, cmd := press(m, "ctrl+r")
	m, _ = m.Update(execCmd[submitDoneMsg](t, cmd))

	assert.Equal(t, []string{"1", "2"}, m.(acquireModel).state.Draft)
	assert.Contains(t, m.View(), service.GenericFailureMessage)
}

func TestAcquire_RandomValidation(t *testing.T) {
	m, _ := newTestAcquire(t)

	m, _ = press(m, "tab")
	require.Equal(t, input.Random{}, m.(acquireModel).state.Method)

	m, _ = press(m, "0", "down", "1", "down", "5")
	m, cmd := press(m, "enter")
	m, _ = m.Update(execCmd[draftLoadedMsg](t, cmd))

	assert.Equal(t, input.ErrRandomCountNotPositive.Error(), m.(acquireModel).errMsg)
	assert.Empty(t, m.(acquireModel).state.Draft)
}

func TestAcquire_RandomGenerates(t *testing.T) {
	m, _ := newTestAcquire(t)

	m, _ = press(m, "tab", "4", "down", "1", "down", "3")
	m, cmd := press(m, "enter")
	m, _ = m.Update(execCmd[draftLoadedMsg](t, cmd))

	am := m.(acquireModel)
	assert.Empty(t, am.errMsg)
	// текстовое поле скрыто и не заполняется
	assert.Empty(t, am.bulkArea.Value())
	require.Len(t, am.state.Draft, 4)
	for _, v := range input.Coerce(am.state.Draft) {
		assert.True(t, v >= 1 && v <= 3)
	}
}

func TestAcquire_FileImport(t *testing.T) {
	m, _ := newTestAcquire(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\nabc\n 2 \n"), 0o644))

	m, _ = press(m, "tab", "tab", path)
	require.Equal(t, input.File{}, m.(acquireModel).state.Method)

	m, cmd := press(m, "enter")
	m, _ = m.Update(execCmd[draftLoadedMsg](t, cmd))

	assert.Equal(t, []string{"4", "2"}, m.(acquireModel).state.Draft)
	assert.Empty(t, m.(acquireModel).bulkArea.Value())
}

func TestAcquire_RemoteSelection(t *testing.T) {
	m, env := newTestAcquire(t)

	env.client.EXPECT().FetchPage(gomock.Any(), 1).Return(models.ArrayPage{
		Results: []models.ArrayRecord{
			{ID: 1, Data: []int64{1}},
			{ID: 2, Data: []int64{8, 6, 7}},
		},
		Count: 2,
	}, true, nil)

	m, cmd := press(m, "tab", "tab", "tab")
	require.Equal(t, input.RemoteSelection{}, m.(acquireModel).state.Method)

	m, _ = m.Update(execCmd[selectionLoadedMsg](t, cmd))
	m, _ = press(m, "down", "enter")

	am := m.(acquireModel)
	assert.Equal(t, []string{"8", "6", "7"}, am.state.Draft)
	assert.Equal(t, "Выбран массив #2", am.status)

	// правка выбранного массива перед отправкой
	m, _ = press(m, "ctrl+b", " 5")
	assert.Equal(t, []string{"8", "6", "7", "5"}, m.(acquireModel).state.Draft)
}

func TestAcquire_SwitchingMethodResetsDraft(t *testing.T) {
	m, _ := newTestAcquire(t)

	m, _ = press(m, "1", "enter", "2", "enter")
	require.Len(t, m.(acquireModel).state.Draft, 2)

	m, _ = press(m, "tab")
	assert.Empty(t, m.(acquireModel).state.Draft)
}

func TestAcquire_ExportWithOverwriteConfirm(t *testing.T) {
	m, env := newTestAcquire(t)
	env.services.Output.Publish(models.SortResult{Data: []int64{1, 2, 3}, ExecutionTime: 0.5})

	path := filepath.Join(t.TempDir(), "sorted.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	m, _ = press(m, "ctrl+e", path)
	m, cmd := press(m, "enter")
	m, _ = m.Update(execCmd[exportDoneMsg](t, cmd))
	require.NotNil(t, m.(acquireModel).confirm)
	assert.Contains(t, m.View(), "Перезаписать?")

	m, cmd = press(m, "y")
	m, _ = m.Update(execCmd[exportDoneMsg](t, cmd))

	am := m.(acquireModel)
	assert.False(t, am.exporting)
	assert.Equal(t, "Сохранено в "+path, am.status)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(content))
}

func TestAcquire_ExportWithoutResult(t *testing.T) {
	m, _ := newTestAcquire(t)

	m, cmd := press(m, "ctrl+e")
	assert.Nil(t, cmd)
	assert.False(t, m.(acquireModel).exporting)
	assert.Equal(t, "Нет отсортированного массива", m.(acquireModel).errMsg)
}

func TestAcquire_CopyOutput(t *testing.T) {
	copied := stubClipboard(t)
	m, env := newTestAcquire(t)
	env.services.Output.Publish(models.SortResult{Data: []int64{-1, 0, 4}})

	m, cmd := press(m, "ctrl+y")
	m, _ = m.Update(execCmd[copyDoneMsg](t, cmd))

	assert.Equal(t, "-1 0 4", *copied)
	assert.Equal(t, "Скопировано в буфер обмена", m.(acquireModel).status)
}
