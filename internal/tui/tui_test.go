// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/mock"
	"github.com/MKhiriev/go-array-keeper/internal/service"
	"github.com/MKhiriev/go-array-keeper/internal/store"
	"github.com/MKhiriev/go-array-keeper/models"
)

type testEnv struct {
	services *service.ClientServices
	client   *mock.MockArrayClient
	prefs    *mock.MockPreferenceStorage
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock.NewMockArrayClient(ctrl)
	prefs := mock.NewMockPreferenceStorage(ctrl)
	prefs.EXPECT().GetPreference(gomock.Any(), service.ThemePreferenceKey).Return("", store.ErrPreferenceNotFound)

	log := logger.Nop()
	output := service.NewSortOutput()

	return testEnv{
		services: &service.ClientServices{
			Acquisition: service.NewAcquisitionWorkflow(client, input.NewGenerator(rand.New(rand.NewPCG(1, 2))), output, log),
			Collection:  service.NewCollectionController(client, log),
			Selection:   service.NewCollectionController(client, log),
			Output:      output,
			Theme:       service.NewThemePreference(context.Background(), prefs, log),
		},
		client: client,
		prefs:  prefs,
	}
}

func keyPress(s string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":  tea.KeyEnter,
		"esc":    tea.KeyEsc,
		"tab":    tea.KeyTab,
		"space":  tea.KeySpace,
		"up":     tea.KeyUp,
		"down":   tea.KeyDown,
		"home":   tea.KeyHome,
		"end":    tea.KeyEnd,
		"pgdown": tea.KeyPgDown,
		"ctrl+b": tea.KeyCtrlB,
		"ctrl+c": tea.KeyCtrlC,
		"ctrl+e": tea.KeyCtrlE,
		"ctrl+r": tea.KeyCtrlR,
		"ctrl+s": tea.KeyCtrlS,
		"ctrl+t": tea.KeyCtrlT,
		"ctrl+y": tea.KeyCtrlY,
		"f1":     tea.KeyF1,
		"f2":     tea.KeyF2,
		"f3":     tea.KeyF3,
	}
	if kt, ok := special[s]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys one by one and returns the model with the last command.
func press(m tea.Model, names ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range names {
		m, cmd = m.Update(keyPress(k))
	}
	return m, cmd
}

// execCmd runs cmd (and every command of a batch) until it yields a message
// of type T. Blink and tick commands sleep, so they run in the background and
// are simply ignored.
func execCmd[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	found := make(chan T, 16)
	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			switch msg := c().(type) {
			case tea.BatchMsg:
				for _, sub := range msg {
					run(sub)
				}
			case T:
				found <- msg
			}
		}()
	}
	run(cmd)

	select {
	case msg := <-found:
		return msg
	case <-time.After(2 * time.Second):
		var zero T
		t.Fatalf("command produced no %T", zero)
		return zero
	}
}

func stubClipboard(t *testing.T) *string {
	t.Helper()

	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &copied
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.services, models.NewAppBuildInfo("1.2.0", "2026-10-01", ""))

	m, _ := press(root, "f1")
	view := m.View()
	assert.Contains(t, view, "ИНФОРМАЦИЯ О ПРОГРАММЕ")
	assert.Contains(t, view, "Версия: 1.2.0")
	assert.Contains(t, view, "Коммит: N/A")

	// пока окно открыто, клавиши страниц не доходят
	m, cmd := press(m, "ctrl+s")
	assert.Nil(t, cmd)

	m, _ = press(m, "esc")
	assert.Contains(t, m.View(), "ВВОД МАССИВА")
}

func TestRootModel_NavigateRefreshesCollection(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.services, models.AppBuildInfo{})

	env.client.EXPECT().FetchPage(gomock.Any(), 1).
		Return(models.ArrayPage{Results: []models.ArrayRecord{{ID: 4, Data: []int64{2, 1}}}, Count: 1}, true, nil)

	m, cmd := press(root, "f3")
	assert.Equal(t, pageCollection, m.(RootModel).current)

	m, _ = m.Update(execCmd[collectionLoadedMsg](t, cmd))
	assert.Contains(t, m.View(), "СОХРАНЁННЫЕ МАССИВЫ")
	assert.Contains(t, m.View(), "[2, 1]")

	m, cmd = press(m, "f2")
	assert.Equal(t, pageAcquire, m.(RootModel).current)
	assert.NotNil(t, cmd)
}

func TestRootModel_ThemeToggle(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.services, models.AppBuildInfo{})
	require.Equal(t, models.ThemeLight, root.st.theme)

	env.prefs.EXPECT().SetPreference(gomock.Any(), service.ThemePreferenceKey, string(models.ThemeDark)).Return(nil)

	var notified models.Theme
	cancel := env.services.Theme.OnChange(func(theme models.Theme) { notified = theme })
	defer cancel()

	m, cmd := press(root, "ctrl+t")
	toggled := execCmd[themeToggledMsg](t, cmd)
	require.NoError(t, toggled.err)
	assert.Equal(t, models.ThemeDark, notified)

	m, _ = m.Update(themeChangedMsg{theme: notified})
	assert.Equal(t, models.ThemeDark, m.(RootModel).st.theme)
}

func TestRootModel_ThemeToggleFailure(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.services, models.AppBuildInfo{})

	env.prefs.EXPECT().SetPreference(gomock.Any(), service.ThemePreferenceKey, gomock.Any()).Return(assert.AnError)

	m, cmd := press(root, "ctrl+t")
	m, _ = m.Update(execCmd[themeToggledMsg](t, cmd))

	assert.Equal(t, models.ThemeLight, m.(RootModel).st.theme)
	assert.NotEmpty(t, m.(RootModel).errMsg)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootModel(context.Background(), env.services, models.AppBuildInfo{})

	_, cmd := press(root, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
