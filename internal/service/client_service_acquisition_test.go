// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-array-keeper/internal/adapter"
	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/internal/mock"
	"github.com/MKhiriev/go-array-keeper/models"
)

func newTestAcquisition(t *testing.T) (AcquisitionWorkflow, *mock.MockArrayClient, SortOutput) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock.NewMockArrayClient(ctrl)
	output := NewSortOutput()
	generator := input.NewGenerator(rand.New(rand.NewPCG(1, 2)))

	return NewAcquisitionWorkflow(client, generator, output, logger.Nop()), client, output
}

func TestAcquisition_SubmitSave(t *testing.T) {
	w, client, output := newTestAcquisition(t)
	ctx := context.Background()

	w.SetDraftText("3  -1 x")

	client.EXPECT().
		Create(ctx, models.WriteArrayRequest{Data: []int64{3, 0, -1, 0}, IsSorted: false}).
		Return(models.ArrayRecord{ID: 10}, nil)

	require.NoError(t, w.Submit(ctx, SubmitSave))

	state := w.State()
	assert.Equal(t, NoticeArrayAdded, state.Notice)
	assert.Empty(t, state.Draft)
	assert.False(t, state.Pending)

	_, ok := output.Latest()
	assert.False(t, ok, "save must not publish a sort result")
}

func TestAcquisition_SubmitSort(t *testing.T) {
	w, client, output := newTestAcquisition(t)
	ctx := context.Background()

	w.SetDraftText("5 2 9")

	// сначала create, потом sort по выданному id
	gomock.InOrder(
		client.EXPECT().
			Create(ctx, models.WriteArrayRequest{Data: []int64{5, 2, 9}}).
			Return(models.ArrayRecord{ID: 42}, nil),
		client.EXPECT().
			Sort(ctx, int64(42)).
			Return(models.SortResult{Data: []int64{2, 5, 9}, ExecutionTime: 0.0123}, nil),
	)

	require.NoError(t, w.Submit(ctx, SubmitSort))
	assert.Equal(t, NoticeArraySorted, w.State().Notice)

	result, ok := output.Latest()
	require.True(t, ok)
	assert.Equal(t, []int64{2, 5, 9}, result.Data)
	assert.InDelta(t, 0.0123, result.ExecutionTime, 1e-9)
}

func TestAcquisition_SortNotIssuedWhenCreateFails(t *testing.T) {
	w, client, _ := newTestAcquisition(t)
	ctx := context.Background()

	w.SetDraftText("1 2")

	client.EXPECT().Create(ctx, gomock.Any()).Return(models.ArrayRecord{}, adapter.ErrInternalServerError)
	client.EXPECT().Sort(gomock.Any(), gomock.Any()).Times(0)

	err := w.Submit(ctx, SubmitSort)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteFailure)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	state := w.State()
	assert.Equal(t, []string{"1", "2"}, state.Draft, "draft is kept on failure")
	assert.Equal(t, NoticeNone, state.Notice)
	assert.Equal(t, GenericFailureMessage, UserMessage(state.Err))
}

func TestAcquisition_SortFailsAfterCreate(t *testing.T) {
	w, client, output := newTestAcquisition(t)
	ctx := context.Background()

	w.SetDraftText("1 2")

	client.EXPECT().Create(ctx, gomock.Any()).Return(models.ArrayRecord{ID: 3}, nil)
	client.EXPECT().Sort(ctx, int64(3)).Return(models.SortResult{}, adapter.ErrNotFound)

	err := w.Submit(ctx, SubmitSort)
	require.ErrorIs(t, err, ErrRemoteFailure)
	assert.Equal(t, NoticeArrayAdded, w.State().Notice)

	_, ok := output.Latest()
	assert.False(t, ok)
}

func TestAcquisition_EmptyDraft(t *testing.T) {
	w, client, _ := newTestAcquisition(t)
	client.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := w.Submit(context.Background(), SubmitSave)
	assert.ErrorIs(t, err, input.ErrEmptyDraft)
	assert.False(t, w.State().CanSubmit())
}

func TestAcquisition_SelectMethodResets(t *testing.T) {
	w, _, _ := newTestAcquisition(t)

	w.AppendToken("7")
	w.AppendToken(" ")
	w.AppendToken("-3")
	assert.Equal(t, []string{"7", "-3"}, w.State().Draft)

	_ = w.GenerateRandom(input.RandomParams{Count: "0", Min: "1", Max: "2"})
	require.Error(t, w.State().Err)

	w.SelectMethod(input.Random{})

	state := w.State()
	assert.Empty(t, state.Draft)
	assert.NoError(t, state.Err)
	assert.Equal(t, input.KindRandom, state.Method.Kind())
}

func TestAcquisition_GenerateRandom(t *testing.T) {
	w, _, _ := newTestAcquisition(t)

	require.NoError(t, w.GenerateRandom(input.RandomParams{Count: "20", Min: "-5", Max: "5"}))

	draft := w.State().Draft
	require.Len(t, draft, 20)
	for _, v := range input.Coerce(draft) {
		assert.GreaterOrEqual(t, v, int64(-5))
		assert.LessOrEqual(t, v, int64(5))
	}

	// ошибка валидации не трогает черновик
	err := w.GenerateRandom(input.RandomParams{Count: "3", Min: "9", Max: "1"})
	require.ErrorIs(t, err, input.ErrRandomRangeInverted)
	assert.Len(t, w.State().Draft, 20)
	assert.Equal(t, input.ErrRandomRangeInverted.Error(), UserMessage(w.State().Err))
}

func TestAcquisition_ImportFile(t *testing.T) {
	w, _, _ := newTestAcquisition(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\n  -2 \nabc\n\n8\n"), 0o600))

	require.NoError(t, w.ImportFile(path))
	assert.Equal(t, []string{"4", "-2", "8"}, w.State().Draft)

	err := w.ImportFile(filepath.Join(dir, "numbers.csv"))
	assert.ErrorIs(t, err, input.ErrFileWrongExtension)
	assert.Equal(t, []string{"4", "-2", "8"}, w.State().Draft)
}

func TestAcquisition_SelectRecord(t *testing.T) {
	w, _, _ := newTestAcquisition(t)

	w.SelectRecord(models.ArrayRecord{ID: 1, Data: []int64{9, 8}})
	assert.Equal(t, []string{"9", "8"}, w.State().Draft)
	assert.True(t, w.State().CanSubmit())
}

func TestAcquisition_RejectsConcurrentSubmit(t *testing.T) {
	w, client, _ := newTestAcquisition(t)
	ctx := context.Background()

	w.SetDraftText("1")

	started := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.WriteArrayRequest) (models.ArrayRecord, error) {
			close(started)
			<-release
			return models.ArrayRecord{ID: 1}, nil
		})

	done := make(chan error)
	go func() { done <- w.Submit(ctx, SubmitSave) }()

	<-started
	assert.True(t, w.State().Pending)
	assert.False(t, w.State().CanSubmit())
	assert.True(t, errors.Is(w.Submit(ctx, SubmitSave), ErrSubmitInProgress))

	close(release)
	require.NoError(t, <-done)
}
