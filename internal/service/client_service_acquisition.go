// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-array-keeper/internal/adapter"
	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/logger"
	"github.com/MKhiriev/go-array-keeper/models"
)

type acquisitionWorkflow struct {
	client    adapter.ArrayClient
	generator *input.Generator
	output    SortOutput

	mu      sync.Mutex
	method  input.Method
	draft   []string
	err     error
	notice  Notice
	pending bool

	logger *logger.Logger
}

// NewAcquisitionWorkflow creates an [AcquisitionWorkflow] starting with
// token-at-a-time manual entry.
func NewAcquisitionWorkflow(client adapter.ArrayClient, generator *input.Generator, output SortOutput, logger *logger.Logger) AcquisitionWorkflow {
	return &acquisitionWorkflow{
		client:    client,
		generator: generator,
		output:    output,
		method:    input.Manual{},
		logger:    logger,
	}
}

func (w *acquisitionWorkflow) SelectMethod(m input.Method) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.method = m
	w.draft = nil
	w.err = nil
	w.notice = NoticeNone
}

func (w *acquisitionWorkflow) SetDraftText(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = input.ParseTokens(text)
}

func (w *acquisitionWorkflow) AppendToken(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = input.AppendToken(w.draft, token)
}

func (w *acquisitionWorkflow) GenerateRandom(p input.RandomParams) error {
	data, err := w.generator.Generate(p)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.err = err
		return err
	}
	w.draft = input.FromInts(data)
	w.err = nil
	return nil
}

func (w *acquisitionWorkflow) ImportFile(path string) error {
	data, err := input.ImportFile(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.err = err
		w.logger.Err(err).Str("func", "acquisitionWorkflow.ImportFile").Str("path", path).Msg("file import failed")
		return err
	}
	w.draft = input.FromInts(data)
	w.err = nil
	return nil
}

func (w *acquisitionWorkflow) SelectRecord(record models.ArrayRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = input.FromInts(record.Data)
	w.err = nil
}

func (w *acquisitionWorkflow) Submit(ctx context.Context, mode SubmitMode) error {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return ErrSubmitInProgress
	}
	data := input.Coerce(w.draft)
	if len(data) == 0 {
		w.err = input.ErrEmptyDraft
		w.mu.Unlock()
		return input.ErrEmptyDraft
	}
	w.pending = true
	w.err = nil
	w.notice = NoticeNone
	w.mu.Unlock()

	notice, err := w.submit(ctx, mode, data)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = false
	w.notice = notice
	if err != nil {
		w.err = err
		return err
	}
	w.draft = nil
	return nil
}

// submit runs create and, in sort mode, sort strictly one after another.
func (w *acquisitionWorkflow) submit(ctx context.Context, mode SubmitMode, data []int64) (Notice, error) {
	record, err := w.client.Create(ctx, models.WriteArrayRequest{Data: data, IsSorted: false})
	if err != nil {
		return NoticeNone, remoteFailure(err)
	}

	if mode == SubmitSave {
		return NoticeArrayAdded, nil
	}

	result, err := w.client.Sort(ctx, record.ID)
	if err != nil {
		return NoticeArrayAdded, remoteFailure(err)
	}
	w.output.Publish(result)

	w.logger.Debug().
		Str("func", "acquisitionWorkflow.Submit").
		Int64("array_id", record.ID).
		Float64("execution_time", result.ExecutionTime).
		Msg("array added and sorted")

	return NoticeArraySorted, nil
}

func (w *acquisitionWorkflow) State() AcquisitionState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return AcquisitionState{
		Method:  w.method,
		Draft:   slices.Clone(w.draft),
		Err:     w.err,
		Notice:  w.notice,
		Pending: w.pending,
	}
}
