// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/models"
)

type sortOutput struct {
	mu     sync.RWMutex
	result models.SortResult
	ok     bool
}

// NewSortOutput returns an empty [SortOutput].
func NewSortOutput() SortOutput {
	return &sortOutput{}
}

func (o *sortOutput) Publish(result models.SortResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	result.Data = slices.Clone(result.Data)
	o.result = result
	o.ok = true
}

func (o *sortOutput) Latest() (models.SortResult, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := o.result
	result.Data = slices.Clone(result.Data)
	return result, o.ok
}

func (o *sortOutput) Export(path string, overwrite bool) (string, error) {
	result, ok := o.Latest()
	if !ok {
		return "", ErrNoSortResult
	}

	return input.ExportFile(path, result.Data, overwrite)
}
