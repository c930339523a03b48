// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/models"
)

// SubmitMode selects which submit control was activated.
type SubmitMode int

const (
	// SubmitSave persists the draft only.
	SubmitSave SubmitMode = iota
	// SubmitSort persists the draft and then sorts the new record.
	SubmitSort
)

// Notice is an informational outcome of a submission.
type Notice int

const (
	NoticeNone Notice = iota
	// NoticeArrayAdded follows a successful save.
	NoticeArrayAdded
	// NoticeArraySorted follows a successful save and sort.
	NoticeArraySorted
)

// AcquisitionState is a snapshot of [AcquisitionWorkflow].
type AcquisitionState struct {
	Method  input.Method
	Draft   []string
	Err     error
	Notice  Notice
	Pending bool
}

// CanSubmit reports whether the submit controls are enabled.
func (s AcquisitionState) CanSubmit() bool {
	return len(s.Draft) > 0 && !s.Pending
}

// CollectionView is a snapshot of [CollectionController].
type CollectionView struct {
	Page       int
	SearchID   *int64
	Items      []models.ArrayRecord
	TotalCount int
	Err        error
	Editing    *models.ArrayRecord
}

// Searching reports whether a search-by-id filter is active.
func (v CollectionView) Searching() bool {
	return v.SearchID != nil
}

// Pager returns the pagination bounds of the view.
func (v CollectionView) Pager() Pager {
	return Pager{
		Page:       v.Page,
		ItemCount:  len(v.Items),
		TotalCount: v.TotalCount,
		Searching:  v.Searching(),
	}
}
