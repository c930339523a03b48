// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/models"
)

// AcquisitionWorkflow owns the draft array and its submission. The draft is a
// sequence of tokens that may still hold placeholders (see
// [input.ParseTokens]); it is coerced to integers only on Submit.
type AcquisitionWorkflow interface {
	// SelectMethod switches the acquisition method. The draft, the error and
	// the info notice are reset even if m equals the current method.
	SelectMethod(m input.Method)

	// SetDraftText replaces the draft with the parse of whitespace-delimited
	// text. Used by bulk manual entry and by editing a remote selection.
	SetDraftText(text string)

	// AppendToken commits one token of token-at-a-time manual entry.
	AppendToken(token string)

	// GenerateRandom validates p and replaces the draft with a random array.
	// On a validation error the draft is left untouched and the error is kept
	// in the state.
	GenerateRandom(p input.RandomParams) error

	// ImportFile replaces the draft with the integers read from path.
	ImportFile(path string) error

	// SelectRecord copies the data of a stored array into the draft.
	SelectRecord(record models.ArrayRecord)

	// Submit persists the draft with is_sorted=false. In [SubmitSort] mode
	// the new record is then sorted by id and the result published to the
	// sort output. Sort is never issued if create fails.
	Submit(ctx context.Context, mode SubmitMode) error

	// State returns a copy of the current state.
	State() AcquisitionState
}

// CollectionController keeps a paginated or searched view of stored arrays
// consistent with the remote store. Every successful mutation is followed by
// a refetch; items are never patched locally.
type CollectionController interface {
	// Refresh refetches the current page, or the searched record when a
	// search is active.
	Refresh(ctx context.Context) error

	// SetPage moves to page (values below 1 are clamped to 1) and refetches
	// if the page changed.
	SetPage(ctx context.Context, page int) error

	// Search filters the view by id. Blank text clears the filter. Text that
	// is not an id shows an empty result without a network call.
	Search(ctx context.Context, text string) error

	// OpenEdit opens the edit dialog for a record from the current items.
	OpenEdit(id int64) bool

	// CloseEdit closes the edit dialog.
	CloseEdit()

	// SaveEdit stores tokens as the record data with is_sorted=false.
	SaveEdit(ctx context.Context, id int64, tokens []string) error

	// SortRecord stores tokens with is_sorted=false and, only if that
	// succeeds, sorts the record remotely.
	SortRecord(ctx context.Context, id int64, tokens []string) error

	// Delete removes the record.
	Delete(ctx context.Context, id int64) error

	// View returns a copy of the current view.
	View() CollectionView
}

// SortOutput holds the latest sort result shown to the user.
type SortOutput interface {
	Publish(result models.SortResult)
	Latest() (models.SortResult, bool)
	// Export writes the latest sorted array to a .txt file and returns the
	// path written.
	Export(path string, overwrite bool) (string, error)
}

// ThemePreference is the process-wide light/dark setting.
type ThemePreference interface {
	Get() models.Theme
	// Set persists theme and notifies subscribers when it changed.
	Set(ctx context.Context, theme models.Theme) error
	// Toggle switches between light and dark.
	Toggle(ctx context.Context) (models.Theme, error)
	// OnChange registers fn and returns a function that unregisters it.
	OnChange(fn func(models.Theme)) (cancel func())
}
