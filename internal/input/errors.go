// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package input

import "errors"

// Validation errors. They are detected locally and never reach the network.
var (
	ErrRandomNotNumeric       = errors.New("count, min and max must be integers")
	ErrRandomCountNotPositive = errors.New("count must be greater than 0")
	ErrRandomCountTooLarge    = errors.New("count must be less than 3000000")
	ErrRandomRangeInverted    = errors.New("max must be greater than min")
	ErrFileWrongExtension     = errors.New("only .txt files are accepted")
	ErrFileNoValidData        = errors.New("file contains no valid data")
	ErrEmptyDraft             = errors.New("array is empty")
)

// ErrFileRead reports an I/O failure while reading an import file. It is not a
// validation error.
var ErrFileRead = errors.New("error reading file")

// ErrExportFileExists is returned by [ExportFile] when the target exists and
// overwrite was not confirmed.
var ErrExportFileExists = errors.New("file already exists")

var validationErrors = []error{
	ErrRandomNotNumeric,
	ErrRandomCountNotPositive,
	ErrRandomCountTooLarge,
	ErrRandomRangeInverted,
	ErrFileWrongExtension,
	ErrFileNoValidData,
	ErrEmptyDraft,
}

// IsValidation reports whether err is a locally detected validation error.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
