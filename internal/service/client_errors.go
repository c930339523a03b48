// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-array-keeper/internal/input"
)

var (
	// ErrRemoteFailure wraps every transport or server failure.
	ErrRemoteFailure = errors.New("remote array store failure")

	// ErrSubmitInProgress is returned when Submit is called while a previous
	// submission has not finished.
	ErrSubmitInProgress = errors.New("submission in progress")

	// ErrNoSortResult is returned by Export before any sort has completed.
	ErrNoSortResult = errors.New("no sorted array to export")

	// ErrInvalidTheme rejects values other than light and dark.
	ErrInvalidTheme = errors.New("invalid theme")
)

// GenericFailureMessage is shown for every remote failure.
const GenericFailureMessage = "An error occurred while loading data"

func remoteFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
}

// UserMessage renders err for the user: validation errors verbatim, remote
// failures as [GenericFailureMessage].
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case input.IsValidation(err):
		return validationCause(err).Error()
	case errors.Is(err, ErrRemoteFailure):
		return GenericFailureMessage
	default:
		return err.Error()
	}
}

func validationCause(err error) error {
	for _, target := range []error{
		input.ErrRandomNotNumeric,
		input.ErrRandomCountNotPositive,
		input.ErrRandomCountTooLarge,
		input.ErrRandomRangeInverted,
		input.ErrFileWrongExtension,
		input.ErrFileNoValidData,
		input.ErrEmptyDraft,
	} {
		if errors.Is(err, target) {
			return target
		}
	}
	return err
}
