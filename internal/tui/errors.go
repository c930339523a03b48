// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-array-keeper/internal/input"
	"github.com/MKhiriev/go-array-keeper/internal/service"
)

var errNothingToCopy = errors.New("нечего копировать")

// errorText renders err for the status line. Remote failures always read as
// the generic message; the details are in the client log.
func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrSubmitInProgress):
		return "Отправка уже выполняется"
	case errors.Is(err, service.ErrNoSortResult):
		return "Нет отсортированного массива"
	case errors.Is(err, input.ErrExportFileExists):
		return "Файл уже существует"
	default:
		return service.UserMessage(err)
	}
}
