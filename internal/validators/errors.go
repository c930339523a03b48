// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyData  = errors.New("data is required")
	ErrInvalidID  = errors.New("invalid array id")
	ErrNilRequest = errors.New("request is nil")
)
