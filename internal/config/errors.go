// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an API URL without host or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
