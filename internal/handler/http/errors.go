// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Callers can match against them with [errors.Is].
var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer. No record can match, so it is reported as 404.
	ErrInvalidID = errors.New("invalid array id")

	// ErrInvalidPageParam is returned when the page query parameter is not an
	// integer.
	ErrInvalidPageParam = errors.New("invalid page")

	// ErrMalformedJSON is returned when the request body cannot be decoded.
	ErrMalformedJSON = errors.New("malformed JSON body")
)
