// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// array store handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON response bodies. Keeping them in one place keeps the
// wording of the API consistent.
package app

const (
	// MsgNotFound is returned for unknown routes, unsupported methods and
	// ids that match no record.
	MsgNotFound = "not found"

	// MsgInternalServerError replaces the details of every server-side
	// failure; the details go to the log only.
	MsgInternalServerError = "internal server error"
)
