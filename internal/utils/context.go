// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the array store
// server and the client: context keys, trace identifiers, JSON response
// writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace identifier is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx.
// ok is false when ctx carries none or it is empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
