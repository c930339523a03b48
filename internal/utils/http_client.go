// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client bound to baseURL.
//
// Every request leaves with JSON content negotiation headers and an
// [TraceIDHeader]. The trace id is taken from the request context when
// present (see [WithTraceID]) and generated otherwise.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) != "" {
				return nil
			}
			traceID, ok := GetTraceIDFromContext(r.Context())
			if !ok {
				traceID = NewTraceID()
			}
			r.SetHeader(TraceIDHeader, traceID)
			return nil
		})

	return &HTTPClient{Client: client}
}
