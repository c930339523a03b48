// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// expectStatus returns nil when resp carries exactly want. Error statuses are
// mapped by mapHTTPError; any other status is [ErrUnexpectedStatus].
func expectStatus(resp *resty.Response, want int) error {
	if resp.StatusCode() == want {
		return nil
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	return fmt.Errorf("%w: got %d, want %d", ErrUnexpectedStatus, resp.StatusCode(), want)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
