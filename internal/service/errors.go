// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidPage      = errors.New("invalid page")
	ErrInvalidArrayData = errors.New("invalid array data")
)
