// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PreferenceStorage is the client key/value preference store.
type PreferenceStorage interface {
	// GetPreference returns [ErrPreferenceNotFound] for an unknown key.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}
