// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
}

// ClientAdapter holds the settings of the client transport layer.
type ClientAdapter struct {
	// APIURL is the array store base URL ({apiUrl}).
	APIURL string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings. DB is the local
// preference database.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{LogFile: cfg.App.LogFile},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.ClientDB.DSN},
		},
	}
}
