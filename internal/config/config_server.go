// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerStorage groups the array store persistence settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is the array store configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage ServerStorage
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server:  cfg.Server,
		Storage: ServerStorage{DB: cfg.Storage.DB},
	}
}
