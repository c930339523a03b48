// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	dsn := strings.TrimSpace(cfg.Storage.DB.DSN)
	if dsn == "" || strings.Contains(dsn, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	u, err := url.Parse(strings.TrimSpace(cfg.Adapter.APIURL))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: api url %q", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
