// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of the optional config file. The same
// structure is accepted as JSON and as YAML.
type FileConfig struct {
	App struct {
		LogFile string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		ClientDB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"client_db,omitempty" yaml:"client_db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f FileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: f.App.LogFile},
		Storage: Storage{
			DB:       DB{Driver: f.Storage.DB.Driver, DSN: f.Storage.DB.DSN},
			ClientDB: ClientDB{DSN: f.Storage.ClientDB.DSN},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			APIURL:         f.Adapter.APIURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Bare JSON numbers are taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
