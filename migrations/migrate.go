// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schemas of every database the module
// talks to and applies them on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Set names one embedded directory of migrations.
type Set string

const (
	// Postgres is the server schema for the pgx driver.
	Postgres Set = "postgres"
	// SQLite is the server schema for the sqlite3 driver.
	SQLite Set = "sqlite"
	// Client is the local preference database of the terminal client.
	Client Set = "client"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

func (s Set) dialect() (string, error) {
	switch s {
	case Postgres:
		return "pgx", nil
	case SQLite, Client:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unknown migration set %q", string(s))
	}
}

// Migrate brings db up to the latest version of set.
func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, err := set.dialect()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(set)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
