// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = Migrate(db, Postgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, SQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownSet(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, Set("mysql"))
	if err == nil || !strings.Contains(err.Error(), "unknown migration set") {
		t.Fatalf("expected unknown set error, got: %v", err)
	}
}

func TestEmbeddedSets(t *testing.T) {
	for _, set := range []Set{Postgres, SQLite, Client} {
		entries, err := fs.ReadDir(embedMigrations, string(set))
		if err != nil {
			t.Fatalf("set %s: %v", set, err)
		}
		if len(entries) == 0 {
			t.Errorf("set %s has no migrations", set)
		}
	}
}
