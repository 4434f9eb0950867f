// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
)

// Store hands out short-lived database handles. It keeps no connection
// between calls; every WithTx opens, uses and closes its own handle.
type Store struct {
	dbType string
	url    string
}

// NewStore validates the configured backend and returns a Store for it.
func NewStore(cfg cliparse.Config) (*Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite, cliparse.DatabasePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database URL required")
	}
	// Reset removes the file at url, so it must be the exact path open connects to
	if cfg.DatabaseType == cliparse.DatabaseSQLite &&
		(strings.HasPrefix(cfg.DatabaseURL, "file:") || strings.Contains(cfg.DatabaseURL, "?")) {
		return nil, fmt.Errorf("sqlite database %q must be a plain file path", cfg.DatabaseURL)
	}
	return &Store{dbType: cfg.DatabaseType, url: cfg.DatabaseURL}, nil
}

// Type returns the configured backend (sqlite or postgres).
func (s *Store) Type() string {
	return s.dbType
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	driver := "sqlite"
	// Writers take the lock at BEGIN so concurrent requests queue on busy_timeout
	dsn := "file:" + s.url + "?_pragma=busy_timeout(5000)&_txlock=immediate"
	if s.dbType == cliparse.DatabasePostgres {
		driver = "postgres"
		dsn = s.url
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// WithTx opens a fresh handle, runs fn inside a transaction and commits.
// The transaction is rolled back when fn returns an error or panics, and
// the handle is closed on every path.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	conn, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			slog.Warn("failed to close database handle", "error", cerr)
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Init is the schema manager: it ensures every table exists and seeds the
// demonstration events on first run. Calling it repeatedly is harmless.
func (s *Store) Init(ctx context.Context) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		if err := CreateSchema(ctx, tx, s.dbType); err != nil {
			return err
		}
		seeded, err := SeedIfEmpty(ctx, tx)
		if err != nil {
			return err
		}
		if seeded {
			slog.Info("seeded demonstration events", "count", len(seedEvents))
		}
		return nil
	})
}

// Reset destroys all persisted data and recreates the seeded schema.
// For sqlite the database file is removed; for postgres the tables are dropped.
func (s *Store) Reset(ctx context.Context) error {
	if s.dbType == cliparse.DatabasePostgres {
		err := s.WithTx(ctx, func(tx *sql.Tx) error {
			for i := len(tables) - 1; i >= 0; i-- {
				if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+tables[i]+" CASCADE"); err != nil {
					return fmt.Errorf("failed to drop %s: %w", tables[i], err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else if err := os.Remove(s.url); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove database file: %w", err)
	}

	slog.Warn("database reset", "type", s.dbType)
	return s.Init(ctx)
}
