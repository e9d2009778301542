// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pgtest opens a migrated PostgreSQL pool for repository tests.

Tests that need a real database call [Open]. When TEST_DATABASE_URL is unset
the test is skipped, so the default `go test ./...` run stays hermetic.

Every call resets the catalogue: all migrations are rolled back and
re-applied, leaving exactly the seed rows in place. Packages share the
database, so run these tests with `go test -p 1 ./...`.
*/
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/migration"
	"github.com/taibuivan/folio/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the test connection string.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Open returns a pool on a freshly migrated and seeded catalogue.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set; skipping PostgreSQL test", EnvDatabaseURL)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	migrations := MigrationsPath()

	require.NoError(t, migration.RunDown(dsn, migrations, logger))
	require.NoError(t, migration.RunUp(dsn, migrations, logger))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// MigrationsPath locates data/migrations relative to this source file.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
