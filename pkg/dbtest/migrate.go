// Package dbtest prepares databases for integration tests.
package dbtest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes the SQL files over db in the given order.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		script, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(script)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", filepath.Base(fileName), err)
		}
	}

	return nil
}

// MigrateFromDir executes every *.sql file of dir in lexical order, so
// migrations are expected to be named 001_x.sql, 002_y.sql and so on.
func MigrateFromDir(db *sqlx.DB, dir string) error {
	fileNames, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("filepath.Glob: %w", err)
	}

	if len(fileNames) == 0 {
		return fmt.Errorf("no migrations in %s: %w", dir, os.ErrNotExist)
	}

	slices.Sort(fileNames)

	return MigrateFromFile(db, fileNames...)
}
