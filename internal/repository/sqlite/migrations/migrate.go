// Package migrations brings the sqlite schema up to date at startup.
// Each embedded NNNNNN_name.sql file is one forward-only migration;
// the database only ever moves to newer versions, so there is no
// rollback path.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.sql
var migrationFiles embed.FS

// migration is a single versioned schema change.
type migration struct {
	version int
	name    string
	sql     string
}

// RunMigrations applies every migration not yet recorded in the
// migrations table. Each one runs in its own transaction together with
// its bookkeeping row, so a failed migration leaves the schema at the
// last fully-applied version.
func RunMigrations(db *sql.DB) error {
	if err := ensureMigrationsTable(db); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}

	pending, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range pending {
		if applied[m.version] {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func ensureMigrationsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := db.Exec(query)
	return err
}

// loadMigrations reads the embedded migration files, sorted by their
// numeric version prefix.
func loadMigrations() ([]migration, error) {
	entries, err := migrationFiles.ReadDir(".")
	if err != nil {
		return nil, err
	}

	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		filename := entry.Name()

		var version int
		if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil || version == 0 {
			return nil, fmt.Errorf("migration %q has no numeric version prefix", filename)
		}

		body, err := migrationFiles.ReadFile(filename)
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(filename, ".sql")
		name = name[strings.Index(name, "_")+1:]

		migrations = append(migrations, migration{
			version: version,
			name:    name,
			sql:     string(body),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})

	return migrations, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(m.sql); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", m.version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
