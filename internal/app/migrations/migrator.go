package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Executor is the subset of the pool the migrator needs.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Migrator ensures the schema exists. Every script is written to be idempotent
// (CREATE ... IF NOT EXISTS) so it is safe to run on every start.
type Migrator struct {
	db     Executor
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator using the embedded schema scripts
func NewMigrator(db Executor, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		files:  schemaFiles,
		logger: lgr,
	}
}

// scripts returns the embedded SQL file names in execution order
func (m *Migrator) scripts() ([]string, error) {
	entries, err := fs.ReadDir(m.files, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema scripts: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}

	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// EnsureSchema runs every schema script in order. Existing tables and rows are left untouched.
func (m *Migrator) EnsureSchema(ctx context.Context) error {
	sqlFiles, err := m.scripts()
	if err != nil {
		return err
	}

	for _, file := range sqlFiles {
		content, err := fs.ReadFile(m.files, path.Join("sql", file))
		if err != nil {
			return fmt.Errorf("failed to read schema script %s: %w", file, err)
		}

		if _, err := m.db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("schema script %s failed: %w", file, err)
		}
		m.logger.Debug().Str("script", file).Msg("Schema script applied")
	}

	m.logger.Info().Int("scripts", len(sqlFiles)).Msg("Students table is ready")
	return nil
}
