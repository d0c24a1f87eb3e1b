package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"examgen/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies every pending up migration for the dialect.
// sqlite and postgres go through golang-migrate; Oracle uses a small
// version-table runner because golang-migrate has no go-ora driver.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	switch dialect {
	case "sqlite", "postgres":
		return runGolangMigrate(db, dialect)
	case "oracle":
		return runOracleMigrations(ctx, db)
	}
	return fmt.Errorf("unsupported database dialect %q", dialect)
}

func runGolangMigrate(db *sql.DB, dialect string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	var drv database.Driver
	switch dialect {
	case "sqlite":
		drv, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case "postgres":
		drv, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	}
	if err != nil {
		return fmt.Errorf("could not create %s migration driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, drv)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", err)
	}
	logger.Get().Info("Migrations completed", zap.String("dialect", dialect), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

type oracleMigration struct {
	version uint
	name    string
}

func runOracleMigrations(ctx context.Context, db *sql.DB) error {
	var exists int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`).Scan(&exists); err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if exists == 0 {
		if _, err := db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY, applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)`); err != nil {
			return fmt.Errorf("could not create schema_migrations: %w", err)
		}
	}

	var current sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("could not read current version: %w", err)
	}

	pending, err := listOracleMigrations(uint(current.Int64))
	if err != nil {
		return err
	}
	for _, mig := range pending {
		content, err := fs.ReadFile(migrationsFS, "migrations/oracle/"+mig.name)
		if err != nil {
			return fmt.Errorf("could not read migration %s: %w", mig.name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", mig.name, err)
			}
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, mig.version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", mig.name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", mig.name))
	}

	logger.Get().Info("Migrations completed", zap.String("dialect", "oracle"), zap.Int("applied", len(pending)))
	return nil
}

func listOracleMigrations(after uint) ([]oracleMigration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations/oracle")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var out []oracleMigration
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration %s has no version prefix", e.Name())
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has an invalid version: %w", e.Name(), err)
		}
		if uint(v) > after {
			out = append(out, oracleMigration{version: uint(v), name: e.Name()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

// SplitStatements splits a script on semicolons that end a line and drops
// comment-only lines. go-ora executes one statement per call, without the
// trailing semicolon.
func SplitStatements(script string) []string {
	var stmts []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(trimmed, ";"))
			stmts = append(stmts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteString(trimmed)
		cur.WriteByte(' ')
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
