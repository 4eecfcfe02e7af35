package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"learnboard/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the embedded migrations of the db's dialect. Up migrates
// to the latest version. Down rolls back one version, or everything when all is set.
func RunMigrations(db *sqlx.DB, driver string, dir Direction, all bool) error {
	dialect := "oracle"
	if driver == "postgres" {
		dialect = "postgres"
	}
	src, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}
	defer src.Close()

	if dialect == "postgres" {
		return runPostgres(db.DB, src, dir, all)
	}
	return runOracle(db, src, dir, all)
}

func runPostgres(db *sql.DB, src source.Driver, dir Direction, all bool) error {
	drv, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	switch {
	case dir == Up:
		err = m.Up()
	case all:
		err = m.Down()
	default:
		err = m.Steps(-1)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", dir, err)
	}
	return nil
}

// golang-migrate ships no Oracle database driver, so Oracle migrations are
// applied statement by statement and tracked in schema_migrations.
func runOracle(db *sqlx.DB, src source.Driver, dir Direction, all bool) error {
	if err := ensureVersionTable(db); err != nil {
		return err
	}
	var current sql.NullInt64
	if err := db.Get(&current, `SELECT MAX(version) FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read migration version: %w", err)
	}

	if dir == Up {
		return oracleUp(db, src, current)
	}
	if !current.Valid {
		logger.Get().Info("No migrations to roll back")
		return nil
	}
	return oracleDown(db, src, uint(current.Int64), all)
}

func ensureVersionTable(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := db.Exec(`CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) DEFAULT 0 NOT NULL)`); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

func oracleUp(db *sqlx.DB, src source.Driver, current sql.NullInt64) error {
	v, err := src.First()
	for err == nil {
		if !current.Valid || int64(v) > current.Int64 {
			if err := applyVersion(db, src.ReadUp, v); err != nil {
				return err
			}
			if err := setVersion(db, v, true); err != nil {
				return err
			}
		}
		v, err = src.Next(v)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	return nil
}

func oracleDown(db *sqlx.DB, src source.Driver, v uint, all bool) error {
	for {
		if err := applyVersion(db, src.ReadDown, v); err != nil {
			return err
		}
		prev, err := src.Prev(v)
		if errors.Is(err, fs.ErrNotExist) {
			return setVersion(db, 0, false)
		}
		if err != nil {
			return fmt.Errorf("could not list migrations: %w", err)
		}
		if err := setVersion(db, prev, true); err != nil {
			return err
		}
		if !all {
			return nil
		}
		v = prev
	}
}

func applyVersion(db *sqlx.DB, read func(uint) (io.ReadCloser, string, error), v uint) error {
	r, ident, err := read(v)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", v, err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", v, err)
	}
	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not execute migration %d (%s): %w", v, ident, err)
		}
	}
	logger.Get().Info("Executed migration", zap.Uint("version", v), zap.String("name", ident))
	return nil
}

func setVersion(db *sqlx.DB, v uint, keep bool) error {
	if _, err := db.Exec(`DELETE FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not reset migration version: %w", err)
	}
	if !keep {
		return nil
	}
	if _, err := db.Exec(db.Rebind(`INSERT INTO schema_migrations (version, dirty) VALUES (?, 0)`), v); err != nil {
		return fmt.Errorf("could not record migration version %d: %w", v, err)
	}
	return nil
}

// splitStatements splits a migration file on ';'. go-ora executes one statement per call.
func splitStatements(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
