package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"quiz-maker/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies (or reverts) the embedded schema for driver.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, dir Direction) error {
	if dir != Up && dir != Down {
		return fmt.Errorf("unknown migration direction: %q", dir)
	}
	if driver == DriverOracle {
		return runOracleMigrations(ctx, db, dir)
	}

	m, err := newMigrate(db, driver)
	if err != nil {
		return err
	}

	if dir == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run %s migrations: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed successfully",
		zap.String("driver", driver),
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

func newMigrate(db *sqlx.DB, driver string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, path.Join("migrations", driver))
	if err != nil {
		return nil, fmt.Errorf("could not read migrations for %s: %w", driver, err)
	}

	var target migratedb.Driver
	switch driver {
	case DriverSQLite:
		target, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	case DriverPostgres:
		target, err = pgx.WithInstance(db.DB, &pgx.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create %s migration driver: %w", driver, err)
	}

	return migrate.NewWithInstance("iofs", src, driver, target)
}

// runOracleMigrations executes the oracle scripts statement by statement,
// since go-ora runs one statement per Exec. Applied versions are recorded in
// schema_migrations.
func runOracleMigrations(ctx context.Context, db *sqlx.DB, dir Direction) error {
	if _, err := db.ExecContext(ctx, `BEGIN
  EXECUTE IMMEDIATE 'CREATE TABLE schema_migrations (version VARCHAR2(255) PRIMARY KEY)';
EXCEPTION WHEN OTHERS THEN
  IF SQLCODE != -955 THEN RAISE; END IF;
END;`); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read applied migrations: %w", err)
	}
	appliedSet := make(map[string]bool, len(applied))
	for _, v := range applied {
		appliedSet[v] = true
	}

	files, err := migrationFiles(DriverOracle, dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		version := strings.SplitN(path.Base(file), "_", 2)[0]
		if (dir == Up) == appliedSet[version] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", file, err)
			}
		}

		if dir == Up {
			_, err = db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, version)
		} else {
			_, err = db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, version)
		}
		if err != nil {
			return fmt.Errorf("could not record migration %s: %w", version, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", file))
	}

	logger.Get().Info("Migrations completed successfully", zap.String("driver", DriverOracle), zap.String("direction", string(dir)))
	return nil
}

// migrationFiles lists the driver's scripts for dir, ascending for up and
// descending for down.
func migrationFiles(driver string, dir Direction) ([]string, error) {
	root := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrationsFS, root)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, path.Join(root, e.Name()))
		}
	}
	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

// SplitStatements splits a script on ";" and drops empty statements.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
