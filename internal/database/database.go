package database

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // driver: oracle
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // driver: sqlite

	"quiz-maker/internal/config"
	"quiz-maker/internal/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"

	defaultSQLiteDSN = "file:quiz-maker.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

func init() {
	// go-ora takes :name placeholders; sqlx does not know the driver name.
	sqlx.BindDriver("oracle", sqlx.NAMED)
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// driverName maps a configured driver to the database/sql driver name.
func driverName(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite", nil
	case DriverPostgres:
		return "pgx", nil
	case DriverOracle:
		return "oracle", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	name, err := driverName(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.GetDSN()
	if dsn == "" && cfg.DB.Driver == DriverSQLite {
		dsn = defaultSQLiteDSN
	}

	db, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}
	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.Driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent ingest
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", cfg.DB.Driver))
	return db, nil
}
