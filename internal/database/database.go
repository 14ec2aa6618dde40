package database

import (
	"context"
	"fmt"

	"quizmaster/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver, registered as "sqlite"
)

func init() {
	// sqlx does not know these driver names; queries are written with '?'
	// and rebound per driver.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps a configured db.driver to the database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite", nil
	case config.DriverPostgres:
		return "pgx", nil
	case config.DriverOracle:
		return "oracle", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// NewSQLXDB opens and pings a connection pool for the configured driver.
func NewSQLXDB(ctx context.Context, driver, dsn string, log *zap.Logger) (*sqlx.DB, error) {
	driverName, err := DriverName(driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// One writer at a time; also keeps an in-memory database alive on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	log.Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}
