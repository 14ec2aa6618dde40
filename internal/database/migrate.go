package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"quizmaster/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction selects which way migrations are applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the embedded schema for driver. SQLite and Postgres
// are versioned by golang-migrate; Oracle uses the plain file runner.
func RunMigrations(db *sql.DB, driver string, direction Direction, log *zap.Logger) error {
	if driver == config.DriverOracle {
		return runOracleMigrations(db, direction, log)
	}

	m, err := newMigrator(db, driver)
	if err != nil {
		return err
	}

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction: %s", direction)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Schema is up to date", zap.String("driver", driver))
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not run %s migrations: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read schema version: %w", verr)
	}
	log.Info("Migrations completed successfully",
		zap.String("driver", driver),
		zap.String("direction", string(direction)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

// The returned Migrate must not be closed; that would close db.
func newMigrator(db *sql.DB, driver string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, path.Join("migrations", driver))
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations for %s: %w", driver, err)
	}

	switch driver {
	case config.DriverSQLite:
		target, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("could not prepare sqlite migrations: %w", err)
		}
		return migrate.NewWithInstance("iofs", source, "sqlite", target)
	case config.DriverPostgres:
		target, err := migratepgx.WithInstance(db, &migratepgx.Config{})
		if err != nil {
			return nil, fmt.Errorf("could not prepare postgres migrations: %w", err)
		}
		return migrate.NewWithInstance("iofs", source, "pgx5", target)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

const oracleVersionTable = "SCHEMA_MIGRATIONS"

func runOracleMigrations(db *sql.DB, direction Direction, log *zap.Logger) error {
	if err := ensureOracleVersionTable(db); err != nil {
		return err
	}
	applied, err := appliedOracleVersions(db)
	if err != nil {
		return err
	}

	suffix := "." + string(direction) + ".sql"
	files, err := fs.Glob(migrationsFS, "migrations/oracle/*"+suffix)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %v", err)
	}
	sort.Strings(files)
	if direction == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}

	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), suffix)
		if (direction == Up) == applied[version] {
			continue
		}

		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %v", file, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %v", file, err)
			}
		}

		if direction == Up {
			_, err = db.Exec("INSERT INTO "+oracleVersionTable+" (version) VALUES (:1)", version)
		} else {
			_, err = db.Exec("DELETE FROM "+oracleVersionTable+" WHERE version = :1", version)
		}
		if err != nil {
			return fmt.Errorf("could not record migration %s: %v", file, err)
		}
		log.Info("Executed migration", zap.String("file", file))

		if direction == Down {
			break
		}
	}

	log.Info("Migrations completed successfully", zap.String("driver", config.DriverOracle))
	return nil
}

func ensureOracleVersionTable(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM user_tables WHERE table_name = :1", oracleVersionTable).Scan(&count); err != nil {
		return fmt.Errorf("could not inspect schema: %v", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.Exec("CREATE TABLE " + oracleVersionTable + " (version VARCHAR2(255) PRIMARY KEY)"); err != nil {
		return fmt.Errorf("could not create version table: %v", err)
	}
	return nil
}

func appliedOracleVersions(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query("SELECT version FROM " + oracleVersionTable)
	if err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %v", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// SplitStatements splits a migration file on statement-terminating
// semicolons. go-ora executes a single statement per call.
func SplitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
