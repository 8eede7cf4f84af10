package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ConnectOptions controls connection retries
type ConnectOptions struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConnectOptions waits about a minute for the database to come up
var DefaultConnectOptions = ConnectOptions{
	MaxRetries: 30,
	RetryDelay: 2 * time.Second,
}

// Connect opens a PostgreSQL connection, retrying until it answers a ping
func Connect(dsn string, opts ConnectOptions, logger *zap.Logger) (*sql.DB, error) {
	return connect(func() (*sql.DB, error) { return sql.Open("postgres", dsn) }, opts, logger)
}

func connect(open func() (*sql.DB, error), opts ConnectOptions, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	for i := 0; i < opts.MaxRetries; i++ {
		db, err = open()
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(opts.RetryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(opts.RetryDelay)
			continue
		}

		// Dashboard reads are light
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

// Migrate applies the schema and seed data found at sourceURL
func Migrate(db *sql.DB, sourceURL string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
