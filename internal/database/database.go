package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"sealed-auction/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// NewConnection opens a PostgreSQL connection and pings it, retrying with
// exponential backoff up to maxRetries times.
func NewConnection(ctx context.Context, databaseURL string, maxRetries uint64) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(500*time.Millisecond))
	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			utils.Warn("database ping failed", map[string]any{"attempt": attempt, "error": err.Error()})
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	utils.Info("connected to database", map[string]any{"attempts": attempt})
	return db, nil
}

// RunMigrations applies the embedded goose migrations
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	utils.Info("database migrations completed", nil)
	return nil
}
