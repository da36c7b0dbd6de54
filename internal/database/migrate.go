package database

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies the embedded schema migrations for the connection's driver.
// It is idempotent.
func Migrate(db *sqlx.DB) error {
	dialect := db.DriverName()
	switch dialect {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("no migrations for driver %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations/"+dialect); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
