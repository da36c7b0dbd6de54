package config

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

func NewDatabase(cfg *Config) (*sqlx.DB, error) {
	driver, dsn, err := ParseDatabaseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return db, nil
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// ParseDatabaseURL maps a DATABASE_URL to a driver name and its DSN.
// SQLite URLs follow the usual convention: sqlite:///rel.db is relative,
// sqlite:////abs/rel.db is absolute.
func ParseDatabaseURL(raw string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return "", "", fmt.Errorf("sqlite database url has no path: %q", raw)
		}
		return DriverSQLite, path, nil
	}
	return "", "", fmt.Errorf("unsupported database url: %q", raw)
}
