package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DB struct {
	*sqlx.DB
	dialect dialect
}

// dialect holds the few statements MySQL and SQLite disagree on.
type dialect struct {
	timeType     string
	tableOptions string
	insertIgnore string
	forUpdate    string
	inlineIndex  bool
}

var dialects = map[string]dialect{
	DriverMySQL: {
		timeType:     "DATETIME(6)",
		tableOptions: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci",
		insertIgnore: "INSERT IGNORE",
		forUpdate:    " FOR UPDATE",
		inlineIndex:  true,
	},
	DriverSQLite: {
		timeType:     "DATETIME",
		insertIgnore: "INSERT OR IGNORE",
	},
}

func Open(driver, dsn string) (*DB, error) {
	dl, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("db: unsupported driver %q", driver)
	}
	xdb, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer; a second connection would hit SQLITE_BUSY inside transactions
		xdb.SetMaxOpenConns(1)
	} else {
		xdb.SetConnMaxLifetime(2 * time.Hour)
		xdb.SetMaxIdleConns(10)
		xdb.SetMaxOpenConns(50)
	}
	if err := xdb.Ping(); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return &DB{DB: xdb, dialect: dl}, nil
}

// Connect is Open retried once a second until ctx is done, for a MySQL
// server that is still starting next to the API.
func Connect(ctx context.Context, driver, dsn string) (*DB, error) {
	var lastErr error
	for {
		d, err := Open(driver, dsn)
		if err == nil {
			return d, nil
		}
		if _, ok := dialects[driver]; !ok {
			return nil, err
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database not reachable: %w", lastErr)
		case <-time.After(time.Second):
		}
	}
}

func (d *DB) Close() error { return d.DB.Close() }

func EnsureSchema(ctx context.Context, d *DB) error {
	for _, s := range schema(d.dialect) {
		if _, err := d.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// now is the timestamp written to created_at/updated_at, truncated to what
// DATETIME(6) keeps.
func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// Dev-time schema (inline DDL)

func schema(dl dialect) []string {
	ts := dl.timeType
	reviewsIndex := ""
	if dl.inlineIndex {
		reviewsIndex = ",\n\t\t\tINDEX (place_id)"
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS places (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at ` + ts + ` NOT NULL,
			updated_at ` + ts + ` NOT NULL,
			city_id VARCHAR(60) NOT NULL DEFAULT '',
			user_id VARCHAR(60) NOT NULL DEFAULT '',
			name VARCHAR(128) NOT NULL,
			description VARCHAR(1024) NOT NULL DEFAULT '',
			number_rooms INT NOT NULL DEFAULT 0,
			number_bathrooms INT NOT NULL DEFAULT 0,
			max_guest INT NOT NULL DEFAULT 0,
			price_by_night INT NOT NULL DEFAULT 0,
			latitude DOUBLE NOT NULL DEFAULT 0,
			longitude DOUBLE NOT NULL DEFAULT 0,
			amenity_ids TEXT NULL
		)` + dl.tableOptions,

		`CREATE TABLE IF NOT EXISTS amenities (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at ` + ts + ` NOT NULL,
			updated_at ` + ts + ` NOT NULL,
			name VARCHAR(128) NOT NULL
		)` + dl.tableOptions,

		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at ` + ts + ` NOT NULL,
			updated_at ` + ts + ` NOT NULL,
			email VARCHAR(128) NOT NULL,
			password VARCHAR(128) NOT NULL,
			first_name VARCHAR(128) NOT NULL DEFAULT '',
			last_name VARCHAR(128) NOT NULL DEFAULT ''
		)` + dl.tableOptions,

		`CREATE TABLE IF NOT EXISTS reviews (
			id VARCHAR(60) NOT NULL PRIMARY KEY,
			created_at ` + ts + ` NOT NULL,
			updated_at ` + ts + ` NOT NULL,
			place_id VARCHAR(60) NOT NULL,
			user_id VARCHAR(60) NOT NULL,
			text VARCHAR(1024) NOT NULL` + reviewsIndex + `
		)` + dl.tableOptions,

		// relational-mode link table; linked_at keeps collection order
		`CREATE TABLE IF NOT EXISTS place_amenity (
			place_id VARCHAR(60) NOT NULL,
			amenity_id VARCHAR(60) NOT NULL,
			linked_at ` + ts + ` NOT NULL,
			PRIMARY KEY (place_id, amenity_id)
		)` + dl.tableOptions,
	}
	if !dl.inlineIndex {
		stmts = append(stmts, `CREATE INDEX IF NOT EXISTS idx_reviews_place_id ON reviews (place_id)`)
	}
	return stmts
}
