package repository

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id         CHAR(36)         NOT NULL PRIMARY KEY,
		length     INT              NOT NULL,
		classes    TINYINT UNSIGNED NOT NULL,
		score      TINYINT          NOT NULL,
		rating     VARCHAR(8)       NOT NULL,
		count      INT              NOT NULL,
		created_at TIMESTAMP        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_events_rating (rating)
	)`

// NewDB opens a MySQL connection pool and checks that it is reachable.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the audit table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
