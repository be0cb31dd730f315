package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sejanpass/sejanpass-go/internal/model"
)

var ErrNoDatabase = errors.New("audit repository has no database")

// AuditRepository persists generation events.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores one generation event.
func (r *AuditRepository) Insert(ctx context.Context, e *model.GenerationEvent) error {
	if r.db == nil {
		return ErrNoDatabase
	}

	query := `INSERT INTO generation_events (id, length, classes, score, rating, count) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Length, e.Classes, e.Score, e.Rating, e.Count)
	return err
}

// RatingCount is the number of events and passwords recorded for a rating.
type RatingCount struct {
	Rating    string
	Events    int64
	Passwords int64
}

// CountByRating groups recorded events by rating.
func (r *AuditRepository) CountByRating(ctx context.Context) ([]RatingCount, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	query := `SELECT rating, COUNT(*), COALESCE(SUM(count), 0) FROM generation_events GROUP BY rating ORDER BY rating`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []RatingCount
	for rows.Next() {
		var c RatingCount
		if err := rows.Scan(&c.Rating, &c.Events, &c.Passwords); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
