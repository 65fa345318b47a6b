package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pratyaksh/internal/evidence/models"
	"pratyaksh/internal/platform/postgres"
	"pratyaksh/pkg/platform/sentinel"
)

// PostgresStore persists evidence in evidence_logs.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const evidenceColumns = `id, user_id, evidence_type, description, file_url, file_hash, latitude, longitude, captured_at`

func (s *PostgresStore) Create(ctx context.Context, l *models.Log) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evidence_logs (`+evidenceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.UserID, l.EvidenceType, l.Description, l.FileURL, l.FileHash,
		nullFloat(l.Latitude), nullFloat(l.Longitude), l.CapturedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert evidence log: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Log, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+evidenceColumns+` FROM evidence_logs WHERE id = $1`, id)
	l, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find evidence log: %w", err)
	}
	return l, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Log, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_logs WHERE user_id = $1 ORDER BY captured_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evidence logs: %w", err)
	}
	defer rows.Close()

	out := []*models.Log{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evidence log: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evidence logs: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*models.Log, error) {
	var (
		l        models.Log
		hash     sql.NullString
		lat, lng sql.NullFloat64
	)
	err := row.Scan(&l.ID, &l.UserID, &l.EvidenceType, &l.Description, &l.FileURL, &hash, &lat, &lng, &l.CapturedAt)
	if err != nil {
		return nil, err
	}
	l.FileHash = hash.String
	if lat.Valid {
		l.Latitude = &lat.Float64
	}
	if lng.Valid {
		l.Longitude = &lng.Float64
	}
	return &l, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
