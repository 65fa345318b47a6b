package director

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pratyaksh/internal/governance"
	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/platform/postgres"
	"pratyaksh/pkg/platform/sentinel"
)

// PostgresStore persists directors in the directors table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const directorColumns = `id, din, full_name, status, disqualification_date, disqualification_reason, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, d *models.Director) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO directors (`+directorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, string(d.DIN), d.FullName, string(d.Status),
		nullDate(d), nullString(d.DisqualificationReason), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert director: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByDIN(ctx context.Context, din governance.DIN) (*models.Director, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+directorColumns+` FROM directors WHERE din = $1`, string(din))
	d, err := scanDirector(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find director by din: %w", err)
	}
	return d, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Director, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+directorColumns+` FROM directors ORDER BY created_at, din`)
	if err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}
	defer rows.Close()

	out := []*models.Director{}
	for rows.Next() {
		d, err := scanDirector(rows)
		if err != nil {
			return nil, fmt.Errorf("scan director: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate directors: %w", err)
	}
	return out, nil
}

// Update writes d only while the row's status is still from. Zero affected
// rows is ErrConflict when the row exists and ErrNotFound otherwise.
func (s *PostgresStore) Update(ctx context.Context, d *models.Director, from governance.DINStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE directors
		SET full_name = $2, status = $3, disqualification_date = $4,
		    disqualification_reason = $5, updated_at = $6
		WHERE din = $1 AND status = $7`,
		string(d.DIN), d.FullName, string(d.Status),
		nullDate(d), nullString(d.DisqualificationReason), d.UpdatedAt,
		string(from),
	)
	if err != nil {
		return fmt.Errorf("update director: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update director rows affected: %w", err)
	}
	if n == 0 {
		var exists bool
		err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM directors WHERE din = $1)`, string(d.DIN)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check director: %w", err)
		}
		if exists {
			return sentinel.ErrConflict
		}
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDirector(row rowScanner) (*models.Director, error) {
	var (
		d      models.Director
		id     uuid.UUID
		din    string
		status string
		date   sql.NullTime
		reason sql.NullString
	)
	if err := row.Scan(&id, &din, &d.FullName, &status, &date, &reason, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.ID = id
	d.DIN = governance.DIN(din)
	d.Status = governance.DINStatus(status)
	if date.Valid {
		day := date.Time.UTC()
		d.DisqualificationDate = &day
	}
	d.DisqualificationReason = reason.String
	return &d, nil
}

func nullDate(d *models.Director) sql.NullTime {
	if d.DisqualificationDate == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *d.DisqualificationDate, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
