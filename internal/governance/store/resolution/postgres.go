package resolution

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pratyaksh/internal/governance/models"
	"pratyaksh/internal/platform/postgres"
	"pratyaksh/pkg/platform/sentinel"
)

// PostgresStore persists resolutions in board_resolutions. Flags are stored
// as a text[] column.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const resolutionColumns = `id, title, agenda_text, risk_score, risk_flags, created_at`

func (s *PostgresStore) Create(ctx context.Context, r *models.BoardResolution) error {
	flags := r.RiskFlags
	if flags == nil {
		flags = []string{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO board_resolutions (`+resolutionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Title, r.AgendaText, r.RiskScore, pq.Array(flags), r.CreatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert board resolution: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*models.BoardResolution, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+resolutionColumns+` FROM board_resolutions WHERE id = $1`, id)
	r, err := scanResolution(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find board resolution: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.BoardResolution, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+resolutionColumns+` FROM board_resolutions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list board resolutions: %w", err)
	}
	defer rows.Close()

	out := []*models.BoardResolution{}
	for rows.Next() {
		r, err := scanResolution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board resolution: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate board resolutions: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResolution(row rowScanner) (*models.BoardResolution, error) {
	var r models.BoardResolution
	var flags pq.StringArray
	if err := row.Scan(&r.ID, &r.Title, &r.AgendaText, &r.RiskScore, &flags, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.RiskFlags = append([]string{}, flags...)
	return &r, nil
}
