package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratyaksh/internal/evidence/models"
	"pratyaksh/pkg/platform/sentinel"
)

var columns = []string{"id", "user_id", "evidence_type", "description", "file_url", "file_hash", "latitude", "longitude", "captured_at"}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgresCreate(t *testing.T) {
	now := time.Date(2025, time.February, 2, 10, 0, 0, 0, time.UTC)

	t.Run("null coordinates", func(t *testing.T) {
		store, mock := newMockStore(t)
		l := &models.Log{ID: uuid.New(), UserID: "alice", EvidenceType: "PHOTO", FileHash: "ab", CapturedAt: now}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO evidence_logs")).
			WithArgs(l.ID, "alice", "PHOTO", "", "", "ab", nil, nil, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Create(context.Background(), l))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("coordinates", func(t *testing.T) {
		store, mock := newMockStore(t)
		lat, lng := 18.52, 73.85
		l := &models.Log{ID: uuid.New(), UserID: "alice", EvidenceType: "PHOTO", FileHash: "ab", Latitude: &lat, Longitude: &lng, CapturedAt: now}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO evidence_logs")).
			WithArgs(l.ID, "alice", "PHOTO", "", "", "ab", 18.52, 73.85, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Create(context.Background(), l))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO evidence_logs")).
			WillReturnError(&pq.Error{Code: "23505"})

		err := store.Create(context.Background(), &models.Log{ID: uuid.New(), CapturedAt: now})
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	})
}

func TestPostgresFindByID(t *testing.T) {
	id := uuid.New()
	now := time.Date(2025, time.February, 2, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM evidence_logs WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(id).WillReturnRows(
			sqlmock.NewRows(columns).AddRow(id.String(), "alice", "PHOTO", "gate", "", "ab", 18.52, nil, now),
		)

		l, err := store.FindByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, l.Latitude)
		assert.Equal(t, 18.52, *l.Latitude)
		assert.Nil(t, l.Longitude)
		assert.Equal(t, "gate", l.Description)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(sql.ErrNoRows)

		_, err := store.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(errors.New("conn reset"))

		_, err := store.FindByID(context.Background(), id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgresListByUser(t *testing.T) {
	now := time.Date(2025, time.February, 2, 10, 0, 0, 0, time.UTC)

	t.Run("with limit", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY captured_at DESC LIMIT $2")).
			WithArgs("alice", 5).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.NewString(), "alice", "PHOTO", "", "", "ab", nil, nil, now).
				AddRow(uuid.NewString(), "alice", "SITE_VISIT", "", "", nil, nil, nil, now.Add(-time.Hour)))

		list, err := store.ListByUser(context.Background(), "alice", 5)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "SITE_VISIT", list[1].EvidenceType)
		assert.Empty(t, list[1].FileHash)
	})

	t.Run("without limit", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY captured_at DESC")).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows(columns))

		list, err := store.ListByUser(context.Background(), "bob", 0)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
