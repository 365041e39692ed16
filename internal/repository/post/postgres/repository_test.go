package post_repository_postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bannylog-post-service/internal/custom_errors"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/model"
	metrics_mock "bannylog-post-service/mocks/metrics"
)

// stubRow feeds canned column values into Scan so single-row queries can
// run without a live connection.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := r.values[i].(type) {
		case int64:
			*(d.(*int64)) = v
		case string:
			*(d.(*string)) = v
		case pgtype.Timestamptz:
			*(d.(*pgtype.Timestamptz)) = v
		}
	}
	return nil
}

type stubDB struct {
	row      stubRow
	queryErr error
	execTag  pgconn.CommandTag
	execErr  error
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.row
}

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, s.queryErr
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.execTag, s.execErr
}

func expectQueryMetrics(m *metrics_mock.MetricsProvider, queryType string, success bool) {
	m.On("IncrementDatabaseQueries", queryType, success).Return().Once()
	m.On("RecordDatabaseQueryDuration", queryType, mock.AnythingOfType("time.Duration")).Return().Once()
}

func TestPostRepository_GetByID_RecordsQueryMetrics(t *testing.T) {
	log := logger.New("test")
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	t.Run("success", func(t *testing.T) {
		m := new(metrics_mock.MetricsProvider)
		expectQueryMetrics(m, "post_get_by_id", true)

		db := &stubDB{row: stubRow{values: []any{int64(7), "foo", "bar", now, now}}}
		repo := NewPostRepository(db, log, m)

		post, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), post.ID)
		assert.Equal(t, "foo", post.Title)
		assert.Equal(t, "bar", post.Content)
		m.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(metrics_mock.MetricsProvider)
		expectQueryMetrics(m, "post_get_by_id", false)

		db := &stubDB{row: stubRow{err: pgx.ErrNoRows}}
		repo := NewPostRepository(db, log, m)

		_, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		m.AssertExpectations(t)
	})
}

func TestPostRepository_Create_RecordsQueryMetrics(t *testing.T) {
	log := logger.New("test")

	m := new(metrics_mock.MetricsProvider)
	expectQueryMetrics(m, "post_create", false)

	db := &stubDB{row: stubRow{err: errors.New("connection reset")}}
	repo := NewPostRepository(db, log, m)

	_, err := repo.Create(context.Background(), &model.Post{Title: "foo", Content: "bar"})

	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	m.AssertExpectations(t)
}

func TestPostRepository_List_RecordsQueryMetrics(t *testing.T) {
	log := logger.New("test")

	m := new(metrics_mock.MetricsProvider)
	expectQueryMetrics(m, "post_list", false)

	db := &stubDB{queryErr: errors.New("connection reset")}
	repo := NewPostRepository(db, log, m)

	_, err := repo.List(context.Background(), model.NewPostSearch())

	assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	m.AssertExpectations(t)
}

func TestPostRepository_Delete_RecordsQueryMetrics(t *testing.T) {
	log := logger.New("test")

	t.Run("success", func(t *testing.T) {
		m := new(metrics_mock.MetricsProvider)
		expectQueryMetrics(m, "post_delete", true)

		db := &stubDB{execTag: pgconn.NewCommandTag("DELETE 1")}
		repo := NewPostRepository(db, log, m)

		err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("no rows deleted", func(t *testing.T) {
		m := new(metrics_mock.MetricsProvider)
		expectQueryMetrics(m, "post_delete", false)

		db := &stubDB{execTag: pgconn.NewCommandTag("DELETE 0")}
		repo := NewPostRepository(db, log, m)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		m.AssertExpectations(t)
	})
}

func TestPostRepository_Count_RecordsQueryMetrics(t *testing.T) {
	log := logger.New("test")

	m := new(metrics_mock.MetricsProvider)
	expectQueryMetrics(m, "post_count", true)

	db := &stubDB{row: stubRow{values: []any{int64(3)}}}
	repo := NewPostRepository(db, log, m)

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	m.AssertExpectations(t)
}
