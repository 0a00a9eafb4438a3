package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/contact-api/internal/errs"
	"github.com/deppfellow/contact-api/internal/model/submission"
	"github.com/deppfellow/contact-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{"id", "name", "email", "subject", "message", "created_at"}

func newMockRepo(t *testing.T) (*SubmissionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSubmissionRepository(mock), mock
}

func TestSubmissionRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(listSubmissionsQuery).
		WillReturnRows(mock.NewRows(submissionColumns).
			AddRow(int64(1), "Ann", "ann@x.com", "Hi", "Hello", now).
			AddRow(int64(2), "Bob", "bob@x.com", "Yo", "Hey", now))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, now, got[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_ListEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(listSubmissionsQuery).WillReturnRows(mock.NewRows(submissionColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(getSubmissionQuery).
		WithArgs(int64(7)).
		WillReturnRows(mock.NewRows(submissionColumns).
			AddRow(int64(7), "Ann", "ann@x.com", "Hi", "Hello", now))

	got, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, submission.Submission{
		ID: 7, Name: "Ann", Email: "ann@x.com", Subject: "Hi", Message: "Hello", CreatedAt: now,
	}, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_GetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(getSubmissionQuery).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, ErrSubmissionNotFound)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Contact Submission not found", httpErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_Insert(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	fields := submission.Fields{Name: "Ann", Email: "ann@x.com", Subject: "Hi", Message: "Hello"}

	mock.ExpectQuery(insertSubmissionQuery).
		WithArgs("Ann", "ann@x.com", "Hi", "Hello").
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

	got, err := repo.Insert(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, fields, got.Fields())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_InsertError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(insertSubmissionQuery).
		WithArgs("Ann", "ann@x.com", "Hi", "Hello").
		WillReturnError(boom)

	_, err := repo.Insert(context.Background(), submission.Fields{
		Name: "Ann", Email: "ann@x.com", Subject: "Hi", Message: "Hello",
	})
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSubmissionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(deleteSubmissionQuery).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_DeleteMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(deleteSubmissionQuery).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_DeleteAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(deleteAllSubmissionsQuery).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
