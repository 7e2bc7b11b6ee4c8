package preferences

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertQuery = `(?s)^\s*INSERT\s+INTO\s+preferences\s*\(key,\s*value,\s*updated_at\)\s*VALUES\s*\(\?,\s*\?,\s*CURRENT_TIMESTAMP\)\s*ON\s+CONFLICT\(key\)\s+DO\s+UPDATE.*$`

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock, db
}

func TestSetMany_Mock_CommitsInKeyOrder(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertQuery).WithArgs("neuroMode", "divergent").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQuery).WithArgs("uiMode", "dark").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetMany(context.Background(), map[string]string{"uiMode": "dark", "neuroMode": "divergent"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMany_Mock_RollsBackOnError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(upsertQuery).WithArgs("neuroMode", "divergent").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQuery).WithArgs("uiMode", "dark").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.SetMany(context.Background(), map[string]string{"uiMode": "dark", "neuroMode": "divergent"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to set preference[uiMode]")
	assert.ErrorContains(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMany_Mock_BeginError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.SetMany(context.Background(), map[string]string{"uiMode": "dark"})
	assert.ErrorContains(t, err, "no connection")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Mock_ScanError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).AddRow("uiMode", nil)
	mock.ExpectQuery(`(?s)^SELECT\s+key,\s*value\s+FROM\s+preferences$`).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to scan preference row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Mock_RowError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("uiMode", "dark").
		RowError(0, errors.New("disk I/O error"))
	mock.ExpectQuery(`(?s)^SELECT\s+key,\s*value\s+FROM\s+preferences$`).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to iterate preference rows")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_Mock(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE\s+FROM\s+preferences$`).WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
