package repository_test_test

import (
	"testing"

	"github.com/galpartuk/Ironvest-assignment/repository/query_repository"
	"github.com/galpartuk/Ironvest-assignment/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestExistsById_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WithArgs("test@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := query_repository.NewUserQueryRepository()
	exists, err := repo.ExistsById(conn, "test@example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsById_Missing_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := query_repository.NewUserQueryRepository()
	exists, err := repo.ExistsById(conn, "missing@example.com")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
