package repository_test_test

import (
	"testing"

	"github.com/galpartuk/Ironvest-assignment/domain"
	"github.com/galpartuk/Ironvest-assignment/repository/command_repository"
	"github.com/galpartuk/Ironvest-assignment/repository/repository_test"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateUser_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := command_repository.NewUserCommandRepository()
	user, err := repo.Create(conn, &domain.User{Id: "test@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Id)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Duplicate_SQLMock(t *testing.T) {
	conn, mock := repository_test.SetupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	repo := command_repository.NewUserCommandRepository()
	_, err := repo.Create(conn, &domain.User{Id: "test@example.com"})

	assert.Error(t, err)
	assert.True(t, command_repository.IsDuplicate(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
