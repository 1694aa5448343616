package repository

import (
	"bank-admin-api/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newUserRepoForTest(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), dbMock
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, dbMock := newUserRepoForTest(t)

	user := &model.User{
		Name:      "John Smith",
		Birthdate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Address:   "123 Main St",
	}

	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, birthdate, address) VALUES ($1, $2, $3) RETURNING id`)).
		WithArgs(user.Name, user.Birthdate, user.Address).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.CreateUser(user)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_GetAllUsers(t *testing.T) {
	repo, dbMock := newUserRepoForTest(t)

	birthdate := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "birthdate", "address"}).
		AddRow(int64(1), "John Smith", birthdate, "123 Main St").
		AddRow(int64(2), "Jane Smith", birthdate, "456 Oak Ave")
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, birthdate, address FROM users`)).
		WillReturnRows(rows)

	users, err := repo.GetAllUsers()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Jane Smith", users[1].Name)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	repo, dbMock := newUserRepoForTest(t)

	user := &model.User{
		ID:        1,
		Name:      "John Smith",
		Birthdate: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Address:   "789 Pine Rd",
	}

	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, birthdate = $2, address = $3 WHERE id = $4`)).
		WithArgs(user.Name, user.Birthdate, user.Address, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateUser(user))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
