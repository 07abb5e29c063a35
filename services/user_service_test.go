package services

import (
	"testing"

	"notelist-app/notelist/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateUser_Success(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	auth := NewAuthService("secret", 1)
	service := NewUserService(auth)

	user, err := service.CreateUser(db, " Alice@Example.com ", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, auth.ComparePasswords(user.PasswordHash, "correct horse"))
	assert.Equal(t, int64(1), countRows(t, db, "events"))

	fetched, err := service.GetUserById(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)
}

func TestCreateUser_Duplicate(t *testing.T) {
	db := testutils.SetupSQLiteDB(t)
	service := NewUserService(NewAuthService("secret", 1))

	_, err := service.CreateUser(db, "bob@example.com", "password1")
	require.NoError(t, err)

	_, err = service.CreateUser(db, "BOB@example.com", "password2")
	assert.ErrorIs(t, err, ErrResourceExists)
}

func TestCreateUser_Validation(t *testing.T) {
	db, mock := testutils.SetupMockDB(t)
	service := NewUserService(NewAuthService("secret", 1))

	_, err := service.CreateUser(db, "not-an-email", "password1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateUser(db, "carol@example.com", "short")
	assert.ErrorIs(t, err, ErrValidation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserById_NotFound(t *testing.T) {
	db, mock := testutils.SetupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"."id" LIMIT \$2`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := NewUserService(NewAuthService("secret", 1)).GetUserById(db, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
