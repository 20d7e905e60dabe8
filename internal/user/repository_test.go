package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "created_at"}
}

func TestCreateUser(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	insertSQL := regexp.QuoteMeta("INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, email, password_hash, role, created_at")

	mock.ExpectQuery(insertSQL).
		WithArgs("USR1", "Alice", "alice@example.com", "hashed", RoleMember).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("USR1", "Alice", "alice@example.com", "hashed", RoleMember, now))

	user, err := repo.Create(context.Background(), "USR1", "Alice", "alice@example.com", "hashed", RoleMember)
	require.NoError(t, err)
	require.Equal(t, "USR1", user.ID)
	require.Equal(t, RoleMember, user.Role)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	findSQL := regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1")

	mock.ExpectQuery(findSQL).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("USR1", "Alice", "alice@example.com", "hashed", RoleMember, now))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "USR1", user.ID)

	// неизвестный адрес
	mock.ExpectQuery(findSQL).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	findSQL := regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1")

	mock.ExpectQuery(findSQL).
		WithArgs("USR404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "USR404")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestEmailExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	existsSQL := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")

	mock.ExpectQuery(existsSQL).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(existsSQL).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.EmailExists(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.False(t, exists)
}
