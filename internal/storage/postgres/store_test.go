package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiliang-c/account-be/internal/models"
	"github.com/weiliang-c/account-be/internal/storage"
)

var userCols = []string{
	"id", "email", "password_hash", "display_name", "country", "state", "city",
	"created_at", "updated_at",
}

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserStoreWithPool(mock)
}

func TestCreateUser(t *testing.T) {
	now := time.Now()

	t.Run("inserts and scans the row", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(1), "a@x.com", "hash", nil, nil, nil, nil, now, now))

		created, err := store.CreateUser(context.Background(), models.User{
			Email:        "a@x.com",
			PasswordHash: "hash",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "a@x.com", created.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to conflict", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := store.CreateUser(context.Background(), models.User{
			Email:        "a@x.com",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUser(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(int64(7), "a@x.com", "hash", nil, nil, nil, nil, now, now))

		user, err := store.GetUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(userCols))

		_, err := store.GetUser(context.Background(), 7)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByEmail(t *testing.T) {
	mock, store := newMockStore(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(7), "a@x.com", "hash", nil, nil, nil, nil, now, now))

	user, err := store.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	mock, store := newMockStore(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(1), "a@x.com", "h1", nil, nil, nil, nil, now, now).
			AddRow(int64(2), "b@x.com", "h2", nil, nil, nil, nil, now, now))

	all, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b@x.com", all[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`UPDATE users`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows(userCols))

		_, err := store.UpdateUser(context.Background(), models.User{ID: 9, Email: "a@x.com"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email collision maps to conflict", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectQuery(`UPDATE users`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := store.UpdateUser(context.Background(), models.User{ID: 9, Email: "taken@x.com"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, store.DeleteUser(context.Background(), 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock, store := newMockStore(t)
		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, store.DeleteUser(context.Background(), 7), storage.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
