package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weiliang-c/account-be/internal/models"
	"github.com/weiliang-c/account-be/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// PoolIface is the slice of pgxpool.Pool the store uses. pgxmock implements
// it, so tests can run without a database.
type PoolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store provides Postgres-backed persistence for users.
type Store struct {
	pool PoolIface
}

// NewUserStore runs migrations against the database and returns a Store
// backed by a fresh connection pool.
func NewUserStore(ctx context.Context, databaseURL string) (*Store, error) {
	if err := runMigrations(ctx, databaseURL); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewUserStoreWithPool wraps an existing pool. Used by tests.
func NewUserStoreWithPool(pool PoolIface) *Store {
	return &Store{pool: pool}
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const userColumns = `id, email, password_hash, display_name, country, state, city, created_at, updated_at`

// CreateUser inserts a new user row. A violation of the unique email index
// surfaces as storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (email, password_hash, display_name, country, state, city)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.DisplayName, user.Country, user.State, user.City)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, translateConflict(err)
	}
	return created, nil
}

// ListUsers fetches every user row.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id;`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// GetUserByEmail fetches a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// UpdateUser persists the full record identified by user.ID.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	UPDATE users
	SET email = $2, password_hash = $3, display_name = $4, country = $5, state = $6, city = $7, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + userColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Country, user.State, user.City)
	updated, err := scanUser(row)
	if err != nil {
		return models.User{}, translateConflict(err)
	}
	return updated, nil
}

// DeleteUser removes a user row by id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.Country, &user.State, &user.City,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return storage.ErrAlreadyExists
	}
	return err
}
