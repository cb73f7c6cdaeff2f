// Package users implements account management on top of a UserStore:
// email uniqueness, password hashing, partial updates, and redaction of the
// stored hash on every read outside the credential-verification path.
package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/weiliang-c/account-be/internal/models"
	"github.com/weiliang-c/account-be/internal/storage"
)

// Service wraps the store with account-level rules.
type Service struct {
	store storage.UserStore
	cost  int
}

// NewService constructs the service. cost is the bcrypt cost factor; values
// outside bcrypt's range fall back to the default.
func NewService(store storage.UserStore, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{store: store, cost: cost}
}

// CreateParams are the fields accepted at signup.
type CreateParams struct {
	Email       string
	Password    string
	DisplayName *string
	Country     *string
	State       *string
	City        *string
}

// UpdateParams is a partial update; nil fields keep their stored values.
type UpdateParams struct {
	Email       *string
	Password    *string
	DisplayName *string
	Country     *string
	State       *string
	City        *string
}

// Create registers a new account. The email must not belong to an existing
// user; the password is stored only as a bcrypt hash. The store's unique
// index backs up the pre-check, so a lost race still reports the conflict.
func (s *Service) Create(ctx context.Context, params CreateParams) (models.User, error) {
	_, err := s.store.GetUserByEmail(ctx, params.Email)
	if err == nil {
		return models.User{}, storage.ErrAlreadyExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := s.hashPassword(params.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        params.Email,
		PasswordHash: hash,
		DisplayName:  params.DisplayName,
		Country:      params.Country,
		State:        params.State,
		City:         params.City,
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return redact(created), nil
}

// List returns all users with the password hash blanked.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	all, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(all))
	for _, user := range all {
		out = append(out, redact(user))
	}
	return out, nil
}

// Get returns a single user by id with the password hash blanked.
func (s *Service) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return redact(user), nil
}

// GetByEmail returns the full record, hash included. It exists for
// credential verification; other callers must not leak the hash.
func (s *Service) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.store.GetUserByEmail(ctx, email)
}

// Update merges the provided fields into the stored record. A provided
// password is re-hashed before persisting.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Password != nil {
		hash, err := s.hashPassword(*params.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}
	if params.DisplayName != nil {
		user.DisplayName = params.DisplayName
	}
	if params.Country != nil {
		user.Country = params.Country
	}
	if params.State != nil {
		user.State = params.State
	}
	if params.City != nil {
		user.City = params.City
	}

	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	return redact(updated), nil
}

// Remove deletes a user by id.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.store.DeleteUser(ctx, id)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func redact(user models.User) models.User {
	user.PasswordHash = ""
	return user
}
