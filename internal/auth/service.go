// Package auth covers credential verification and session tokens.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/weiliang-c/account-be/internal/models"
	"github.com/weiliang-c/account-be/internal/storage"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. The single message keeps account existence from leaking.
var ErrInvalidCredentials = errors.New("invalid e-mail or password")

// UserFinder resolves an email to the full user record, hash included.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// Service verifies credentials and mints session tokens.
type Service struct {
	users  UserFinder
	tokens *TokenManager
}

// NewService constructs the auth service.
func NewService(users UserFinder, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// SignIn verifies the email/password pair and returns a signed access token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user)
}
