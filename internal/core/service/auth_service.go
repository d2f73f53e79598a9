package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

const bcryptCost = 12

// AuthService implements registration and login.
type AuthService struct {
	repo  ports.UserRepository
	token ports.TokenService
}

func NewAuthService(repo ports.UserRepository, token ports.TokenService) *AuthService {
	return &AuthService{repo: repo, token: token}
}

// Register creates a new account. Role defaults to USER when empty; only
// roles from the closed set are accepted. A duplicate username surfaces as
// domain.ErrUserExists and never overwrites the existing account.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EnsureAdminAccount seeds the bootstrap ADMIN account at startup. Public
// registration only produces USER accounts, so this is the sole path to an
// ADMIN. It is a no-op when the credentials are unset or the account already
// exists; an existing account is never overwritten.
func EnsureAdminAccount(ctx context.Context, repo ports.UserRepository, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}

// Login verifies the submitted credentials and, on success, returns a token
// scoped to the account's username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.token.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
