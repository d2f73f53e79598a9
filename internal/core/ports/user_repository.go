package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Username uniqueness is enforced by the backing store.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
