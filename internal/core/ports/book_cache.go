package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// BookCache is a read-through cache keyed by book ID. A miss is reported as
// (nil, nil); errors are treated as misses by callers.
type BookCache interface {
	Get(ctx context.Context, id string) (*domain.Book, error)
	Set(ctx context.Context, b *domain.Book) error
	Invalidate(ctx context.Context, id string) error
}
