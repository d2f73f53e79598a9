package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// SearchBooksFilter carries all query parameters for listing books.
// Title/Author/Genre are case-insensitive partial matches; empty = no filter.
type SearchBooksFilter struct {
	Title  string
	Author string
	Genre  string
	Page   int // 1-based
	Limit  int // max rows per page (capped at 100 by service)
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id string) error
	// Search returns a page of books matching filter and the total count.
	Search(ctx context.Context, filter SearchBooksFilter) ([]*domain.Book, int64, error)
}
