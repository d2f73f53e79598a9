package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// CreateBookInput carries all data needed to add a book to the catalog.
type CreateBookInput struct {
	Title  string
	Author string
	Genre  string
	Price  float64
}

// UpdateBookInput is a partial update: nil fields leave the stored value
// untouched.
type UpdateBookInput struct {
	Title  *string
	Author *string
	Genre  *string
	Price  *float64
}

// ListBooksInput carries all parameters for list and search endpoints.
type ListBooksInput struct {
	Title  string
	Author string
	Genre  string
	Page   int
	Limit  int
}

// ListBooksResult is returned by List and Search.
type ListBooksResult struct {
	Items      []*domain.Book
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookService defines use-case operations for the book catalog.
type BookService interface {
	CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	UpdateBook(ctx context.Context, id string, input UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context, input ListBooksInput) (*ListBooksResult, error)
}
