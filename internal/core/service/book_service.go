package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type BookService struct {
	repo   ports.BookRepository
	cache  ports.BookCache
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, cache ports.BookCache, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, cache: cache, logger: logger}
}

func (s *BookService) CreateBook(ctx context.Context, input ports.CreateBookInput) (*domain.Book, error) {
	book := &domain.Book{
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
		Price:  input.Price,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create book")
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

// GetBook reads through the cache. Cache failures degrade to a repository
// lookup rather than failing the request.
func (s *BookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, book); err != nil {
		s.logger.Debug().Err(err).Str("book_id", id).Msg("book cache set failed")
	}
	return book, nil
}

// UpdateBook merges the partial input into the stored record: only non-nil
// fields overwrite existing values.
func (s *BookService) UpdateBook(ctx context.Context, id string, input ports.UpdateBookInput) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Genre != nil {
		book.Genre = *input.Genre
	}
	if input.Price != nil {
		book.Price = *input.Price
	}

	if err := s.repo.Update(ctx, book); err != nil {
		s.logger.Error().Err(err).Str("book_id", id).Msg("failed to update book")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Debug().Err(err).Str("book_id", id).Msg("book cache invalidate failed")
	}
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Debug().Err(err).Str("book_id", id).Msg("book cache invalidate failed")
	}
	return nil
}

// ListBooks serves both the plain catalog listing and the filtered search;
// an empty filter simply matches everything.
func (s *BookService) ListBooks(ctx context.Context, input ports.ListBooksInput) (*ports.ListBooksResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.Search(ctx, ports.SearchBooksFilter{
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list books")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListBooksResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
