package handler

import (
	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBookRequest) ports.CreateBookInput {
	return ports.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
	}
}

func toUpdateInput(req updateBookRequest) ports.UpdateBookInput {
	return ports.UpdateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
	}
}

// --- Service result → HTTP response ---

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		Price:  b.Price,
	}
}

func toListResponse(r *ports.ListBooksResult) listBooksResponse {
	items := make([]bookResponse, 0, len(r.Items))
	for _, b := range r.Items {
		items = append(items, toBookResponse(b))
	}
	return listBooksResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
