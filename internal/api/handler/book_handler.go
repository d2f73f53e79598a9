package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/api/metrics"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalog operations. Domain errors are
// returned as-is and mapped to status codes by the central error handler.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listBooksResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/books [get]
func (h *BookHandler) List(c echo.Context) error {
	result, err := h.service.ListBooks(c.Request().Context(), ports.ListBooksInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /api/books/:id.
//
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  bookResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Create handles POST /api/books.
//
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	book, err := h.service.CreateBook(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.WithLabelValues(book.Genre).Inc()
	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /api/books/:id with partial-merge semantics.
//
// @Summary      Update a book (partial)
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Book ID"
// @Param        body  body      updateBookRequest  true  "Fields to update"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	book, err := h.service.UpdateBook(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /api/books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /api/books/search with title/author/genre filters.
//
// @Summary      Search books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        title   query     string  false  "Title keyword"
// @Param        author  query     string  false  "Author keyword"
// @Param        genre   query     string  false  "Genre keyword"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listBooksResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/books/search [get]
func (h *BookHandler) Search(c echo.Context) error {
	result, err := h.service.ListBooks(c.Request().Context(), ports.ListBooksInput{
		Title:  c.QueryParam("title"),
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// queryInt parses an integer query parameter; 0 means absent.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
