package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createBookRequest struct {
	Title  string  `json:"title"  validate:"required"`
	Author string  `json:"author" validate:"required"`
	Genre  string  `json:"genre"  validate:"required"`
	Price  float64 `json:"price"  validate:"required,gt=0"`
}

// updateBookRequest is a partial update: absent fields are left untouched.
type updateBookRequest struct {
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Genre  *string  `json:"genre"`
	Price  *float64 `json:"price" validate:"omitempty,gt=0"`
}

// bookResponse is owned by the transport layer so the JSON contract is not
// coupled to internal service changes.
type bookResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listBooksResponse struct {
	Data       []bookResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
