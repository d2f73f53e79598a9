package domain

import "errors"

var ErrBookNotFound = errors.New("book not found")

// Book is a catalog entry. Price is expressed in the store's base currency.
type Book struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
}
