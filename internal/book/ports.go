package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns one row per matching book×genre pair in q's order.
	List(ctx context.Context, q ListQuery) ([]Row, error)
	// FindByTitleAndAuthor returns the rows of the book with that title and author name.
	FindByTitleAndAuthor(ctx context.Context, title, author string) ([]Row, error)
	// Create stores the book and its genre associations atomically.
	Create(ctx context.Context, b NewBook) (int64, error)
	// Delete removes the book with that title and author name.
	Delete(ctx context.Context, title, author string) error
}
