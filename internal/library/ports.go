package library

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=library

// Repository defines the contract for library and stock storage.
type Repository interface {
	List(ctx context.Context) (Directory, error)
	Create(ctx context.Context, l Library) (int64, error)
	// Delete removes the library with exactly that name and address.
	Delete(ctx context.Context, l Library) error
	// UpsertStock resolves the library and the book and sets the count for the pair.
	UpsertStock(ctx context.Context, s Stock) error
}
