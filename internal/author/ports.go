package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// Repository defines the contract for author data storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	Create(ctx context.Context, name string) (int64, error)
	// Delete removes the author by name. It returns ErrInUse while books
	// reference the author.
	Delete(ctx context.Context, name string) error
}
