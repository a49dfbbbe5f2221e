package search

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=search

// Repository runs the name search against the store.
type Repository interface {
	Search(ctx context.Context, q string) ([]Hint, error)
}
