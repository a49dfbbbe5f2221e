package author

import (
	"context"
	"log/slog"
	"strings"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
)

// Service provides author-related business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every author keyed by id.
func (s *Service) List(ctx context.Context) (Directory, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(Directory, 0, len(authors))
	for _, a := range authors {
		out = append(out, idmap.Entry[string]{ID: a.ID, Value: a.Name})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperror.InvalidArgumentf("author_name is required")
	}
	id, err := s.repo.Create(ctx, name)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "author created", "id", id, "name", name)
	return id, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "author deleted", "name", name)
	return nil
}
