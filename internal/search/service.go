package search

import (
	"context"
	"log/slog"
	"strings"

	"libraryapi/internal/platform/apperror"
)

// ErrQueryRequired is returned for a blank search query.
var ErrQueryRequired = apperror.New(apperror.NotFound, "search query is required")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Hints returns the book titles, author names and library names containing q,
// case-insensitively.
func (s *Service) Hints(ctx context.Context, q string) (Hints, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrQueryRequired
	}

	rows, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	hints := make(Hints, len(rows))
	for _, h := range rows {
		hints[h.Name] = h.Kind
	}
	s.logger.DebugContext(ctx, "search", "q", q, "hints", len(hints))
	return hints, nil
}
