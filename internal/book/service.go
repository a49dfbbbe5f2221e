package book

import (
	"context"
	"log/slog"
	"strings"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new book service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the books matching q, folded and in q's order.
func (s *Service) List(ctx context.Context, q ListQuery) (Collection, error) {
	q, err := q.Validate()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return Fold(rows), nil
}

// Get returns the single book with that title and author name, keyed by id.
func (s *Service) Get(ctx context.Context, title, author string) (idmap.Map[Detail], error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return nil, apperror.NotFoundf("title and author are required")
	}

	rows, err := s.repo.FindByTitleAndAuthor(ctx, title, author)
	if err != nil {
		return nil, err
	}
	b, err := FoldOne(rows)
	if err != nil {
		return nil, err
	}
	return idmap.Map[Detail]{{ID: b.ID, Value: b.Detail()}}, nil
}

// Create normalizes nb and stores it, returning the new id.
func (s *Service) Create(ctx context.Context, nb NewBook) (int64, error) {
	nb.Title = strings.TrimSpace(nb.Title)
	nb.Author = strings.TrimSpace(nb.Author)
	if nb.Title == "" {
		return 0, apperror.InvalidArgumentf("title is required")
	}
	if nb.Pages < 1 || nb.Pages > maxPages {
		return 0, apperror.InvalidArgumentf("pages must be between 1 and %d", maxPages)
	}
	nb.Genres = normalizeGenres(nb.Genres)

	id, err := s.repo.Create(ctx, nb)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "book created", "id", id, "title", nb.Title, "genres", len(nb.Genres))
	return id, nil
}

// Delete removes a book. A blank author refers to the unknown author.
func (s *Service) Delete(ctx context.Context, ref Ref) error {
	title := strings.TrimSpace(ref.Title)
	author := strings.TrimSpace(ref.Author)
	if title == "" {
		return ErrNotFound
	}
	if author == "" {
		author = UnknownAuthorName
	}
	if err := s.repo.Delete(ctx, title, author); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "book deleted", "title", title, "author", author)
	return nil
}

func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || containsString(out, g) {
			continue
		}
		out = append(out, g)
	}
	return out
}
