package library

import (
	"context"
	"log/slog"
	"strings"

	"libraryapi/internal/book"
	"libraryapi/internal/platform/apperror"
)

// Service provides library and stock business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) (Directory, error) {
	libs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if libs == nil {
		libs = Directory{}
	}
	return libs, nil
}

func (s *Service) Create(ctx context.Context, l Library) (int64, error) {
	l = trim(l)
	if l.Name == "" || l.Address == "" {
		return 0, NotAddedError(l, apperror.InvalidArgumentf("name and address are required"))
	}
	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "library created", "id", id, "name", l.Name)
	return id, nil
}

func (s *Service) Delete(ctx context.Context, l Library) error {
	l = trim(l)
	if l.Name == "" {
		return NotFoundError(l.Name)
	}
	if err := s.repo.Delete(ctx, l); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "library deleted", "name", l.Name, "address", l.Address)
	return nil
}

// UpdateStock sets the number of copies of a book held by a library. A blank
// book author refers to the unknown author.
func (s *Service) UpdateStock(ctx context.Context, st Stock) error {
	st.LibName = strings.TrimSpace(st.LibName)
	st.LibAddress = strings.TrimSpace(st.LibAddress)
	st.BookTitle = strings.TrimSpace(st.BookTitle)
	st.BookAuthor = strings.TrimSpace(st.BookAuthor)
	if st.BookAuthor == "" {
		st.BookAuthor = book.UnknownAuthorName
	}
	if st.Count < 0 {
		return apperror.InvalidArgumentf("count must not be negative")
	}

	if err := s.repo.UpsertStock(ctx, st); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "library stock updated",
		"library", st.Library().String(),
		"book", st.BookTitle,
		"count", st.Count,
	)
	return nil
}

func trim(l Library) Library {
	return Library{Name: strings.TrimSpace(l.Name), Address: strings.TrimSpace(l.Address)}
}
