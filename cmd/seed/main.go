package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/library"
	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/postgres"
)

var (
	authors = []string{
		"J. R. R. Tolkien", "Ursula K. Le Guin", "Frank Herbert", "Octavia Butler",
		"Leo Tolstoy", "Agatha Christie", "Mary Shelley", "Haruki Murakami",
	}
	genres = []string{
		"Adventure", "Classic", "Drama", "Fantasy", "Historical", "Horror",
		"Mystery", "Poetry", "Romance", "SciFi", "Thriller",
	}
	words = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Nature", "History", "Future", "Wisdom", "Light",
		"Darkness", "World", "Time", "Space", "Mind", "Soul", "Tolerance",
	}
	libraries = []library.Library{
		{Name: "Central Library", Address: "1 Main St"},
		{Name: "East Branch", Address: "42 Oak Ave"},
		{Name: "Harbor Reading Room", Address: "7 Dock Rd"},
	}
)

func main() {
	count := flag.Int("books", 200, "number of books to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Log)

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.Database.Pool())
	if err != nil {
		logger.Error("cannot open database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	timeout := cfg.Database.QueryTimeout
	// The services log every write; keep seeding output to the summary.
	quiet := slog.New(slog.DiscardHandler)
	authorService := author.NewService(author.NewPostgresRepo(pool, timeout), quiet)
	bookService := book.NewService(book.NewPostgresRepo(pool, timeout), quiet)
	libraryService := library.NewService(library.NewPostgresRepo(pool, timeout), quiet)

	for _, name := range authors {
		if _, err := authorService.Create(ctx, name); err != nil && !isKind(err, apperror.AlreadyExists) {
			logger.Error("seed author", "name", name, "error", err)
			os.Exit(1)
		}
	}
	for _, l := range libraries {
		if _, err := libraryService.Create(ctx, l); err != nil && !isKind(err, apperror.InvalidArgument) {
			logger.Error("seed library", "name", l.Name, "error", err)
			os.Exit(1)
		}
	}

	created := 0
	for i := 0; i < *count; i++ {
		nb := book.NewBook{
			Title:  fmt.Sprintf("%s of %s %d", pick(words), pick(words), i+1),
			Author: pick(authors),
			Genres: pickGenres(),
			Pages:  40 + rand.Intn(960),
		}
		if i%25 == 0 {
			nb.Author = ""
		}
		if _, err := bookService.Create(ctx, nb); err != nil {
			if isKind(err, apperror.AlreadyExists) {
				continue
			}
			logger.Error("seed book", "title", nb.Title, "error", err)
			os.Exit(1)
		}
		created++

		l := libraries[i%len(libraries)]
		err := libraryService.UpdateStock(ctx, library.Stock{
			LibName:    l.Name,
			LibAddress: l.Address,
			BookTitle:  nb.Title,
			BookAuthor: nb.Author,
			Count:      rand.Intn(6),
		})
		if err != nil {
			logger.Error("seed stock", "title", nb.Title, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("seeding finished", "books_created", created, "authors", len(authors), "libraries", len(libraries))
}

func isKind(err error, kind apperror.Kind) bool {
	return apperror.KindOf(err) == kind
}

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

func pickGenres() []string {
	n := rand.Intn(3)
	out := make([]string, 0, n)
	for len(out) < n {
		g := pick(genres)
		dup := false
		for _, have := range out {
			dup = dup || have == g
		}
		if !dup {
			out = append(out, g)
		}
	}
	return out
}
