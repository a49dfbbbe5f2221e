package book

import (
	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
)

// UnknownAuthorID is the seeded author that books submitted without an author
// name are attributed to.
const (
	UnknownAuthorID   int64 = 1
	UnknownAuthorName       = "Unknown"
)

var (
	// ErrNotFound is returned when no book matches a (title, author) pair.
	ErrNotFound = apperror.New(apperror.NotFound, "book not found")
	// ErrAlreadyExists is returned when the (title, author) pair is taken.
	ErrAlreadyExists = apperror.New(apperror.AlreadyExists, "This book exists")
	// ErrUnknownAuthor is returned when a non-blank author name has no record.
	ErrUnknownAuthor = apperror.New(apperror.NotFound, "unknown author")
)

// Book is a book with the names of all its genres.
type Book struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Pages  int      `json:"pages"`
	Genres []string `json:"genres"`
}

// Collection maps book ids to books in query order.
type Collection = idmap.Map[Book]

// Detail is the single-book representation served by GET /book.
type Detail struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Genre  []string `json:"genre"`
	Pages  int      `json:"pages"`
}

func (b Book) Detail() Detail {
	return Detail{Title: b.Title, Author: b.Author, Genre: b.Genres, Pages: b.Pages}
}

// NewBook is the input of Create. A blank Author means the unknown author.
type NewBook struct {
	Title  string   `json:"title" validate:"notblank,max=500"`
	Author string   `json:"author" validate:"max=255"`
	Genres []string `json:"genres" validate:"omitempty,dive,notblank"`
	Pages  int      `json:"pages" validate:"gte=1,lte=2147483647"`
}

// Ref identifies a book by title and author name.
type Ref struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author"`
}

// Row is one book×genre row of a listing query. Genre is nil for books
// without genres.
type Row struct {
	ID     int64
	Title  string
	Author string
	Pages  int
	Genre  *string
}
