package library

import (
	"fmt"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
)

var (
	// ErrBookNotFound is returned by UpdateStock when the book cannot be resolved.
	ErrBookNotFound = apperror.New(apperror.InvalidArgument, "book not found")
	// ErrLibraryUnresolved is returned by UpdateStock when the library cannot be resolved.
	ErrLibraryUnresolved = apperror.New(apperror.InvalidArgument, "library not found")
)

// Library is identified by its (name, address) pair.
type Library struct {
	Name    string `json:"name" validate:"notblank,max=255"`
	Address string `json:"address" validate:"notblank,max=500"`
}

func (l Library) String() string {
	return fmt.Sprintf("(%s, %s)", l.Name, l.Address)
}

// Directory maps library ids to libraries in id order.
type Directory = idmap.Map[Library]

// Stock sets how many copies of a book a library holds.
type Stock struct {
	LibName    string `json:"lib_name" validate:"notblank"`
	LibAddress string `json:"lib_address" validate:"notblank"`
	BookTitle  string `json:"book_title" validate:"notblank"`
	BookAuthor string `json:"book_author"`
	Count      int    `json:"count" validate:"gte=0,lte=2147483647"`
}

func (s Stock) Library() Library {
	return Library{Name: s.LibName, Address: s.LibAddress}
}

// NotFoundError reports a library that does not exist.
func NotFoundError(name string) error {
	return apperror.NotFoundf("Library (%s) was not found", name)
}

// NotAddedError reports a failed library insert.
func NotAddedError(l Library, cause error) error {
	return apperror.Wrap(cause, apperror.InvalidArgument, fmt.Sprintf("Library %s was not added", l))
}
