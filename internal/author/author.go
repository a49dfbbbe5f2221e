package author

import (
	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
)

// UnknownID is the reserved author that books without an author belong to.
const UnknownID int64 = 1

var (
	ErrNotFound      = apperror.New(apperror.NotFound, "author not found")
	ErrAlreadyExists = apperror.New(apperror.AlreadyExists, "author is already in DB")
	// ErrInUse is returned when books still reference the author.
	ErrInUse = apperror.New(apperror.FailedPrecondition, "author still has books")
	// ErrReserved protects the unknown author from deletion.
	ErrReserved = apperror.New(apperror.FailedPrecondition, "the unknown author cannot be deleted")
)

type Author struct {
	ID   int64
	Name string
}

// Directory maps author ids to names in id order.
type Directory = idmap.Map[string]

// NameRequest is the JSON body form of author_name.
type NameRequest struct {
	AuthorName string `json:"author_name" validate:"notblank,max=255"`
}
