package search

// Kinds of entity a hint can name.
const (
	KindBook    = "book"
	KindAuthor  = "author"
	KindLibrary = "library"
)

// Hint is one matched name and the kind of entity it belongs to.
type Hint struct {
	Kind string
	Name string
}

// Hints maps matched names to their kind. A name shared by several kinds
// keeps the kind of the last matching row.
type Hints map[string]string
