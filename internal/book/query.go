package book

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"

	"libraryapi/internal/platform/apperror"
)

const (
	DefaultSortBy    = "id"
	DefaultSortOrder = "asc"
	DefaultMinPages  = 1
	DefaultMaxPages  = 10000

	maxPages = math.MaxInt32
)

var dialect = goqu.Dialect("postgres")

// sortColumns is the allow-list of sort_by values.
var sortColumns = map[string]exp.IdentifierExpression{
	"id":     goqu.I("b.id"),
	"title":  goqu.I("b.title"),
	"author": goqu.I("a.author_name"),
	"pages":  goqu.I("b.pages"),
}

// ListQuery holds the filters and ordering of a book listing. Empty text
// filters are not applied.
type ListQuery struct {
	SortBy    string
	SortOrder string
	MinPages  int
	MaxPages  int
	Title     string
	Author    string
	Genre     string
}

func DefaultListQuery() ListQuery {
	return ListQuery{
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		MinPages:  DefaultMinPages,
		MaxPages:  DefaultMaxPages,
	}
}

// ParseListQuery reads the GET /books query parameters on top of the
// defaults. Non-numeric page bounds are rejected here; ranges and sort values
// are checked by Validate.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := DefaultListQuery()

	if v := values.Get("sort_by"); v != "" {
		q.SortBy = v
	}
	if v := values.Get("sort_order"); v != "" {
		q.SortOrder = v
	}
	if v := values.Get("min_pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ListQuery{}, apperror.InvalidArgumentf("min_pages must be an integer, got %q", v)
		}
		q.MinPages = n
	}
	if v := values.Get("max_pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ListQuery{}, apperror.InvalidArgumentf("max_pages must be an integer, got %q", v)
		}
		q.MaxPages = n
	}
	q.Title = values.Get("title")
	q.Author = values.Get("author")
	q.Genre = values.Get("genre")

	return q, nil
}

// Validate normalizes the sort fields and checks every value against its
// allow-list or range.
func (q ListQuery) Validate() (ListQuery, error) {
	q.SortBy = strings.ToLower(strings.TrimSpace(q.SortBy))
	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))

	if _, ok := sortColumns[q.SortBy]; !ok {
		return ListQuery{}, apperror.InvalidArgumentf("sort_by must be one of id, title, author, pages; got %q", q.SortBy)
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		return ListQuery{}, apperror.InvalidArgumentf("sort_order must be asc or desc; got %q", q.SortOrder)
	}
	if q.MinPages < 1 || q.MinPages > maxPages {
		return ListQuery{}, apperror.InvalidArgumentf("min_pages must be between 1 and %d", maxPages)
	}
	if q.MaxPages < 1 || q.MaxPages > maxPages {
		return ListQuery{}, apperror.InvalidArgumentf("max_pages must be between 1 and %d", maxPages)
	}
	if q.MinPages > q.MaxPages {
		return ListQuery{}, apperror.InvalidArgumentf("min_pages (%d) exceeds max_pages (%d)", q.MinPages, q.MaxPages)
	}
	return q, nil
}

// rowsSelect selects one row per book×genre pair. Books without genres
// survive the outer joins with a NULL genre.
func rowsSelect() *goqu.SelectDataset {
	return dialect.
		From(goqu.T("books").As("b")).
		Select(
			goqu.I("b.id"),
			goqu.I("b.title"),
			goqu.I("a.author_name"),
			goqu.I("b.pages"),
			goqu.I("g.genre"),
		).
		Join(goqu.T("authors").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("b.author_id")))).
		LeftJoin(goqu.T("book_genre").As("bg"), goqu.On(goqu.I("bg.book_id").Eq(goqu.I("b.id")))).
		LeftJoin(goqu.T("genres").As("g"), goqu.On(goqu.I("g.id").Eq(goqu.I("bg.genre_id"))))
}

// BuildListSQL renders q as a parameterized statement. q must have passed
// Validate; every caller value ends up in args.
func BuildListSQL(q ListQuery) (string, []any, error) {
	sortCol, ok := sortColumns[q.SortBy]
	if !ok {
		return "", nil, apperror.InvalidArgumentf("sort_by must be one of id, title, author, pages; got %q", q.SortBy)
	}

	ds := rowsSelect().Where(
		goqu.I("b.pages").Gte(q.MinPages),
		goqu.I("b.pages").Lte(q.MaxPages),
	)
	if q.Title != "" {
		ds = ds.Where(goqu.I("b.title").Eq(q.Title))
	}
	if q.Author != "" {
		ds = ds.Where(goqu.I("a.author_name").Eq(q.Author))
	}
	if q.Genre != "" {
		withGenre := dialect.
			From(goqu.T("book_genre").As("fbg")).
			Select(goqu.I("fbg.book_id")).
			Join(goqu.T("genres").As("fg"), goqu.On(goqu.I("fg.id").Eq(goqu.I("fbg.genre_id")))).
			Where(goqu.I("fg.genre").Eq(q.Genre))
		ds = ds.Where(goqu.I("b.id").In(withGenre))
	}

	order := []exp.OrderedExpression{sortCol.Asc()}
	if q.SortOrder == "desc" {
		order[0] = sortCol.Desc()
	}
	if q.SortBy != "id" {
		order = append(order, goqu.I("b.id").Asc())
	}
	order = append(order, goqu.I("bg.genre_id").Asc())

	sql, args, err := ds.Order(order...).Prepared(true).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build list books query: %w", err)
	}
	return sql, args, nil
}

// BuildLookupSQL selects the rows of the book with the given title and author name.
func BuildLookupSQL(title, author string) (string, []any, error) {
	sql, args, err := rowsSelect().
		Where(
			goqu.I("b.title").Eq(title),
			goqu.I("a.author_name").Eq(author),
		).
		Order(goqu.I("b.id").Asc(), goqu.I("bg.genre_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build book lookup query: %w", err)
	}
	return sql, args, nil
}
