package search

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

var dialect = goqu.Dialect("postgres")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Pattern turns q into a case-insensitive substring LIKE pattern. LIKE
// metacharacters in q match literally under the default backslash escape.
func Pattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

// BuildSQL unions the names of books, authors and libraries tagged with
// their kind and keeps those containing q.
func BuildSQL(q string) (string, []any, error) {
	// Kinds are literals: a bound parameter in a UNION branch has no type.
	names := dialect.From("books").Select(goqu.L("'book'").As("kind"), goqu.C("title").As("name")).
		Union(dialect.From("authors").Select(goqu.L("'author'"), goqu.C("author_name"))).
		Union(dialect.From("libraries").Select(goqu.L("'library'"), goqu.C("name")))

	sql, args, err := dialect.
		From(names.As("hints")).
		Select(goqu.C("kind"), goqu.C("name")).
		Where(goqu.L(`LOWER("name") LIKE ?`, Pattern(q))).
		Order(goqu.C("name").Asc(), goqu.C("kind").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build search query: %w", err)
	}
	return sql, args, nil
}
