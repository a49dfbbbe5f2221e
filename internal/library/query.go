package library

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

var dialect = goqu.Dialect("postgres")

// buildUpsertStockSQL sets the stock count for a resolved (library, book) pair,
// replacing any previous count.
func buildUpsertStockSQL(libraryID, bookID int64, count int) (string, []any, error) {
	sql, args, err := dialect.
		Insert("library_stock").
		Rows(goqu.Record{
			"library_id": libraryID,
			"book_id":    bookID,
			"count":      count,
		}).
		OnConflict(goqu.DoUpdate("library_id, book_id", goqu.Record{
			"count": goqu.L("EXCLUDED.count"),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build stock upsert: %w", err)
	}
	return sql, args, nil
}

// buildBookLookupSQL resolves a book id from its title and author name.
func buildBookLookupSQL(title, author string) (string, []any, error) {
	sql, args, err := dialect.
		From(goqu.T("books").As("b")).
		Select(goqu.I("b.id")).
		Join(goqu.T("authors").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("b.author_id")))).
		Where(
			goqu.I("b.title").Eq(title),
			goqu.I("a.author_name").Eq(author),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build book lookup: %w", err)
	}
	return sql, args, nil
}
