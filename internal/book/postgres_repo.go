package book

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/postgres"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, q ListQuery) ([]Row, error) {
	sql, args, err := BuildListSQL(q)
	if err != nil {
		return nil, err
	}
	return r.queryRows(ctx, sql, args)
}

func (r *PostgresRepo) FindByTitleAndAuthor(ctx context.Context, title, author string) ([]Row, error) {
	sql, args, err := BuildLookupSQL(title, author)
	if err != nil {
		return nil, err
	}
	return r.queryRows(ctx, sql, args)
}

func (r *PostgresRepo) queryRows(ctx context.Context, sql string, args []any) ([]Row, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.Title, &row.Author, &row.Pages, &row.Genre); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}
	return out, nil
}

// Create inserts the book and links every genre in one transaction. An
// unknown genre aborts the whole insert.
func (r *PostgresRepo) Create(ctx context.Context, b NewBook) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := postgres.WithTx(timeoutCtx, r.db, func(tx pgx.Tx) error {
		authorID, err := resolveAuthor(timeoutCtx, tx, b.Author)
		if err != nil {
			return err
		}

		var existing int64
		err = tx.QueryRow(timeoutCtx,
			`SELECT id FROM books WHERE title = $1 AND author_id = $2`,
			b.Title, authorID,
		).Scan(&existing)
		switch {
		case err == nil:
			return ErrAlreadyExists
		case !postgres.IsNoRows(err):
			return fmt.Errorf("check existing book: %w", err)
		}

		err = tx.QueryRow(timeoutCtx,
			`INSERT INTO books (title, author_id, pages) VALUES ($1, $2, $3) RETURNING id`,
			b.Title, authorID, b.Pages,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert book: %w", err)
		}

		for _, genre := range b.Genres {
			tag, err := tx.Exec(timeoutCtx,
				`INSERT INTO book_genre (book_id, genre_id) SELECT $1, id FROM genres WHERE genre = $2`,
				id, genre,
			)
			if err != nil {
				return fmt.Errorf("link genre %q: %w", genre, err)
			}
			if tag.RowsAffected() == 0 {
				return apperror.InvalidArgumentf("unknown genre %q", genre)
			}
		}
		return nil
	})
	if err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}

func resolveAuthor(ctx context.Context, q postgres.Querier, name string) (int64, error) {
	if name == "" {
		return UnknownAuthorID, nil
	}
	var id int64
	err := q.QueryRow(ctx, `SELECT id FROM authors WHERE author_name = $1`, name).Scan(&id)
	if err != nil {
		if postgres.IsNoRows(err) {
			return 0, ErrUnknownAuthor
		}
		return 0, fmt.Errorf("resolve author: %w", err)
	}
	return id, nil
}

// mapWriteError turns constraint violations raised by a concurrent writer
// into client errors; anything already classified passes through.
func mapWriteError(err error) error {
	switch {
	case apperror.KindOf(err) != apperror.Internal:
		return err
	case postgres.IsUniqueViolation(err):
		return apperror.Wrap(err, apperror.AlreadyExists, ErrAlreadyExists.Message)
	case postgres.IsIntegrityViolation(err):
		return apperror.Wrap(err, apperror.InvalidArgument, "book violates a data constraint")
	default:
		return err
	}
}

func (r *PostgresRepo) Delete(ctx context.Context, title, author string) error {
	const query = `
		DELETE FROM books b
		USING authors a
		WHERE b.author_id = a.id AND b.title = $1 AND a.author_name = $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, title, author)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
