package library

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/platform/idmap"
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

func (r *PostgresRepo) List(ctx context.Context) (Directory, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT id, name, address FROM libraries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query libraries: %w", err)
	}
	defer rows.Close()

	out := make(Directory, 0)
	for rows.Next() {
		var (
			id int64
			l  Library
		)
		if err := rows.Scan(&id, &l.Name, &l.Address); err != nil {
			return nil, fmt.Errorf("scan library: %w", err)
		}
		out = append(out, idmap.Entry[Library]{ID: id, Value: l})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate libraries: %w", err)
	}
	return out, nil
}

// Create inserts the library. Any failure, a duplicate pair included, is
// reported as an invalid argument.
func (r *PostgresRepo) Create(ctx context.Context, l Library) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := r.db.QueryRow(timeoutCtx,
		`INSERT INTO libraries (name, address) VALUES ($1, $2) RETURNING id`,
		l.Name, l.Address,
	).Scan(&id)
	if err != nil {
		if postgres.IsIntegrityViolation(err) {
			return 0, NotAddedError(l, err)
		}
		return 0, fmt.Errorf("insert library: %w", err)
	}
	return id, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, l Library) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM libraries WHERE name = $1 AND address = $2`, l.Name, l.Address)
	if err != nil {
		return fmt.Errorf("delete library: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return NotFoundError(l.Name)
	}
	return nil
}

func (r *PostgresRepo) UpsertStock(ctx context.Context, s Stock) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return postgres.WithTx(timeoutCtx, r.db, func(tx pgx.Tx) error {
		var libraryID int64
		err := tx.QueryRow(timeoutCtx,
			`SELECT id FROM libraries WHERE name = $1 AND address = $2`,
			s.LibName, s.LibAddress,
		).Scan(&libraryID)
		if err != nil {
			if postgres.IsNoRows(err) {
				return ErrLibraryUnresolved
			}
			return fmt.Errorf("resolve library: %w", err)
		}

		lookup, args, err := buildBookLookupSQL(s.BookTitle, s.BookAuthor)
		if err != nil {
			return err
		}
		var bookID int64
		if err := tx.QueryRow(timeoutCtx, lookup, args...).Scan(&bookID); err != nil {
			if postgres.IsNoRows(err) {
				return ErrBookNotFound
			}
			return fmt.Errorf("resolve book: %w", err)
		}

		upsert, args, err := buildUpsertStockSQL(libraryID, bookID, s.Count)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(timeoutCtx, upsert, args...); err != nil {
			if postgres.IsIntegrityViolation(err) {
				return apperror.Wrap(err, apperror.InvalidArgument, "stock violates a data constraint")
			}
			return fmt.Errorf("upsert stock: %w", err)
		}
		return nil
	})
}
