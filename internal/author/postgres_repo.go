package author

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

func (r *PostgresRepo) List(ctx context.Context) ([]Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT id, author_name FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Author, error) {
		var a Author
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	return authors, nil
}

func (r *PostgresRepo) Create(ctx context.Context, name string) (int64, error) {
	const query = `
		INSERT INTO authors (author_name) VALUES ($1)
		ON CONFLICT (author_name) DO NOTHING
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	if err := r.db.QueryRow(timeoutCtx, query, name).Scan(&id); err != nil {
		switch {
		case postgres.IsNoRows(err):
			return 0, ErrAlreadyExists
		case postgres.IsIntegrityViolation(err):
			return 0, apperror.Wrap(err, apperror.InvalidArgument, "author violates a data constraint")
		}
		return 0, fmt.Errorf("insert author: %w", err)
	}
	return id, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, name string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return postgres.WithTx(timeoutCtx, r.db, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(timeoutCtx, `SELECT id FROM authors WHERE author_name = $1 FOR UPDATE`, name).Scan(&id)
		if err != nil {
			if postgres.IsNoRows(err) {
				return ErrNotFound
			}
			return fmt.Errorf("lookup author: %w", err)
		}
		if id == UnknownID {
			return ErrReserved
		}

		if _, err := tx.Exec(timeoutCtx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			if postgres.IsForeignKeyViolation(err) {
				return apperror.Wrap(err, apperror.FailedPrecondition, ErrInUse.Message)
			}
			return fmt.Errorf("delete author: %w", err)
		}
		return nil
	})
}
