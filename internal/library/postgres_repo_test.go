package library

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/platform/apperror"
	"libraryapi/internal/testutil"
)

func setupLibraryTestDB(t *testing.T) (*PostgresRepo, *pgxpool.Pool) {
	db := testutil.OpenTestDB(t)
	return NewPostgresRepo(db, 3*time.Second), db
}

func stockCount(t *testing.T, db *pgxpool.Pool, libraryID int64) (rows int, count int) {
	t.Helper()
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*), COALESCE(SUM(count), 0) FROM library_stock WHERE library_id = $1`, libraryID,
	).Scan(&rows, &count)
	require.NoError(t, err)
	return rows, count
}

func TestPostgresRepo_CreateListDelete(t *testing.T) {
	repo, _ := setupLibraryTestDB(t)
	ctx := context.Background()
	l := Library{Name: testutil.UniqueName("Central"), Address: "Main St 1"}

	id, err := repo.Create(ctx, l)
	require.NoError(t, err)

	libs, err := repo.List(ctx)
	require.NoError(t, err)
	got, ok := libs.Get(id)
	require.True(t, ok)
	assert.Equal(t, l, got)

	_, err = repo.Create(ctx, l)
	assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))

	require.NoError(t, repo.Delete(ctx, l))
	err = repo.Delete(ctx, l)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestPostgresRepo_DeleteScopedByAddress(t *testing.T) {
	repo, _ := setupLibraryTestDB(t)
	ctx := context.Background()
	name := testutil.UniqueName("Branch")

	keepID, err := repo.Create(ctx, Library{Name: name, Address: "North"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, Library{Name: name, Address: "South"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, Library{Name: name, Address: "South"}))

	libs, err := repo.List(ctx)
	require.NoError(t, err)
	_, ok := libs.Get(keepID)
	assert.True(t, ok)
}

func TestPostgresRepo_UpsertStock(t *testing.T) {
	repo, db := setupLibraryTestDB(t)
	ctx := context.Background()

	l := Library{Name: testutil.UniqueName("Stock"), Address: "Elm St 3"}
	libID, err := repo.Create(ctx, l)
	require.NoError(t, err)

	title := testutil.UniqueName("Stocked")
	_, err = db.Exec(ctx, `INSERT INTO books (title, author_id, pages) VALUES ($1, 1, 120)`, title)
	require.NoError(t, err)

	s := Stock{LibName: l.Name, LibAddress: l.Address, BookTitle: title, BookAuthor: "Unknown", Count: 3}
	require.NoError(t, repo.UpsertStock(ctx, s))
	s.Count = 7
	require.NoError(t, repo.UpsertStock(ctx, s))

	rows, count := stockCount(t, db, libID)
	assert.Equal(t, 1, rows)
	assert.Equal(t, 7, count)

	missingBook := s
	missingBook.BookTitle = testutil.UniqueName("Missing")
	assert.ErrorIs(t, repo.UpsertStock(ctx, missingBook), ErrBookNotFound)

	missingLib := s
	missingLib.LibAddress = "Nowhere"
	assert.ErrorIs(t, repo.UpsertStock(ctx, missingLib), ErrLibraryUnresolved)
}
