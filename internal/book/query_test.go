package book

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/platform/apperror"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListQuery(), q)
}

func TestParseListQuery_ReadsAllParams(t *testing.T) {
	values := url.Values{
		"sort_by":    {"title"},
		"sort_order": {"desc"},
		"min_pages":  {"10"},
		"max_pages":  {"500"},
		"title":      {"Dune"},
		"author":     {"Frank Herbert"},
		"genre":      {"SciFi"},
	}

	q, err := ParseListQuery(values)
	require.NoError(t, err)
	assert.Equal(t, ListQuery{
		SortBy:    "title",
		SortOrder: "desc",
		MinPages:  10,
		MaxPages:  500,
		Title:     "Dune",
		Author:    "Frank Herbert",
		Genre:     "SciFi",
	}, q)
}

func TestParseListQuery_NonNumericPages(t *testing.T) {
	for _, key := range []string{"min_pages", "max_pages"} {
		t.Run(key, func(t *testing.T) {
			_, err := ParseListQuery(url.Values{key: {"ten"}})
			require.Error(t, err)
			assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
		})
	}
}

func TestListQuery_ValidateAcceptsAllowedSorts(t *testing.T) {
	for _, sortBy := range []string{"id", "title", "author", "pages", "TITLE", " pages "} {
		for _, order := range []string{"asc", "desc", "DESC"} {
			q := DefaultListQuery()
			q.SortBy = sortBy
			q.SortOrder = order

			got, err := q.Validate()
			require.NoError(t, err, "%s %s", sortBy, order)

			_, _, err = BuildListSQL(got)
			require.NoError(t, err)
		}
	}
}

func TestListQuery_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ListQuery)
	}{
		{"unknown sort column", func(q *ListQuery) { q.SortBy = "pages; DROP TABLE books" }},
		{"unknown sort order", func(q *ListQuery) { q.SortOrder = "sideways" }},
		{"zero min pages", func(q *ListQuery) { q.MinPages = 0 }},
		{"negative max pages", func(q *ListQuery) { q.MaxPages = -5 }},
		{"max pages above int4", func(q *ListQuery) { q.MaxPages = maxPages + 1 }},
		{"min above max", func(q *ListQuery) { q.MinPages, q.MaxPages = 300, 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultListQuery()
			tt.mutate(&q)

			_, err := q.Validate()
			require.Error(t, err)
			assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
		})
	}
}

func TestBuildListSQL_DefaultQuery(t *testing.T) {
	sql, args, err := BuildListSQL(DefaultListQuery())
	require.NoError(t, err)

	assert.Contains(t, sql, `LEFT JOIN "book_genre" AS "bg"`)
	assert.Contains(t, sql, `"b"."pages" >= $1`)
	assert.Contains(t, sql, `"b"."pages" <= $2`)
	assert.Contains(t, sql, `ORDER BY "b"."id" ASC, "bg"."genre_id" ASC`)
	require.Len(t, args, 2)
	assert.EqualValues(t, DefaultMinPages, args[0])
	assert.EqualValues(t, DefaultMaxPages, args[1])
}

func TestBuildListSQL_FiltersAreBound(t *testing.T) {
	const hostile = "x' OR '1'='1"
	q := DefaultListQuery()
	q.Title = hostile
	q.Author = "Robert'); DROP TABLE authors;--"
	q.Genre = "SciFi"

	sql, args, err := BuildListSQL(q)
	require.NoError(t, err)

	assert.NotContains(t, sql, hostile)
	assert.NotContains(t, sql, "DROP TABLE")
	assert.NotContains(t, sql, "SciFi")
	assert.Contains(t, sql, `"b"."title" = $3`)
	assert.Contains(t, sql, `"a"."author_name" = $4`)
	assert.Contains(t, sql, `"fg"."genre" = $5`)
	require.Len(t, args, 5)
	assert.Equal(t, hostile, args[2])
	assert.Equal(t, "Robert'); DROP TABLE authors;--", args[3])
	assert.Equal(t, "SciFi", args[4])
}

func TestBuildListSQL_SortByAuthorDesc(t *testing.T) {
	q := DefaultListQuery()
	q.SortBy = "author"
	q.SortOrder = "desc"

	sql, _, err := BuildListSQL(q)
	require.NoError(t, err)
	assert.Contains(t, sql, `ORDER BY "a"."author_name" DESC, "b"."id" ASC, "bg"."genre_id" ASC`)
}

func TestBuildListSQL_RejectsUnvalidatedSort(t *testing.T) {
	q := DefaultListQuery()
	q.SortBy = "id DESC; --"

	_, _, err := BuildListSQL(q)
	require.Error(t, err)
	assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
}

func TestBuildLookupSQL(t *testing.T) {
	sql, args, err := BuildLookupSQL("Dune", "Frank Herbert")
	require.NoError(t, err)

	assert.NotContains(t, sql, "Dune")
	assert.Contains(t, sql, `"b"."title" = $1`)
	assert.Contains(t, sql, `"a"."author_name" = $2`)
	assert.Equal(t, []any{"Dune", "Frank Herbert"}, args)
}
