package book

import "libraryapi/internal/platform/idmap"

// Fold groups book×genre rows into one Book per id, keeping the order in which
// ids first appear and the order of their genres. Duplicate genre rows are
// dropped and a book whose only row has no genre gets an empty list.
func Fold(rows []Row) Collection {
	out := make(Collection, 0)
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(out)
			index[row.ID] = i
			out = append(out, idmap.Entry[Book]{
				ID: row.ID,
				Value: Book{
					ID:     row.ID,
					Title:  row.Title,
					Author: row.Author,
					Pages:  row.Pages,
					Genres: []string{},
				},
			})
		}
		if row.Genre == nil {
			continue
		}
		b := &out[i].Value
		if !containsString(b.Genres, *row.Genre) {
			b.Genres = append(b.Genres, *row.Genre)
		}
	}
	return out
}

// FoldOne folds the rows of a single book.
func FoldOne(rows []Row) (Book, error) {
	books := Fold(rows)
	if len(books) == 0 {
		return Book{}, ErrNotFound
	}
	return books[0].Value, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
