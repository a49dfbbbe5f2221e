package main

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/library"
	"libraryapi/internal/search"
)

type handlers struct {
	books     *book.HTTPHandler
	authors   *author.HTTPHandler
	libraries *library.HTTPHandler
	search    *search.HTTPHandler
}

// newRouter registers every route. ready reports whether the store is reachable.
func newRouter(h handlers, ready func(context.Context) error, metrics http.Handler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics)

	router.HandleFunc("GET /books", h.books.List)
	router.HandleFunc("GET /book", h.books.Get)
	router.HandleFunc("POST /book", h.books.Create)
	router.HandleFunc("DELETE /book", h.books.Delete)

	router.HandleFunc("GET /authors", h.authors.List)
	router.HandleFunc("POST /author", h.authors.Create)
	router.HandleFunc("DELETE /author", h.authors.Delete)

	router.HandleFunc("GET /libs", h.libraries.List)
	router.HandleFunc("POST /lib", h.libraries.Create)
	router.HandleFunc("DELETE /lib", h.libraries.Delete)
	router.HandleFunc("POST /lib/stock", h.libraries.UpdateStock)

	router.HandleFunc("GET /search", h.search.Search)

	return router
}
