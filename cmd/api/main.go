package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/httpx"
	"libraryapi/internal/library"
	"libraryapi/internal/platform/metrics"
	"libraryapi/internal/platform/postgres"
	"libraryapi/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.Open(ctx, cfg.Database.Pool())
	if err != nil {
		logger.Error("cannot open database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("database connection OK", "dsn", postgres.RedactDSN(cfg.Database.ConnString()))

	m := metrics.New()
	m.RegisterPool(dbPool)

	timeout := cfg.Database.QueryTimeout
	bookService := book.NewService(book.NewPostgresRepo(dbPool, timeout), logger)
	authorService := author.NewService(author.NewPostgresRepo(dbPool, timeout), logger)
	libraryService := library.NewService(library.NewPostgresRepo(dbPool, timeout), logger)
	searchService := search.NewService(search.NewPostgresRepo(dbPool, timeout), logger)

	router := newRouter(handlers{
		books:     book.NewHTTPHandler(bookService, logger),
		authors:   author.NewHTTPHandler(authorService, logger),
		libraries: library.NewHTTPHandler(libraryService, logger),
		search:    search.NewHTTPHandler(searchService, logger),
	}, dbPool.Ping, m.Handler())

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	// metrics.Middleware sits directly on the router to see the matched pattern.
	handler := httpx.Chain(m.Middleware(router),
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.Server.CORSOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
