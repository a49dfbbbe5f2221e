package main

import (
	"os"

	"libraryapi/internal/config"
)

func migrationsDir() string {
	if v := os.Getenv("LIBRARY_MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

// resolveDSN prefers an explicit --dsn and otherwise reads the service
// configuration, so migrations hit the same database the API uses.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Database.ConnString(), nil
}
