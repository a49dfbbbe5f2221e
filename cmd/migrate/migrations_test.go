package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/db"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations")
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	dir := repoMigrationsDir(t)

	if _, err := goose.CollectMigrations(dir, 0, goose.MaxVersion); err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
}

func TestEmbeddedMigrations_MatchDisk(t *testing.T) {
	embedded, err := fs.Glob(db.Migrations(), "*.sql")
	require.NoError(t, err)

	onDisk, err := filepath.Glob(filepath.Join(repoMigrationsDir(t), "*.sql"))
	require.NoError(t, err)
	for i, p := range onDisk {
		onDisk[i] = filepath.Base(p)
	}

	assert.NotEmpty(t, embedded)
	assert.ElementsMatch(t, onDisk, embedded)
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"up", "down", "status", "create"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCreateCmd_WritesMigration(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{"create", "add_isbn", "--dir", dir})
	root.SetOut(os.Stderr)

	require.NoError(t, root.Execute())

	files, err := filepath.Glob(filepath.Join(dir, "*_add_isbn.sql"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestCreateCmd_RequiresName(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create"})
	root.SetOut(os.Stderr)
	root.SetErr(os.Stderr)

	assert.Error(t, root.Execute())
}
