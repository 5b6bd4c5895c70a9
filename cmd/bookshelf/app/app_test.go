package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/books"
)

// App must satisfy the shared command interface.
var _ appcontext.Interface = (*App)(nil)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		LibraryPath: filepath.Join(t.TempDir(), "library.json"),
		LogFormat:   "json",
		LogOutput:   "stderr",
	}
}

func TestNewAppVersionInfo(t *testing.T) {
	app, err := New("1.2.3", "abc123", "2026-01-01", "goreleaser", WithConfig(testConfig(t)))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "goreleaser", app.BuiltBy())
}

func TestShelfIsSingleton(t *testing.T) {
	app, err := New("test", "", "", "", WithConfig(testConfig(t)))
	require.NoError(t, err)

	first, err := app.Shelf()
	require.NoError(t, err)
	second, err := app.Shelf()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestShelfUsesConfiguredPath(t *testing.T) {
	config := testConfig(t)
	app, err := New("test", "", "", "", WithConfig(config))
	require.NoError(t, err)

	shelf, err := app.Shelf()
	require.NoError(t, err)
	assert.Equal(t, config.LibraryPath, shelf.Path())
}

func TestWithShelf(t *testing.T) {
	custom, err := bookshelf.New(
		bookshelf.WithAutosave(false),
		bookshelf.WithBooks([]books.Book{
			{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965},
		}),
	)
	require.NoError(t, err)

	app, err := New("test", "", "", "", WithConfig(testConfig(t)), WithShelf(custom))
	require.NoError(t, err)

	shelf, err := app.Shelf()
	require.NoError(t, err)
	assert.Same(t, custom, shelf)
	assert.Len(t, shelf.List(), 1)
}

func TestShelfWithOptions(t *testing.T) {
	app, err := New("test", "", "", "", WithConfig(testConfig(t)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "other.yaml")
	shelf, err := app.ShelfWithOptions(bookshelf.WithPath(path))
	require.NoError(t, err)
	assert.Equal(t, path, shelf.Path())
}

func TestExecuteKeepsEnvironmentConfig(t *testing.T) {
	t.Setenv("BOOKSHELF_FORMAT", "yaml")
	t.Setenv("BOOKSHELF_VERBOSE", "true")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("BOOKSHELF_LIBRARY", filepath.Join(t.TempDir(), "library.json"))

	app, err := New("test", "", "", "")
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"version"}))

	assert.Equal(t, "yaml", app.OutputFormat())
	assert.True(t, app.Config().Verbose)
	assert.Equal(t, "error", app.Config().LogLevel)
}

func TestExecuteFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BOOKSHELF_FORMAT", "yaml")
	t.Setenv("BOOKSHELF_LIBRARY", filepath.Join(t.TempDir(), "library.json"))

	app, err := New("test", "", "", "")
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"--format", "json", "version"}))
	assert.Equal(t, "json", app.OutputFormat())
}

func TestExecuteConfigFlagReloadsFile(t *testing.T) {
	dir := t.TempDir()
	library := filepath.Join(dir, "books.json")
	path := filepath.Join(dir, "bookshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nlibrary: "+library+"\n"), 0o644))

	app, err := New("test", "", "", "", WithConfig(testConfig(t)))
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"--config", path, "version"}))
	assert.Equal(t, "yaml", app.OutputFormat())
	assert.Equal(t, library, app.Config().LibraryPath)
}

func TestExecuteRejectsInvalidFormat(t *testing.T) {
	app, err := New("test", "", "", "", WithConfig(testConfig(t)))
	require.NoError(t, err)

	err = app.Execute(context.Background(), []string{"--format", "xml", "version"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestOutputFormat(t *testing.T) {
	config := testConfig(t)
	config.Format = "yaml"

	app, err := New("test", "", "", "", WithConfig(config))
	require.NoError(t, err)
	assert.Equal(t, "yaml", app.OutputFormat())
}
