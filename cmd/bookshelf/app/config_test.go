package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("BOOKSHELF_FORMAT", "yaml")
	t.Setenv("BOOKSHELF_VERBOSE", "true")
	t.Setenv("BOOKSHELF_LIBRARY", "books.yaml")
	t.Setenv("LOG_LEVEL", "error")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Format)
	assert.True(t, config.Verbose)
	assert.Equal(t, "books.yaml", config.LibraryPath)
	assert.Equal(t, "error", config.LogLevel)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "library.json", config.LibraryPath)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, "format: yaml\nlibrary: shelf.yaml\nverbose: true\n")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "shelf.yaml", config.LibraryPath)
	assert.True(t, config.Verbose)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigFileEnvironmentWins(t *testing.T) {
	t.Setenv("BOOKSHELF_FORMAT", "json")
	path := writeConfigFile(t, "format: yaml\n")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "json", config.Format)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("BOOKSHELF_TEST_VALUE", "set")

	assert.Equal(t, "set", getEnvOrDefault("BOOKSHELF_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", getEnvOrDefault("BOOKSHELF_TEST_MISSING", "fallback"))
}
