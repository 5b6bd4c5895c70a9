package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Library configuration
	LibraryPath string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.bookshelf.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := newViper()

	// Try to read config file if it exists
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Search for config in standard locations
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".bookshelf")
	}

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return buildConfig(v), nil
}

// LoadConfigFile loads configuration using an explicitly named config file,
// typically from the --config flag. Unlike LoadConfig, a file that cannot
// be read is an error. Environment variables still take precedence over
// file values.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError("config", "reading config file "+path, err)
	}

	return buildConfig(v), nil
}

// newViper creates a viper instance bound to the BOOKSHELF_* environment.
// A fresh instance per load keeps reloads from seeing stale file state.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("bookshelf")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// buildConfig assembles the configuration from a prepared viper instance.
func buildConfig(v *viper.Viper) *Config {
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		// Config file
		ConfigFile: v.ConfigFileUsed(),

		// Library configuration
		LibraryPath: v.GetString("library"),

		// Logging configuration
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.LibraryPath == "" {
		config.LibraryPath = constants.DefaultLibraryFile
	}

	return config
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
