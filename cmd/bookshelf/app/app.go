// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging, and the
// shelf instance behind a single struct that commands depend on.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the shelf instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Shelf instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	shelf bookshelf.Shelf
}

// New creates a new App instance with the given version information.
// Configuration is loaded from files and environment before any custom
// options are applied.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Shelf returns the shelf instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Shelf() (bookshelf.Shelf, error) {
	a.mu.RLock()
	if a.shelf != nil {
		shelf := a.shelf
		a.mu.RUnlock()
		return shelf, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.shelf != nil {
		return a.shelf, nil
	}

	shelf, err := bookshelf.New(a.buildShelfOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "shelf", "", err)
	}

	a.shelf = shelf
	return shelf, nil
}

// ShelfWithOptions returns a new shelf instance with custom options.
// This is useful for commands that need configurations different from
// the default app instance.
func (a *App) ShelfWithOptions(opts ...bookshelf.Option) (bookshelf.Shelf, error) {
	shelf, err := bookshelf.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "shelf", "with custom options", err)
	}
	return shelf, nil
}

// buildShelfOptions constructs shelf options from the app configuration.
func (a *App) buildShelfOptions() []bookshelf.Option {
	var opts []bookshelf.Option

	if a.config.LibraryPath != "" {
		opts = append(opts, bookshelf.WithPath(a.config.LibraryPath))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithShelf sets a custom shelf instance (useful for testing).
func WithShelf(shelf bookshelf.Shelf) Option {
	return func(a *App) error {
		a.shelf = shelf
		return nil
	}
}
