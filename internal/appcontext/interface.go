// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app
// dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/bookshelf/app automatically implements this
// interface, providing dependency injection for commands while maintaining
// testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Shelf returns the default shelf instance, creating it lazily if
	// needed. This is thread-safe and ensures only one instance is created.
	Shelf() (bookshelf.Shelf, error)

	// ShelfWithOptions creates a new shelf instance with custom options.
	// Use this when a command needs specific configuration (e.g., a custom
	// library path).
	ShelfWithOptions(...bookshelf.Option) (bookshelf.Shelf, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
