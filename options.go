package bookshelf

import (
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Option is a function that configures a Shelf instance
type Option func(*options) error

// options holds the configured options for a shelf.
type options struct {
	path     string
	autosave bool
	books    []books.Book
}

// defaults returns the default options: the well-known library file in the
// working directory, with autosave on.
func defaults() *options {
	return &options{
		path:     constants.DefaultLibraryFile,
		autosave: true,
	}
}

// apply applies the given options in order, returning the first error.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithPath configures the persistent location of the library file. The file
// extension chooses the serialization format (.yaml/.yml for YAML, anything
// else for JSON).
func WithPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ConfigError{
				Component: "shelf",
				Message:   "library path cannot be empty",
			}
		}
		o.path = path
		return nil
	}
}

// WithAutosave configures whether each mutation immediately re-persists the
// whole collection. Defaults to true; disable it for batch loads followed by
// a single explicit Save.
func WithAutosave(enabled bool) Option {
	return func(o *options) error {
		o.autosave = enabled
		return nil
	}
}

// WithBooks configures the initial records, skipping the load from disk.
// Useful for tests and for building a shelf from an in-memory source.
func WithBooks(list []books.Book) Option {
	return func(o *options) error {
		o.books = make([]books.Book, len(list))
		copy(o.books, list)
		return nil
	}
}
