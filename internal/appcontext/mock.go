package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ShelfFunc            func() (bookshelf.Shelf, error)
	ShelfWithOptionsFunc func(...bookshelf.Option) (bookshelf.Shelf, error)
	LoggerFunc           func() *zerolog.Logger
	OutputFormatFunc     func() string
	VersionFunc          func() string
}

// Shelf returns a shelf using the mock function or a nil shelf.
func (m *Mock) Shelf() (bookshelf.Shelf, error) {
	if m.ShelfFunc != nil {
		return m.ShelfFunc()
	}
	return nil, nil
}

// ShelfWithOptions returns a shelf using the mock function or delegates to
// bookshelf.New with the given options.
func (m *Mock) ShelfWithOptions(opts ...bookshelf.Option) (bookshelf.Shelf, error) {
	if m.ShelfWithOptionsFunc != nil {
		return m.ShelfWithOptionsFunc(opts...)
	}
	return bookshelf.New(opts...)
}

// Logger returns a logger using the mock function or the Nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return &logging.Nop
}

// OutputFormat returns the output format using the mock function or "".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return ""
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}
