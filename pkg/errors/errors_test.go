package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "book",
			Title:    "Dune",
		}
		assert.Equal(t, `book with title "Dune" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("book", "Foundation")
		assert.Equal(t, `book with title "Foundation" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("book", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "title",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field title: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid record",
		}
		assert.Equal(t, "validation failed: invalid record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("publication_year", -1, "must not be negative")
		assert.Contains(t, err.Error(), "publication_year")
		assert.Contains(t, err.Error(), "must not be negative")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "library.json",
			Message: "unexpected end of input",
		}
		assert.Equal(t, "parse error in json file library.json: unexpected end of input", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedLibrary))
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			Message: "bad indentation",
		}
		assert.Equal(t, "yaml parse error: bad indentation", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("invalid character")
		err := pkgerrors.WrapParse("json", "library.json", base)
		assert.True(t, pkgerrors.IsMalformedLibrary(err))
		assert.Equal(t, base, errors.Unwrap(err))
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		base := errors.New("permission denied")
		err := pkgerrors.NewIOError("write", "/tmp/library.json", base)
		assert.Equal(t, "IO error during write of /tmp/library.json: permission denied", err.Error())
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Message:   "closed pipe",
		}
		assert.Equal(t, "IO error during read: closed pipe", err.Error())
	})
}

func TestResourceError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		base := errors.New("disk full")
		err := pkgerrors.NewResourceError("save", "library", "library.json", base)
		assert.Equal(t, "failed to save library library.json: disk full", err.Error())
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without id", func(t *testing.T) {
		err := pkgerrors.NewResourceError("load", "library", "", errors.New("boom"))
		assert.Equal(t, "failed to load library: boom", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("shelf", "no library path configured", nil)
	assert.Equal(t, "configuration error in shelf: no library path configured", err.Error())
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("write", "path", nil))
		assert.Nil(t, pkgerrors.WrapParse("json", "file", nil))
		assert.Nil(t, pkgerrors.WrapResource("save", "library", "", nil))
		assert.Nil(t, pkgerrors.WrapValidation("title", nil))
	})

	t.Run("validation wrap", func(t *testing.T) {
		err := pkgerrors.WrapValidation("author", errors.New("cannot be empty"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
