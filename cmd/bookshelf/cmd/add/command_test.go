package add

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/appcontext"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func newTestApp(t *testing.T) (*appcontext.Mock, bookshelf.Shelf) {
	t.Helper()

	shelf, err := bookshelf.New(bookshelf.WithAutosave(false), bookshelf.WithBooks(nil))
	require.NoError(t, err)

	return &appcontext.Mock{
		ShelfFunc: func() (bookshelf.Shelf, error) {
			return shelf, nil
		},
	}, shelf
}

func TestAddWithFlags(t *testing.T) {
	app, shelf := newTestApp(t)

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--title", "Dune",
		"--author", "Frank Herbert",
		"--year", "1965",
		"--genre", "Science Fiction",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Added "Dune" by Frank Herbert.`)

	all := shelf.List()
	require.Len(t, all, 1)
	assert.Equal(t, "Dune", all[0].Title)
	assert.Equal(t, 1965, all[0].PublicationYear)
	assert.False(t, all[0].Read)
}

func TestAddMarkedAsRead(t *testing.T) {
	app, shelf := newTestApp(t)

	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "The Hobbit", "--author", "J.R.R. Tolkien", "--read"})

	require.NoError(t, cmd.Execute())
	require.Len(t, shelf.List(), 1)
	assert.True(t, shelf.List()[0].Read)
}

func TestAddMissingAuthorFails(t *testing.T) {
	app, shelf := newTestApp(t)

	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--title", "Dune"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, shelf.List())
}
