package bookshelf

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/books"
)

// client is the internal implementation of the Shelf interface.
type client struct {
	// options are the configured options for the client
	options *options

	// mu orders each mutation with its persistence side effect, so a save
	// always snapshots exactly the collection the mutation produced.
	mu      sync.RWMutex
	library *books.Library

	// hooks are the event callbacks for library changes
	hooks *hooks
}

// Library returns the underlying collection.
func (c *client) Library() *books.Library {
	return c.library
}

// List returns the full ordered collection.
func (c *client) List() []books.Book {
	return c.library.List()
}

// Search returns the records matching the keyword in title or author,
// case-insensitively, in original relative order.
func (c *client) Search(keyword string) []books.Book {
	return c.library.Search(keyword)
}

// Stats summarizes the collection.
func (c *client) Stats() books.Stats {
	return c.library.Stats()
}

// Add validates and appends the record, fires the added hooks, and
// re-persists the collection. On save failure the in-memory addition is NOT
// rolled back; memory and disk diverge until the next successful save.
func (c *client) Add(book books.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.library.Add(book); err != nil {
		return err
	}
	c.hooks.bookAdded(book)

	return c.autosave()
}

// Remove deletes every record whose title matches case-insensitively,
// fires the removed hooks once per record, and re-persists the collection.
// It reports whether at least one record was removed.
func (c *client) Remove(title string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.library.Remove(title)
	if len(removed) == 0 {
		return false, nil
	}
	for _, book := range removed {
		c.hooks.bookRemoved(book)
	}

	return true, c.autosave()
}

// OnBookAdded registers a callback for when records are added.
func (c *client) OnBookAdded(fn BookAddedHook) {
	c.hooks.OnBookAdded(fn)
}

// OnBookRemoved registers a callback for when records are removed.
func (c *client) OnBookRemoved(fn BookRemovedHook) {
	c.hooks.OnBookRemoved(fn)
}

// autosave persists the collection if autosave is enabled.
func (c *client) autosave() error {
	if !c.options.autosave {
		return nil
	}
	return c.save()
}

// save writes the whole collection snapshot to the configured path.
func (c *client) save() error {
	return books.Save(c.options.path, c.library.List())
}
