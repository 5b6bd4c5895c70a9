// Package bookshelf provides the main entry point for the bookshelf personal
// library manager. It wraps the core catalog store (pkg/books) with
// whole-file persistence and event hooks, giving callers a single handle
// that keeps the in-memory collection and the on-disk snapshot in step.
//
// Every mutating operation updates the in-memory library and then, with
// autosave enabled (the default), immediately re-serializes the entire
// collection to the configured library file. The file is the authoritative
// snapshot of the collection between sessions.
//
// Example usage:
//
//	shelf, err := bookshelf.New(bookshelf.WithPath("library.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shelf.OnBookAdded(func(book books.Book) {
//	    log.Printf("added: %s", book.Title)
//	})
//
//	err = shelf.Add(books.Book{
//	    Title:           "Dune",
//	    Author:          "Frank Herbert",
//	    PublicationYear: 1965,
//	    Genre:           "Science Fiction",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, book := range shelf.Search("herbert") {
//	    fmt.Println(book.Title)
//	}
package bookshelf

import (
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Shelf       = (*client)(nil)
	_ Reader      = (*client)(nil)
	_ Mutator     = (*client)(nil)
	_ Persistence = (*client)(nil)
	_ Hooks       = (*client)(nil)
)

// Reader provides read-only access to the library.
type Reader interface {
	// Library returns the underlying collection.
	Library() *books.Library

	// List returns the full ordered collection.
	List() []books.Book

	// Search returns records matching the keyword in title or author.
	Search(keyword string) []books.Book

	// Stats summarizes the collection.
	Stats() books.Stats
}

// Mutator provides the mutating library operations. With autosave enabled,
// each successful mutation re-persists the whole collection before
// returning.
type Mutator interface {
	// Add validates and appends a record.
	Add(book books.Book) error

	// Remove deletes every record whose title matches case-insensitively.
	// It reports whether the collection shrank.
	Remove(title string) (bool, error)
}

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnBookAdded registers a callback for when a record is added.
	OnBookAdded(fn BookAddedHook)

	// OnBookRemoved registers a callback for when a record is removed.
	OnBookRemoved(fn BookRemovedHook)
}

// Shelf is the complete interface combining read, write, persistence, and
// hook capabilities over one managed library.
type Shelf interface {
	Reader
	Mutator
	Persistence
	Hooks
}

// New creates a new Shelf with the given options.
//
// Unless initial records were supplied with WithBooks, the library is loaded
// from the configured path. A missing file yields an empty library. A file
// that exists but cannot be parsed is a recoverable condition: the shelf
// starts empty, a warning is logged, and the malformed file is left in place
// until the next successful save overwrites it.
func New(opts ...Option) (Shelf, error) {
	options, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	c := &client{
		options: options,
		library: books.NewLibrary(),
		hooks:   newHooks(),
	}

	if options.books != nil {
		c.library.ReplaceWith(options.books)
		return c, nil
	}

	list, err := books.Load(options.path)
	if err != nil {
		if errors.IsMalformedLibrary(err) {
			logging.Warn().
				Err(err).
				Str("path", options.path).
				Msg("Error decoding the library file, starting with an empty library")
			return c, nil
		}
		return nil, errors.WrapResource("load", "library", options.path, err)
	}
	c.library.ReplaceWith(list)

	return c, nil
}
