// Package books provides the core catalog store for a personal library.
// It manages an ordered, in-memory collection of book records and offers
// add, remove, search, enumerate, and statistics operations, plus whole-file
// persistence: the entire collection is serialized to a single library file
// and reloaded from it at process start.
//
// The collection preserves insertion order, which is the only defined order.
// Duplicate titles are permitted; removal by title removes every
// case-insensitively matching record.
//
// Example usage:
//
//	lib := books.NewLibrary()
//	_ = lib.Add(books.Book{Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965})
//
//	matches := lib.Search("herbert")
//	stats := lib.Stats()
//
//	if err := books.Save("library.json", lib.List()); err != nil {
//	    log.Fatal(err)
//	}
package books

import (
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Book represents one record in the library. Exactly these five fields are
// persisted; the on-disk objects always carry all of them.
type Book struct {
	Title           string `json:"title" yaml:"title"`                       // Book title (must not be empty)
	Author          string `json:"author" yaml:"author"`                     // Author name (must not be empty)
	PublicationYear int    `json:"publication_year" yaml:"publication_year"` // Year of publication, >= 0
	Genre           string `json:"genre" yaml:"genre"`                       // Genre, may be empty
	Read            bool   `json:"read" yaml:"read"`                         // Whether the book has been read
}

// Validate checks the record invariants: non-empty title and author,
// non-negative publication year.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.NewValidationError("title", b.Title, "cannot be empty")
	}
	if strings.TrimSpace(b.Author) == "" {
		return errors.NewValidationError("author", b.Author, "cannot be empty")
	}
	if b.PublicationYear < 0 {
		return errors.NewValidationError("publication_year", b.PublicationYear, "must not be negative")
	}
	return nil
}

// Matches reports whether keyword is a case-insensitive substring of the
// book's title or author.
func (b Book) Matches(keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(b.Title), keyword) ||
		strings.Contains(strings.ToLower(b.Author), keyword)
}

// Stats summarizes a library: total record count, how many are marked read,
// and the read percentage in [0, 100].
type Stats struct {
	Total       int     `json:"total" yaml:"total"`
	Read        int     `json:"read" yaml:"read"`
	PercentRead float64 `json:"percent_read" yaml:"percent_read"`
}
