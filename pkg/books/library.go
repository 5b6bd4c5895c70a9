package books

import (
	"strings"
	"sync"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Library is the ordered collection of book records for one managed shelf.
// A mutex guards the slice so incidental concurrent reads are safe, but the
// system contract remains a single writer at a time.
type Library struct {
	mu    sync.RWMutex
	books []Book
}

// LibraryOption defines a function that configures a Library instance.
type LibraryOption func(*Library)

// WithCapacity sets the initial capacity of the backing slice.
func WithCapacity(capacity int) LibraryOption {
	return func(l *Library) {
		l.books = make([]Book, 0, capacity)
	}
}

// WithBooks initializes the library with existing records, preserving order.
func WithBooks(books []Book) LibraryOption {
	return func(l *Library) {
		l.books = make([]Book, len(books))
		copy(l.books, books)
	}
}

// NewLibrary creates a new empty Library with optional configuration.
func NewLibrary(opts ...LibraryOption) *Library {
	l := &Library{}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Add validates the record and appends it to the end of the collection.
// Validation lives here as well as at the caller boundary; a caller that
// already gated on empty fields pays nothing extra.
func (l *Library) Add(book Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	l.books = append(l.books, book)
	l.mu.Unlock()
	return nil
}

// Remove deletes, in place, every record whose title matches the given title
// case-insensitively (full-string fold, not substring). The relative order
// of remaining records is preserved. It returns the removed records; an
// empty result means no title matched.
func (l *Library) Remove(title string) []Book {
	l.mu.Lock()
	defer l.mu.Unlock()

	var removed []Book
	kept := l.books[:0]
	for _, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			removed = append(removed, b)
		} else {
			kept = append(kept, b)
		}
	}
	l.books = kept
	return removed
}

// Find returns the first record whose title matches the given title
// case-insensitively. If no record matches, it returns a NotFoundError
// checkable with errors.IsNotFound.
func (l *Library) Find(title string) (Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			return b, nil
		}
	}
	return Book{}, errors.NewNotFoundError("book", title)
}

// Search returns the records whose title or author contains the keyword,
// case-insensitively, in their original relative order. The collection is
// never mutated. An empty keyword matches every record.
func (l *Library) Search(keyword string) []Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var matches []Book
	for _, b := range l.books {
		if b.Matches(keyword) {
			matches = append(matches, b)
		}
	}
	return matches
}

// List returns a copy of the full collection in insertion order.
func (l *Library) List() []Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	books := make([]Book, len(l.books))
	copy(books, l.books)
	return books
}

// Len returns the number of records.
func (l *Library) Len() int {
	l.mu.RLock()
	length := len(l.books)
	l.mu.RUnlock()
	return length
}

// Stats computes the total record count and the percentage of records marked
// read. An empty library reports a zero percentage.
func (l *Library) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := Stats{Total: len(l.books)}
	if stats.Total == 0 {
		return stats
	}

	for _, b := range l.books {
		if b.Read {
			stats.Read++
		}
	}
	stats.PercentRead = float64(stats.Read) / float64(stats.Total) * 100
	return stats
}

// ReplaceWith replaces the collection's contents with the given records,
// preserving their order.
func (l *Library) ReplaceWith(books []Book) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.books = make([]Book, len(books))
	copy(l.books, books)
}

// Clear removes all records.
func (l *Library) Clear() {
	l.mu.Lock()
	l.books = l.books[:0]
	l.mu.Unlock()
}

// ForEach applies a function to each record in insertion order. If the
// function returns false, iteration stops early.
func (l *Library) ForEach(fn func(i int, book Book) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, b := range l.books {
		if !fn(i, b) {
			break
		}
	}
}
