package bookshelf

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/books"
)

// Hook function types for library events
type (
	// BookAddedHook is called when a record is added to the library
	BookAddedHook func(book books.Book)

	// BookRemovedHook is called when a record is removed from the library.
	// A remove that matches several records calls the hook once per record.
	BookRemovedHook func(book books.Book)
)

// hooks manages event callbacks for library changes
type hooks struct {
	mu            sync.RWMutex
	onBookAdded   []BookAddedHook
	onBookRemoved []BookRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when records are added
func (h *hooks) OnBookAdded(fn BookAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookAdded = append(h.onBookAdded, fn)
}

// OnBookRemoved registers a callback for when records are removed
func (h *hooks) OnBookRemoved(fn BookRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookRemoved = append(h.onBookRemoved, fn)
}

// bookAdded triggers the added callbacks.
func (h *hooks) bookAdded(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookAdded {
		hook(book)
	}
}

// bookRemoved triggers the removed callbacks.
func (h *hooks) bookRemoved(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onBookRemoved {
		hook(book)
	}
}
