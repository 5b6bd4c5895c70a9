package bookshelf

// Persistence handles library persistence operations.
type Persistence interface {
	// Save writes the whole collection snapshot to the configured path.
	Save() error

	// Path returns the configured persistent location.
	Path() string
}

// Save persists the current collection to the configured library file,
// overwriting any prior contents.
func (c *client) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.save()
}

// Path returns the configured persistent location.
func (c *client) Path() string {
	return c.options.path
}
