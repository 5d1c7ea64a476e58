package voice

import "sync"

// Catalog holds the active voice table. It is swapped whole when the
// configuration is reloaded.
type Catalog struct {
	table Table
	mu    sync.RWMutex
}

// NewCatalog creates a catalog backed by t, or by DefaultTable when t is empty.
func NewCatalog(t Table) *Catalog {
	c := &Catalog{}
	c.Load(t)
	return c
}

// Load replaces the active table.
func (c *Catalog) Load(t Table) {
	if len(t) == 0 {
		t = DefaultTable()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = t
}

// Options returns the voices for language and gender.
func (c *Catalog) Options(language string, gender Gender) []Voice {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Options(c.table, language, gender)
}

// Resolve returns the voice id to use for a request.
func (c *Catalog) Resolve(explicit, language string, gender Gender) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Resolve(c.table, explicit, language, gender)
}
