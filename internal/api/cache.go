package api

import "sync"

// Tag labels a backend resource for cache bookkeeping. Queries provide
// one tag; mutations invalidate the tags they affect, dropping every
// cached response under them so the next read refetches.
type Tag string

const (
	TagUser      Tag = "User"
	TagInventory Tag = "Inventory"
	TagAssets    Tag = "Assets"
	TagTickets   Tag = "Tickets"
	TagRoles     Tag = "Roles"
	TagWorkflow  Tag = "Workflow"
)

// tagCache stores raw response bodies keyed by (tag, request key).
// Bodies are kept as bytes and re-decoded per read so callers never
// share mutable decoded state.
type tagCache struct {
	mu      sync.Mutex
	entries map[Tag]map[string][]byte
}

func newTagCache() *tagCache {
	return &tagCache{entries: make(map[Tag]map[string][]byte)}
}

func (c *tagCache) get(tag Tag, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[tag][key]
	return b, ok
}

func (c *tagCache) put(tag Tag, key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.entries[tag]
	if m == nil {
		m = make(map[string][]byte)
		c.entries[tag] = m
	}
	m[key] = body
}

func (c *tagCache) invalidate(tags ...Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tags {
		delete(c.entries, t)
	}
}
