// Package cache holds the client-side read models: one store per server
// resource, each a passive mirror of the last successful fetch. Stores
// never derive entity state; they only mirror, filter, and notify.
package cache

import "sync"

// collection is the shared cached-mirror state behind every resource
// store: an ordered list of entities keyed by id, a loading flag, and a
// synchronous subscriber list. The mutex protects the memory, not the
// semantics: concurrent mutations still race and the last writer wins.
type collection[T any] struct {
	mu          sync.RWMutex
	items       []T
	loading     bool
	id          func(T) string
	subscribers []func([]T)
}

func newCollection[T any](id func(T) string) *collection[T] {
	return &collection[T]{id: id}
}

// Subscribe registers a callback invoked synchronously with a snapshot of
// the collection after every change. Derived views recompute from these
// notifications.
func (c *collection[T]) Subscribe(fn func([]T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *collection[T]) snapshotLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

func (c *collection[T]) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

func (c *collection[T]) isLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// replace swaps the entire cached collection. No partial refresh exists.
func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.notifyLocked()
}

// add appends a newly created entity.
func (c *collection[T]) add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.notifyLocked()
}

// reconcile replaces the matching entry in place, preserving order. An
// entity the cache never held is left out; the next full fetch picks it
// up.
func (c *collection[T]) reconcile(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			c.notifyLocked()
			return
		}
	}
}

// remove drops the entry with the given id.
func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.notifyLocked()
}

// filter returns the entries satisfying the predicate, in collection
// order. Pure, no fetch.
func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) notifyLocked() {
	snapshot := c.snapshotLocked()
	for _, fn := range c.subscribers {
		fn(snapshot)
	}
}
