package cache

import (
	"slices"
	"sync"
)

// Manager is a registry of named LRU caches sharing one value type. Caches
// are created lazily on first use, so call sites can address a cache by name
// without coordinating setup. All methods are safe for concurrent use.
type Manager[V any] struct {
	mu              sync.RWMutex
	caches          map[string]*LRUCache[string, V]
	defaultCapacity int
}

// NewManager creates a manager whose caches default to the given capacity.
// The capacity must be positive, otherwise it panics.
func NewManager[V any](defaultCapacity int) *Manager[V] {
	if defaultCapacity <= 0 {
		panic("cache: manager default capacity must be positive")
	}
	return &Manager[V]{
		caches:          make(map[string]*LRUCache[string, V]),
		defaultCapacity: defaultCapacity,
	}
}

// Cache returns the cache registered under name, creating it with the
// manager's default capacity on first use.
func (m *Manager[V]) Cache(name string) *LRUCache[string, V] {
	return m.CacheWithCapacity(name, m.defaultCapacity)
}

// CacheWithCapacity returns the cache registered under name, creating it
// with the given capacity on first use. If the cache already exists its
// original capacity is kept; an existing cache is never resized.
func (m *Manager[V]) CacheWithCapacity(name string, capacity int) *LRUCache[string, V] {
	m.mu.RLock()
	c, ok := m.caches[name]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.caches[name]; ok {
		return c
	}
	c = NewLRUCache[string, V](capacity)
	m.caches[name] = c
	return c
}

// Names returns the registered cache names in sorted order.
func (m *Manager[V]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.caches))
	for name := range m.caches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stats returns a snapshot of every registered cache, keyed by name.
func (m *Manager[V]) Stats() map[string]Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]Stats, len(m.caches))
	for name, c := range m.caches {
		stats[name] = c.Stats()
	}
	return stats
}

// TotalSize reports the number of entries held across all caches.
func (m *Manager[V]) TotalSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, c := range m.caches {
		total += c.Len()
	}
	return total
}

// Clear purges the named cache. It reports whether the cache existed; the
// cache stays registered either way so later lookups reuse it.
func (m *Manager[V]) Clear(name string) bool {
	m.mu.RLock()
	c, ok := m.caches[name]
	m.mu.RUnlock()

	if !ok {
		return false
	}
	c.Clear()
	return true
}

// ClearAll purges every registered cache.
func (m *Manager[V]) ClearAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.caches {
		c.Clear()
	}
}
