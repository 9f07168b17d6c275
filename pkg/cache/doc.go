// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache and a lazy registry of named caches, sized for memoizing validation
// results without unbounded memory growth.
//
// The cache automatically evicts the least recently used items when it
// reaches its configured capacity, and counts hits, misses, and evictions so
// monitoring layers can reason about cache effectiveness at runtime.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Thread-safe operations with mutex-based synchronization
//   - Automatic LRU eviction when capacity is exceeded
//   - Built-in hit, miss, and eviction counters surfaced via Stats
//   - Optional eviction callbacks for resource cleanup
//   - O(1) operations for Get, Put, and Remove
//
// # Usage
//
// Create a cache with a specified capacity:
//
//	results := cache.NewLRUCache[string, bool](1000)
//
// Basic operations:
//
//	// Store validation outcomes under their derived keys
//	results.Put("string:hello", true)
//	results.Put("number:42", true)
//
//	// Retrieve items (marks as recently used)
//	valid, found := results.Get("string:hello")
//	if found {
//		// Reuse the outcome without re-validating
//	}
//
//	// Remove specific items
//	removed, existed := results.Remove("string:hello")
//
//	// Clear all items
//	results.Clear()
//
// # Named Caches
//
// A Manager hands out caches by name, creating each lazily on first use.
// Independent validators can share one manager without coordinating setup:
//
//	mgr := cache.NewManager[bool](1000)
//
//	users := mgr.Cache("user-schema")
//	events := mgr.CacheWithCapacity("event-schema", 5000)
//
//	users.Put("key", true)
//	fmt.Println(mgr.TotalSize()) // entries across all caches
//
// # Statistics
//
// Every lookup is counted. Stats returns a consistent snapshot per cache,
// and the manager aggregates snapshots across all registered caches:
//
//	stats := users.Stats()
//	fmt.Printf("hit rate %.2f, %d/%d slots used\n",
//		stats.HitRate(), stats.Size, stats.Capacity)
//
//	for name, s := range mgr.Stats() {
//		fmt.Println(name, s.Utilization())
//	}
//
// Clearing a cache purges its entries but preserves its counters, so hit
// rates remain meaningful across purges.
//
// # Resource Cleanup
//
// For cached values that need cleanup when evicted, use eviction callbacks:
//
//	c := cache.NewLRUCache[string, *os.File](10)
//	c.SetEvictCallback(func(key string, f *os.File) {
//		f.Close()
//	})
//
// # Thread Safety
//
// All operations are thread-safe and can be called concurrently from
// multiple goroutines:
//
//	go results.Put("key1", true)
//	go results.Put("key2", false)
//	go results.Get("key1")
//
// # Capacity Management
//
// When the cache reaches its capacity and a new item is added:
//
//  1. The least recently used item is identified
//  2. If an eviction callback is set, it's called with the item's key and value
//  3. The item is removed from the cache and the eviction counter advances
//  4. The new item is added
//
// Items are considered "recently used" when they are:
//   - Retrieved with Get()
//   - Added or updated with Put()
package cache
