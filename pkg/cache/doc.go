// Package cache provides a generic, thread-safe LRU cache whose entries can
// expire.
//
// The cache holds at most a fixed number of entries. Adding an entry to a
// full cache evicts the least recently used one. With a TTL set, an entry
// stops being returned once it expires and is deleted the first time a
// lookup sees it. Each lookup also drops expired entries from the cold end
// of the list, so a cache that is only read still shrinks.
//
// # Usage
//
//	c := cache.NewLRU[string, Declaration](10000, cache.WithTTL(2*time.Hour))
//	c.Put(sessionID, d)
//	d, ok := c.Get(sessionID)
//	c.Remove(sessionID)
//
// NewLRU panics when capacity is not positive.
package cache
