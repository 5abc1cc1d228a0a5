package nfpcache

import (
	"sync"

	"github.com/polynest/nest2d/nfp"
)

// entry is a single in-flight-or-published cache slot. done is closed
// exactly once, by whichever goroutine ran Compute, after result is set;
// every other reader of this entry only ever reads result after observing
// done closed, so no further synchronization is needed.
type entry struct {
	done   chan struct{}
	result nfp.Result
}

// Stats is a read-only snapshot of cache activity, useful for diagnosing GA
// runs (how much NFP reuse the population is getting).
type Stats struct {
	Computes int // keys this cache actually ran Compute for
	Hits     int // Get calls that found an already-published entry
	Waits    int // Get calls that had to wait for an in-flight compute
}

// Cache maps nfp.Key to nfp.Result with single-producer semantics per key.
// The zero value is not usable; construct with New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	stats   Stats
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Get returns the NFP result for key, computing it via compute if this is
// the first request for key, or waiting for and returning another
// goroutine's in-flight compute otherwise. compute is called at most once
// per key for the lifetime of the Cache.
func (c *Cache) Get(key nfp.Key, compute func() nfp.Result) nfp.Result {
	k := key.String()

	c.mu.Lock()
	if e, ok := c.entries[k]; ok {
		ready := isClosed(e.done)
		if ready {
			c.stats.Hits++
		} else {
			c.stats.Waits++
		}
		c.mu.Unlock()
		<-e.done
		return e.result
	}

	e := &entry{done: make(chan struct{})}
	c.entries[k] = e
	c.stats.Computes++
	c.mu.Unlock()

	e.result = compute()
	close(e.done)
	return e.result
}

// Stats returns a snapshot of cache activity so far.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Len reports the number of keys seen (published or in-flight).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
