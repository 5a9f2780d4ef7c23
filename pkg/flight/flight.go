// Package flight coalesces duplicate expensive work: concurrent callers for
// the same key share one execution, and finished results stay cached for a
// configurable hold window.
package flight

import (
	"sync"
	"time"
)

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]entry[V]
	pending  map[K]*job[V]
	work     func(K) (V, error)
	ttl      time.Duration
}

type entry[V any] struct {
	val      V
	deadline time.Time // zero => never expires
}

type job[V any] struct {
	val  V
	err  error
	done chan struct{}
}

func NewCache[K comparable, V any](work func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]entry[V]),
		pending:  make(map[K]*job[V]),
		work:     work,
		ttl:      time.Hour,
	}
}

// Expiry sets the hold window for future results. d <= 0 keeps results forever.
func (c *Cache[K, V]) Expiry(d time.Duration) {
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// Get returns the cached result for k, joins an in-flight computation, or
// runs the work itself.
func (c *Cache[K, V]) Get(k K) (V, error) {
	c.mu.Lock()
	if e, ok := c.finished[k]; ok {
		if e.deadline.IsZero() || time.Now().Before(e.deadline) {
			c.mu.Unlock()
			return e.val, nil
		}
		delete(c.finished, k)
	}
	if pending, ok := c.pending[k]; ok {
		c.mu.Unlock()
		<-pending.done
		return pending.val, pending.err
	}
	j := &job[V]{done: make(chan struct{})}
	c.pending[k] = j
	c.mu.Unlock()

	c.run(k, j)
	return j.val, j.err
}

// Force recomputes k even if a finished result exists, waiting out any
// in-flight job first so two computations never overlap.
func (c *Cache[K, V]) Force(k K) (V, error) {
	var j *job[V]
	for {
		c.mu.Lock()
		if existing, ok := c.pending[k]; ok {
			c.mu.Unlock()
			<-existing.done
			continue
		}
		j = &job[V]{done: make(chan struct{})}
		c.pending[k] = j
		c.mu.Unlock()
		break
	}

	c.run(k, j)
	return j.val, j.err
}

func (c *Cache[K, V]) run(k K, j *job[V]) {
	j.val, j.err = c.work(k)

	c.mu.Lock()
	if j.err == nil {
		e := entry[V]{val: j.val}
		if c.ttl > 0 {
			e.deadline = time.Now().Add(c.ttl)
		}
		c.finished[k] = e
	}
	close(j.done)
	delete(c.pending, k)
	c.mu.Unlock()
}
