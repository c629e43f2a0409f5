// sync_pool is a generic sync.Pool wrapper
package sync_pool

import "sync"

type SyncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
	scrub func(T)
}

// New creates a new Pool[T].
// reset is applied on every Get, scrub on every Put. Either may be nil.
func New[T any](init func() T, reset func(T), scrub func(T)) *SyncPool[T] {
	return &SyncPool[T]{
		pool: sync.Pool{
			New: func() any { return init() },
		},
		reset: reset,
		scrub: scrub,
	}
}

// Get returns a T from the pool, allocating if the pool is empty.
func (p *SyncPool[T]) Get() T {
	val := p.pool.Get().(T)
	if p.reset != nil {
		p.reset(val)
	}
	return val
}

// Put returns a T to the pool.
func (p *SyncPool[T]) Put(val T) {
	if p.scrub != nil {
		p.scrub(val)
	}
	p.pool.Put(val)
}
