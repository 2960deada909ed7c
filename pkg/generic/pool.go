// Package generic holds small type-parameterized building blocks.
package generic

import "sync"

// Pool is a typed wrapper around sync.Pool.
type Pool[T any] struct {
	inner sync.Pool
}

// NewPool creates a pool that calls build for misses.
func NewPool[T any](build func() T) *Pool[T] {
	return &Pool[T]{
		inner: sync.Pool{
			New: func() any { return build() },
		},
	}
}

// NewWarmPool creates a pool preloaded with size values.
func NewWarmPool[T any](build func() T, size int) *Pool[T] {
	p := NewPool(build)
	for i := 0; i < size; i++ {
		p.inner.Put(build())
	}
	return p
}

// Get takes a value from the pool, building one if none is cached.
func (p *Pool[T]) Get() T {
	return p.inner.Get().(T)
}

// Put returns a value to the pool.
func (p *Pool[T]) Put(v T) {
	p.inner.Put(v)
}
