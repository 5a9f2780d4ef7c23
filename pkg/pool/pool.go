package pool

import "sync"

// Pool is a typed wrapper around sync.Pool for values with a Reset method.
type Pool[T resettable] struct {
	p sync.Pool
}

type resettable interface {
	Reset()
}

func New[T resettable](newFn func() T) *Pool[T] {
	return &Pool[T]{p: sync.Pool{New: func() any { return newFn() }}}
}

func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

func (p *Pool[T]) Put(v T) {
	v.Reset()
	p.p.Put(v)
}
