package hereutil

import "sync"

// Atomic guards a single value of any type with a mutex.
type Atomic[T any] struct {
	mtx sync.Mutex
	val T
}

// NewAtomic returns a new atomic wrapper around val.
func NewAtomic[T any](val T) *Atomic[T] {
	return &Atomic[T]{val: val}
}

// Set the value to val.
func (a *Atomic[T]) Set(val T) { a.mtx.Lock(); defer a.mtx.Unlock(); a.val = val }

// Get the current value.
func (a *Atomic[T]) Get() T { a.mtx.Lock(); defer a.mtx.Unlock(); return a.val }

// Swap sets the value to val and returns the previous value.
func (a *Atomic[T]) Swap(val T) (old T) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	old, a.val = a.val, val
	return old
}

// Registry is a mutex-guarded map whose values are constructed on first use
// and kept for the lifetime of the registry.
type Registry[K comparable, V any] struct {
	mtx    sync.Mutex
	vals   map[K]V
	create func(K) V
}

// NewRegistry returns an empty registry which constructs values with create.
func NewRegistry[K comparable, V any](create func(K) V) *Registry[K, V] {
	return &Registry[K, V]{
		vals:   map[K]V{},
		create: create,
	}
}

// Get returns the value for key, constructing it if necessary.
func (r *Registry[K, V]) Get(key K) V {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	v, ok := r.vals[key]
	if !ok {
		v = r.create(key)
		r.vals[key] = v
	}
	return v
}

// Len returns the number of constructed values.
func (r *Registry[K, V]) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.vals)
}
