package backend

import "sync"

// registry maps Handles to the native objects they stand for. Handing out
// registry keys instead of raw pointers keeps C pointers inside this package
// and turns a stale or repeated Free into a lookup miss instead of a double
// free.
type registry[T any] struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{next: 1, live: make(map[Handle]T)}
}

func (r *registry[T]) put(v T) Handle {
	r.mu.Lock()
	h := r.next
	r.next++
	r.live[h] = v
	r.mu.Unlock()
	return h
}

func (r *registry[T]) get(h Handle) (T, bool) {
	r.mu.Lock()
	v, ok := r.live[h]
	r.mu.Unlock()
	return v, ok
}

// take removes h and returns what it referred to. Only the first take of a
// given Handle reports ok.
func (r *registry[T]) take(h Handle) (T, bool) {
	r.mu.Lock()
	v, ok := r.live[h]
	if ok {
		delete(r.live, h)
	}
	r.mu.Unlock()
	return v, ok
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	n := len(r.live)
	r.mu.Unlock()
	return n
}
