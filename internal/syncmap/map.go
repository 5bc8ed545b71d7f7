package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, V any] struct {
	mux sync.RWMutex
	m   map[K]V
}

// New creates a new instance of Map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Get retrieves an item by key
func (r *Map[K, V]) Get(key K) V {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if v, ok := r.m[key]; ok {
		return v
	}
	var zero V
	return zero
}

// Lookup retrieves an item by key together with a presence flag
func (r *Map[K, V]) Lookup(key K) (V, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[K, V]) Set(key K, value V) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// LoadOrStore returns the existing value for key when present, otherwise it
// stores value. The loaded result reports whether an existing entry was kept.
func (r *Map[K, V]) LoadOrStore(key K, value V) (V, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[key]; ok {
		return v, true
	}
	r.m[key] = value
	return value, false
}

// Delete removes an item by key
func (r *Map[K, V]) Delete(key K) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Len returns the number of stored items
func (r *Map[K, V]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns a slice of all keys
func (r *Map[K, V]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	return ret
}

// List returns a slice of all items
func (r *Map[K, V]) List() []V {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]V, 0, len(r.m))
	for _, v := range r.m {
		ret = append(ret, v)
	}
	return ret
}
