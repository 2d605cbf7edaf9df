// Package syncutil provides synchronized containers.
package syncutil

import (
	"maps"
	"slices"
	"sync"
)

// RWMap is a map guarded by a [sync.RWMutex].
// It fits read-mostly tables: lookups take the read lock only.
// The zero value is ready to use.
type RWMap[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

func (m *RWMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores val under key and returns the replaced value, if any.
func (m *RWMap[K, V]) Set(key K, val V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[K]V)
	}
	old, ok := m.data[key]
	m.data[key] = val
	return old, ok
}

// Del removes key and returns the removed value, if any.
func (m *RWMap[K, V]) Del(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if ok {
		delete(m.data, key)
	}
	return v, ok
}

// Snapshot returns a copy of the current contents.
func (m *RWMap[K, V]) Snapshot() map[K]V {
	if m == nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// SortedKeys returns the keys ordered by cmp.
func SortedKeys[K comparable, V any](m *RWMap[K, V], cmp func(a, b K) int) []K {
	return slices.SortedFunc(maps.Keys(m.Snapshot()), cmp)
}
