// Package dict provides ListBackedMap, an association list keyed by an
// explicit compare.Equality.
//
// Entries are stored in insertion order in a list.MutableList, a
// LinkedArrayList by default. Lookups scan linearly, so the map suits small
// key spaces and key types that have equality but no hash or order. No two
// entries ever hold equal keys: Set on an existing key replaces its value in
// place and keeps the entry's position.
package dict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/kone/compare"
	"github.com/katalvlaran/kone/list"
)

// Entry is one key/value association.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String renders the entry as "key:value".
func (e Entry[K, V]) String() string { return fmt.Sprintf("%v:%v", e.Key, e.Value) }

// ListBackedMap maps keys to values through a list of entries.
type ListBackedMap[K, V any] struct {
	eq      compare.Equality[K]
	entries list.MutableList[Entry[K, V]]
}

// NewListBackedMap returns an empty map whose keys are compared with eq.
func NewListBackedMap[K, V any](eq compare.Equality[K]) *ListBackedMap[K, V] {
	return &ListBackedMap[K, V]{eq: eq, entries: list.EmptyLinkedArrayList[Entry[K, V]]()}
}

// ListBackedMapOver adopts entries as the map's storage. entries must not hold
// two equal keys.
func ListBackedMapOver[K, V any](eq compare.Equality[K], entries list.MutableList[Entry[K, V]]) *ListBackedMap[K, V] {
	return &ListBackedMap[K, V]{eq: eq, entries: entries}
}

// find returns the index of the entry holding key, or -1.
func (m *ListBackedMap[K, V]) find(key K) (int, Entry[K, V]) {
	for i, e := range m.entries.All() {
		if m.eq.Equal(e.Key, key) {
			return i, e
		}
	}
	return -1, Entry[K, V]{}
}

// Size returns the number of entries.
func (m *ListBackedMap[K, V]) Size() int { return m.entries.Size() }

// IsEmpty reports whether the map holds no entries.
func (m *ListBackedMap[K, V]) IsEmpty() bool { return m.entries.IsEmpty() }

// Get returns the value stored under key.
// Complexity: O(n).
func (m *ListBackedMap[K, V]) Get(key K) (V, bool) {
	i, e := m.find(key)
	return e.Value, i >= 0
}

// ContainsKey reports whether an entry with an equal key exists.
func (m *ListBackedMap[K, V]) ContainsKey(key K) bool {
	i, _ := m.find(key)
	return i >= 0
}

// Set stores value under key, replacing the value of an equal key. The
// stored key is kept on replacement.
func (m *ListBackedMap[K, V]) Set(key K, value V) error {
	if i, e := m.find(key); i >= 0 {
		e.Value = value
		return m.entries.Set(i, e)
	}
	if err := m.entries.Add(Entry[K, V]{Key: key, Value: value}); err != nil {
		return fmt.Errorf("ListBackedMap.Set: %w", err)
	}
	return nil
}

// GetOrSet returns the value under key, first storing compute() if absent.
func (m *ListBackedMap[K, V]) GetOrSet(key K, compute func() V) (V, error) {
	if i, e := m.find(key); i >= 0 {
		return e.Value, nil
	}
	v := compute()
	if err := m.entries.Add(Entry[K, V]{Key: key, Value: v}); err != nil {
		var zero V
		return zero, fmt.Errorf("ListBackedMap.GetOrSet: %w", err)
	}
	return v, nil
}

// Remove deletes the entry for key and returns its value.
func (m *ListBackedMap[K, V]) Remove(key K) (V, bool) {
	i, e := m.find(key)
	if i < 0 {
		return e.Value, false
	}
	if _, err := m.entries.RemoveAt(i); err != nil {
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Clear removes every entry.
func (m *ListBackedMap[K, V]) Clear() { m.entries.Clear() }

// Keys yields the keys in insertion order.
func (m *ListBackedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values yields the values in insertion order of their keys.
func (m *ListBackedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// All yields key/value pairs in insertion order.
func (m *ListBackedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries returns the backing list as a read-only view.
func (m *ListBackedMap[K, V]) Entries() list.List[Entry[K, V]] { return m.entries }

// String renders the entries in insertion order, e.g. "map[x:1 y:2]".
func (m *ListBackedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for i, e := range m.entries.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
