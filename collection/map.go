// Package collection provides the non-empty collection family: NotEmptyList,
// NotEmptySet and NotEmptyMap, refined collections that are guaranteed to
// hold at least one element for the lifetime of every instance, plus the
// insertion-ordered Map they are converted from.
//
// Every fallible conversion returns a functional.Result and fails with
// EmptyCollectionError when the source has zero elements; that check is the
// only way an instance comes into existence. The wire form of each type is
// identical to the plain container's, and decoding re-validates
// non-emptiness.
package collection

import (
	"fmt"
	"strings"

	"github.com/o-korpi/types/functional"
)

// Map is an associative container with unique keys and stable insertion
// order. It is the plain, possibly-empty counterpart of NotEmptyMap and the
// source type of its fallible conversion.
//
// Go's builtin map does not preserve insertion order, which NotEmptyMap's
// head/tail decomposition and textual form depend on, so the delegate is
// explicit: an entry slice for order plus a key index for lookup.
//
// The zero value is an empty map ready for use.
type Map[K comparable, V any] struct {
	entries []functional.Pair[K, V]
	index   map[K]int
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// MapOf creates a Map holding the given entries in order. Later entries
// overwrite earlier ones sharing a key, keeping the first occurrence's
// position.
func MapOf[K comparable, V any](entries ...functional.Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, e := range entries {
		m.Put(e.First, e.Second)
	}
	return m
}

// FromGoMap creates a Map holding source's entries. The builtin map's
// iteration order is unspecified, so the resulting entry order is too.
func FromGoMap[K comparable, V any](source map[K]V) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range source {
		m.Put(k, v)
	}
	return m
}

// Put inserts key with value, or overwrites the value in place when key is
// already present.
func (m *Map[K, V]) Put(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Second = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, functional.NewPair(key, value))
}

// Delete removes key and its value. It is a no-op when key is absent.
func (m *Map[K, V]) Delete(key K) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].First] = j
	}
}

// Get returns the value associated with key, or None.
func (m *Map[K, V]) Get(key K) functional.Option[V] {
	if i, ok := m.index[key]; ok {
		return functional.Some(m.entries[i].Second)
	}
	return functional.None[V]()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true when the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Entries returns a copy of the entries in insertion order.
func (m *Map[K, V]) Entries() []functional.Pair[K, V] {
	out := make([]functional.Pair[K, V], len(m.entries))
	copy(out, m.entries)
	return out
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.First
	}
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Second
	}
	return out
}

// ToGoMap returns the entries as a builtin map.
func (m *Map[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for _, e := range m.entries {
		out[e.First] = e.Second
	}
	return out
}

// ToNotEmptyMap converts the map into a NotEmptyMap, failing with
// EmptyCollectionError when the map has no entries. The result copies the
// entries: mutating the source afterwards does not affect it.
func (m *Map[K, V]) ToNotEmptyMap() functional.Result[NotEmptyMap[K, V]] {
	if m.IsEmpty() {
		return functional.Err[NotEmptyMap[K, V]](errEmptyMap())
	}
	return functional.Ok(newNotEmptyMap(m.Entries()))
}

// String renders the map as "{k1=v1, k2=v2}" in insertion order.
func (m *Map[K, V]) String() string {
	return formatEntries(m.entries)
}

func formatEntries[K comparable, V any](entries []functional.Pair[K, V]) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", e.First, e.Second)
	}
	b.WriteByte('}')
	return b.String()
}
