package collection

import (
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
	"github.com/o-korpi/types/number"
)

// NotEmptyMap is an associative container guaranteed to hold at least one
// entry, with unique keys and stable insertion order. Immutable once built:
// every view accessor computes a fresh, independent value from the stored
// entries.
//
// Instances exist only through NotEmptyMapOf, whose signature guarantees a
// first entry, or through the fallible conversions Map.ToNotEmptyMap and
// ToNotEmptyMap, which reject empty sources. No other path constructs one,
// so every method may trust the invariant instead of re-checking it; only
// decoding re-validates, because the wire is untrusted.
type NotEmptyMap[K comparable, V any] struct {
	entries []functional.Pair[K, V]
	index   map[K]int
}

// newNotEmptyMap wraps entries without re-checking the invariant. The slice
// must be non-empty, free of duplicate keys and exclusively owned by the new
// instance.
func newNotEmptyMap[K comparable, V any](entries []functional.Pair[K, V]) NotEmptyMap[K, V] {
	index := make(map[K]int, len(entries))
	for i, e := range entries {
		index[e.First] = i
	}
	return NotEmptyMap[K, V]{entries: entries, index: index}
}

// NotEmptyMapOf creates a NotEmptyMap holding head followed by tail. Later
// entries overwrite earlier ones sharing a key, keeping the first
// occurrence's position. The shape of the call guarantees at least one
// entry, so it cannot fail.
func NotEmptyMapOf[K comparable, V any](head functional.Pair[K, V], tail ...functional.Pair[K, V]) NotEmptyMap[K, V] {
	entries := make([]functional.Pair[K, V], 0, 1+len(tail))
	entries = append(entries, head)
	entries = append(entries, tail...)
	return MapOf(entries...).ToNotEmptyMap().Unwrap()
}

// ToNotEmptyMap converts a builtin map into a NotEmptyMap, failing with
// EmptyCollectionError when source has no entries. The entries are copied:
// mutating source afterwards does not affect the result. The builtin map's
// iteration order is unspecified, so the resulting entry order is too; use
// Map.ToNotEmptyMap when order matters.
func ToNotEmptyMap[K comparable, V any](source map[K]V) functional.Result[NotEmptyMap[K, V]] {
	return FromGoMap(source).ToNotEmptyMap()
}

// Head returns the first entry in insertion order.
func (m NotEmptyMap[K, V]) Head() functional.Pair[K, V] {
	return m.entries[0]
}

// Tail returns a NotEmptyMap of all entries except the first, or None when
// the map holds a single entry. Each call builds a new, independent
// instance, so head/tail decomposition walks the map in entry order and
// terminates after Size-1 steps.
func (m NotEmptyMap[K, V]) Tail() functional.Option[NotEmptyMap[K, V]] {
	if len(m.entries) == 1 {
		return functional.None[NotEmptyMap[K, V]]()
	}
	rest := make([]functional.Pair[K, V], len(m.entries)-1)
	copy(rest, m.entries[1:])
	return functional.Some(newNotEmptyMap(rest))
}

// Entries returns the entries as a NotEmptyList, in insertion order. The
// list is built through the sibling type's invariant-trusting constructor:
// the map's own invariant already guarantees non-emptiness.
func (m NotEmptyMap[K, V]) Entries() NotEmptyList[functional.Pair[K, V]] {
	entries := make([]functional.Pair[K, V], len(m.entries))
	copy(entries, m.entries)
	return newNotEmptyList(entries)
}

// Keys returns the keys as a NotEmptySet, in insertion order. Keys are
// unique by construction, so no deduplication happens here.
func (m NotEmptyMap[K, V]) Keys() NotEmptySet[K] {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.First
	}
	return newNotEmptySet(keys)
}

// Values returns the values as a NotEmptyList, preserving duplicates and
// insertion order.
func (m NotEmptyMap[K, V]) Values() NotEmptyList[V] {
	values := make([]V, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.Second
	}
	return newNotEmptyList(values)
}

// Size returns the entry count. The invariant guarantees the refinement
// into a strictly positive int never fails.
func (m NotEmptyMap[K, V]) Size() number.StrictlyPositiveInt {
	return number.ToStrictlyPositiveInt(len(m.entries)).Unwrap()
}

// Get returns the value associated with key, or None.
func (m NotEmptyMap[K, V]) Get(key K) functional.Option[V] {
	if i, ok := m.index[key]; ok {
		return functional.Some(m.entries[i].Second)
	}
	return functional.None[V]()
}

// ToMap returns the entries as a plain Map, in insertion order. The result
// is independent of the receiver.
func (m NotEmptyMap[K, V]) ToMap() *Map[K, V] {
	return MapOf(m.entries...)
}

// ToGoMap returns the entries as a builtin map.
func (m NotEmptyMap[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for _, e := range m.entries {
		out[e.First] = e.Second
	}
	return out
}

// Equal reports whether both maps hold the same entries in the same order.
func (m NotEmptyMap[K, V]) Equal(other NotEmptyMap[K, V]) bool {
	return reflect.DeepEqual(m.entries, other.entries)
}

// String renders the map exactly like the plain Map holding the same
// entries: "{k1=v1, k2=v2}".
func (m NotEmptyMap[K, V]) String() string {
	return formatEntries(m.entries)
}

// MarshalJSON writes the map as a plain JSON object in insertion order,
// indistinguishable on the wire from the unwrapped Map.
func (m NotEmptyMap[K, V]) MarshalJSON() ([]byte, error) {
	return encodeEntriesJSON(m.entries)
}

// UnmarshalJSON reads a plain JSON object and re-validates non-emptiness:
// an empty payload fails with EmptyCollectionError, not a generic decode
// error.
func (m *NotEmptyMap[K, V]) UnmarshalJSON(data []byte) error {
	decoded, err := decodeEntriesJSON[K, V](data)
	if err != nil {
		return err
	}
	return assignResult(m, decoded.ToNotEmptyMap())
}

// MarshalYAML writes the map as a plain YAML mapping in insertion order.
func (m NotEmptyMap[K, V]) MarshalYAML() (any, error) {
	return encodeEntriesYAML(m.entries)
}

// UnmarshalYAML reads a plain YAML mapping and re-validates non-emptiness.
func (m *NotEmptyMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeEntriesYAML[K, V](node)
	if err != nil {
		return err
	}
	return assignResult(m, decoded.ToNotEmptyMap())
}
