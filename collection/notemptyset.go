package collection

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
	"github.com/o-korpi/types/number"
)

// NotEmptySet is a collection of unique elements guaranteed to hold at least
// one of them, preserving insertion order. Immutable once built.
type NotEmptySet[T comparable] struct {
	elements []T
}

// newNotEmptySet wraps elements without re-checking the invariant. The slice
// must be non-empty, duplicate-free and exclusively owned by the new
// instance.
func newNotEmptySet[T comparable](elements []T) NotEmptySet[T] {
	return NotEmptySet[T]{elements: elements}
}

// NotEmptySetOf creates a NotEmptySet holding head followed by tail.
// Duplicates collapse onto their first occurrence. The shape of the call
// guarantees at least one element, so it cannot fail.
func NotEmptySetOf[T comparable](head T, tail ...T) NotEmptySet[T] {
	elements := make([]T, 0, 1+len(tail))
	elements = append(elements, head)
	elements = append(elements, tail...)
	return ToNotEmptySet(elements).Unwrap()
}

// ToNotEmptySet converts source into a NotEmptySet, collapsing duplicates
// onto their first occurrence and failing with EmptyCollectionError when
// source has no elements.
func ToNotEmptySet[T comparable](source []T) functional.Result[NotEmptySet[T]] {
	if len(source) == 0 {
		return functional.Err[NotEmptySet[T]](errEmptyCollection())
	}
	return functional.Ok(newNotEmptySet(dedupe(source)))
}

func dedupe[T comparable](source []T) []T {
	seen := make(map[T]struct{}, len(source))
	out := make([]T, 0, len(source))
	for _, e := range source {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Head returns the first element.
func (s NotEmptySet[T]) Head() T {
	return s.elements[0]
}

// Tail returns a NotEmptySet of all elements except the first, or None when
// the set holds a single element.
func (s NotEmptySet[T]) Tail() functional.Option[NotEmptySet[T]] {
	if len(s.elements) == 1 {
		return functional.None[NotEmptySet[T]]()
	}
	rest := make([]T, len(s.elements)-1)
	copy(rest, s.elements[1:])
	return functional.Some(newNotEmptySet(rest))
}

// Contains reports whether element is in the set.
func (s NotEmptySet[T]) Contains(element T) bool {
	for _, e := range s.elements {
		if e == element {
			return true
		}
	}
	return false
}

// Size returns the element count. By the invariant it is strictly positive.
func (s NotEmptySet[T]) Size() number.StrictlyPositiveInt {
	return number.ToStrictlyPositiveInt(len(s.elements)).Unwrap()
}

// ToSlice returns a copy of the elements in insertion order.
func (s NotEmptySet[T]) ToSlice() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// String renders the set as "[e1, e2]".
func (s NotEmptySet[T]) String() string {
	return formatElements(s.elements)
}

// MarshalJSON writes the set as a plain JSON array.
func (s NotEmptySet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.elements)
}

// UnmarshalJSON reads a plain JSON array, collapsing duplicates and failing
// with EmptyCollectionError when the payload is empty.
func (s *NotEmptySet[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	return assignResult(s, ToNotEmptySet(elements))
}

// MarshalYAML writes the set as a plain YAML sequence.
func (s NotEmptySet[T]) MarshalYAML() (any, error) {
	return s.elements, nil
}

// UnmarshalYAML reads a plain YAML sequence, collapsing duplicates and
// failing with EmptyCollectionError when the payload is empty.
func (s *NotEmptySet[T]) UnmarshalYAML(node *yaml.Node) error {
	var elements []T
	if err := node.Decode(&elements); err != nil {
		return err
	}
	return assignResult(s, ToNotEmptySet(elements))
}
