package collection

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
	"github.com/o-korpi/types/number"
)

// NotEmptyList is an ordered collection guaranteed to hold at least one
// element. It is immutable once built: every accessor returns a copy or a
// new instance.
type NotEmptyList[T any] struct {
	elements []T
}

// newNotEmptyList wraps elements without re-checking the invariant. The
// slice must be non-empty and exclusively owned by the new instance; callers
// rely on an already established guarantee.
func newNotEmptyList[T any](elements []T) NotEmptyList[T] {
	return NotEmptyList[T]{elements: elements}
}

// NotEmptyListOf creates a NotEmptyList holding head followed by tail. The
// shape of the call guarantees at least one element, so it cannot fail.
func NotEmptyListOf[T any](head T, tail ...T) NotEmptyList[T] {
	elements := make([]T, 0, 1+len(tail))
	elements = append(elements, head)
	elements = append(elements, tail...)
	return ToNotEmptyList(elements).Unwrap()
}

// ToNotEmptyList converts source into a NotEmptyList, failing with
// EmptyCollectionError when source has no elements. The elements are copied:
// mutating source afterwards does not affect the result.
func ToNotEmptyList[T any](source []T) functional.Result[NotEmptyList[T]] {
	if len(source) == 0 {
		return functional.Err[NotEmptyList[T]](errEmptyCollection())
	}
	elements := make([]T, len(source))
	copy(elements, source)
	return functional.Ok(newNotEmptyList(elements))
}

// Head returns the first element.
func (l NotEmptyList[T]) Head() T {
	return l.elements[0]
}

// Tail returns a NotEmptyList of all elements except the first, or None when
// the list holds a single element.
func (l NotEmptyList[T]) Tail() functional.Option[NotEmptyList[T]] {
	if len(l.elements) == 1 {
		return functional.None[NotEmptyList[T]]()
	}
	rest := make([]T, len(l.elements)-1)
	copy(rest, l.elements[1:])
	return functional.Some(newNotEmptyList(rest))
}

// Size returns the element count. By the invariant it is strictly positive.
func (l NotEmptyList[T]) Size() number.StrictlyPositiveInt {
	return number.ToStrictlyPositiveInt(len(l.elements)).Unwrap()
}

// ToSlice returns a copy of the elements in order.
func (l NotEmptyList[T]) ToSlice() []T {
	out := make([]T, len(l.elements))
	copy(out, l.elements)
	return out
}

// String renders the list as "[e1, e2]".
func (l NotEmptyList[T]) String() string {
	return formatElements(l.elements)
}

// MarshalJSON writes the list as a plain JSON array.
func (l NotEmptyList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.elements)
}

// UnmarshalJSON reads a plain JSON array, failing with EmptyCollectionError
// when the payload is empty.
func (l *NotEmptyList[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	return assignResult(l, ToNotEmptyList(elements))
}

// MarshalYAML writes the list as a plain YAML sequence.
func (l NotEmptyList[T]) MarshalYAML() (any, error) {
	return l.elements, nil
}

// UnmarshalYAML reads a plain YAML sequence, failing with
// EmptyCollectionError when the payload is empty.
func (l *NotEmptyList[T]) UnmarshalYAML(node *yaml.Node) error {
	var elements []T
	if err := node.Decode(&elements); err != nil {
		return err
	}
	return assignResult(l, ToNotEmptyList(elements))
}

func formatElements[T any](elements []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elements {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}

func assignResult[T any](out *T, res functional.Result[T]) error {
	value, err := res.Get()
	if err != nil {
		return err
	}
	*out = value
	return nil
}
