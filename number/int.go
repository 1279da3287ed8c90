package number

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
)

// NonZeroInt is an int other than zero.
type NonZeroInt struct {
	value int
}

// ToNonZeroInt refines n into a NonZeroInt, failing when n == 0.
func ToNonZeroInt(n int) functional.Result[NonZeroInt] {
	if n == 0 {
		return functional.Err[NonZeroInt](errNotNonZero())
	}
	return functional.Ok(NonZeroInt{value: n})
}

// Value returns the wrapped int.
func (n NonZeroInt) Value() int { return n.value }

func (n NonZeroInt) String() string { return strconv.Itoa(n.value) }

// MarshalJSON writes the plain number.
func (n NonZeroInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON reads a plain number and re-validates the invariant.
func (n *NonZeroInt) UnmarshalJSON(data []byte) error {
	return decodeInt(data, n, ToNonZeroInt)
}

// MarshalYAML writes the plain number.
func (n NonZeroInt) MarshalYAML() (any, error) { return n.value, nil }

// UnmarshalYAML reads a plain number and re-validates the invariant.
func (n *NonZeroInt) UnmarshalYAML(node *yaml.Node) error {
	return decodeIntNode(node, n, ToNonZeroInt)
}

// PositiveInt is an int greater than or equal to zero.
type PositiveInt struct {
	value int
}

// ToPositiveInt refines n into a PositiveInt, failing when n < 0.
func ToPositiveInt(n int) functional.Result[PositiveInt] {
	if n < 0 {
		return functional.Err[PositiveInt](errNotPositive())
	}
	return functional.Ok(PositiveInt{value: n})
}

// Value returns the wrapped int.
func (n PositiveInt) Value() int { return n.value }

func (n PositiveInt) String() string { return strconv.Itoa(n.value) }

func (n PositiveInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *PositiveInt) UnmarshalJSON(data []byte) error {
	return decodeInt(data, n, ToPositiveInt)
}

func (n PositiveInt) MarshalYAML() (any, error) { return n.value, nil }

func (n *PositiveInt) UnmarshalYAML(node *yaml.Node) error {
	return decodeIntNode(node, n, ToPositiveInt)
}

// StrictlyPositiveInt is an int greater than zero. It is the return type of
// every non-empty collection's Size accessor: a size of zero is
// unrepresentable.
type StrictlyPositiveInt struct {
	value int
}

// ToStrictlyPositiveInt refines n into a StrictlyPositiveInt, failing when
// n <= 0.
func ToStrictlyPositiveInt(n int) functional.Result[StrictlyPositiveInt] {
	if n <= 0 {
		return functional.Err[StrictlyPositiveInt](errNotStrictlyPositive())
	}
	return functional.Ok(StrictlyPositiveInt{value: n})
}

// Value returns the wrapped int.
func (n StrictlyPositiveInt) Value() int { return n.value }

func (n StrictlyPositiveInt) String() string { return strconv.Itoa(n.value) }

func (n StrictlyPositiveInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *StrictlyPositiveInt) UnmarshalJSON(data []byte) error {
	return decodeInt(data, n, ToStrictlyPositiveInt)
}

func (n StrictlyPositiveInt) MarshalYAML() (any, error) { return n.value, nil }

func (n *StrictlyPositiveInt) UnmarshalYAML(node *yaml.Node) error {
	return decodeIntNode(node, n, ToStrictlyPositiveInt)
}

func decodeInt[T any](data []byte, out *T, refine func(int) functional.Result[T]) error {
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	return assign(out, refine(value))
}

func decodeIntNode[T any](node *yaml.Node, out *T, refine func(int) functional.Result[T]) error {
	var value int
	if err := node.Decode(&value); err != nil {
		return err
	}
	return assign(out, refine(value))
}

func assign[T any](out *T, res functional.Result[T]) error {
	value, err := res.Get()
	if err != nil {
		return err
	}
	*out = value
	return nil
}
