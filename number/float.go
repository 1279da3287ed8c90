package number

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
)

// StrictlyPositiveDouble is a float64 greater than zero.
type StrictlyPositiveDouble struct {
	value float64
}

// ToStrictlyPositiveDouble refines n into a StrictlyPositiveDouble, failing
// when n <= 0. NaN is rejected as well: it violates the invariant because it
// is not greater than zero.
func ToStrictlyPositiveDouble(n float64) functional.Result[StrictlyPositiveDouble] {
	if !(n > 0) {
		return functional.Err[StrictlyPositiveDouble](errNotStrictlyPositive())
	}
	return functional.Ok(StrictlyPositiveDouble{value: n})
}

// Value returns the wrapped float64.
func (n StrictlyPositiveDouble) Value() float64 { return n.value }

func (n StrictlyPositiveDouble) String() string {
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

func (n StrictlyPositiveDouble) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *StrictlyPositiveDouble) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	return assign(n, ToStrictlyPositiveDouble(value))
}

func (n StrictlyPositiveDouble) MarshalYAML() (any, error) { return n.value, nil }

func (n *StrictlyPositiveDouble) UnmarshalYAML(node *yaml.Node) error {
	var value float64
	if err := node.Decode(&value); err != nil {
		return err
	}
	return assign(n, ToStrictlyPositiveDouble(value))
}
