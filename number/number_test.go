package number_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-korpi/types/codec"
	"github.com/o-korpi/types/number"
)

func TestRefinementTotalitySplit(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("ToNonZeroInt succeeds iff n != 0", prop.ForAll(
		func(n int) bool {
			res := number.ToNonZeroInt(n)
			if n == 0 {
				return res.IsErr()
			}
			return res.IsOk() && res.Unwrap().Value() == n
		},
		gen.Int(),
	))

	properties.Property("ToPositiveInt succeeds iff n >= 0", prop.ForAll(
		func(n int) bool {
			res := number.ToPositiveInt(n)
			if n < 0 {
				return res.IsErr()
			}
			return res.IsOk() && res.Unwrap().Value() == n
		},
		gen.Int(),
	))

	properties.Property("ToStrictlyPositiveInt succeeds iff n > 0", prop.ForAll(
		func(n int) bool {
			res := number.ToStrictlyPositiveInt(n)
			if n <= 0 {
				return res.IsErr()
			}
			return res.IsOk() && res.Unwrap().Value() == n
		},
		gen.Int(),
	))

	properties.Property("ToStrictlyPositiveDouble succeeds iff n > 0", prop.ForAll(
		func(n float64) bool {
			res := number.ToStrictlyPositiveDouble(n)
			if n <= 0 {
				return res.IsErr()
			}
			return res.IsOk() && res.Unwrap().Value() == n
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}

func TestRefinementFailureCarriesIllegalValueError(t *testing.T) {
	res := number.ToStrictlyPositiveInt(0)
	require.True(t, res.IsErr())

	var illegal number.IllegalValueError
	require.ErrorAs(t, res.UnwrapErr(), &illegal)
	assert.Equal(t, "Given value should be strictly positive.", illegal.Error())

	assert.Equal(t, "Given value shouldn't equal zero.",
		number.ToNonZeroInt(0).UnwrapErr().Error())
	assert.Equal(t, "Given value shouldn't be strictly negative.",
		number.ToPositiveInt(-1).UnwrapErr().Error())
}

func TestWireFormMatchesPlainNumber(t *testing.T) {
	three := number.ToStrictlyPositiveInt(3).Unwrap()

	data, err := codec.EncodeJSON(three)
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))

	decoded, err := codec.DecodeJSON[number.StrictlyPositiveInt](data)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Value())

	yamlData, err := codec.EncodeYAML(three)
	require.NoError(t, err)
	assert.Equal(t, "3\n", string(yamlData))

	decoded, err = codec.DecodeYAML[number.StrictlyPositiveInt](yamlData)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Value())
}

func TestDecodeRevalidatesInvariant(t *testing.T) {
	_, err := codec.DecodeJSON[number.StrictlyPositiveInt]([]byte("0"))
	require.Error(t, err)
	var illegal number.IllegalValueError
	assert.True(t, errors.As(err, &illegal))

	_, err = codec.DecodeYAML[number.NonZeroInt]([]byte("0\n"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &illegal))

	_, err = codec.DecodeJSON[number.StrictlyPositiveDouble]([]byte("-2.5"))
	require.Error(t, err)
	assert.True(t, errors.As(err, &illegal))
}

func TestStringMatchesPlainNumber(t *testing.T) {
	assert.Equal(t, "42", number.ToStrictlyPositiveInt(42).Unwrap().String())
	assert.Equal(t, "-7", number.ToNonZeroInt(-7).Unwrap().String())
	assert.Equal(t, "2.5", number.ToStrictlyPositiveDouble(2.5).Unwrap().String())
}
