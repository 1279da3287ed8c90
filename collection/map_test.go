package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-korpi/types/codec"
	"github.com/o-korpi/types/collection"
	"github.com/o-korpi/types/functional"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := collection.NewMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, []int{2, 1, 3}, m.Values())
	assert.Equal(t, "{b=2, a=1, c=3}", m.String())
}

func TestMapPutOverwritesInPlace(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair("a", 1),
		functional.NewPair("b", 2),
		functional.NewPair("a", 10),
	)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 10, m.Get("a").Unwrap())
	assert.Equal(t, []string{"a", "b"}, m.Keys(), "overwrite keeps the first occurrence's position")
}

func TestMapDelete(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair("a", 1),
		functional.NewPair("b", 2),
		functional.NewPair("c", 3),
	)
	m.Delete("b")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.True(t, m.Get("b").IsNone())
	assert.Equal(t, 3, m.Get("c").Unwrap(), "index stays consistent after deletion")

	m.Delete("missing")
	assert.Equal(t, 2, m.Len())
}

func TestMapZeroValueIsUsable(t *testing.T) {
	var m collection.Map[string, int]
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "{}", m.String())
	m.Put("a", 1)
	assert.Equal(t, 1, m.Len())
}

func TestMapEntriesAreACopy(t *testing.T) {
	m := collection.MapOf(functional.NewPair("a", 1))
	entries := m.Entries()
	entries[0].Second = 99
	assert.Equal(t, 1, m.Get("a").Unwrap())
}

func TestMapJSONRoundTrip(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair("b", 2),
		functional.NewPair("a", 1),
	)

	data, err := codec.EncodeJSON(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(data), "entry order survives encoding")

	decoded, err := codec.DecodeJSON[*collection.Map[string, int]](data)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, decoded.Keys())

	empty, err := codec.DecodeJSON[*collection.Map[string, int]]([]byte(`{}`))
	require.NoError(t, err, "the plain map accepts the empty payload")
	assert.True(t, empty.IsEmpty())
}

func TestMapYAMLRoundTrip(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair("b", 2),
		functional.NewPair("a", 1),
	)

	data, err := codec.EncodeYAML(m)
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na: 1\n", string(data))

	decoded, err := codec.DecodeYAML[*collection.Map[string, int]](data)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, decoded.Keys())
}

func TestMapIntegerKeysMatchEncodingJSON(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair(2, "b"),
		functional.NewPair(1, "a"),
	)

	data, err := codec.EncodeJSON(m)
	require.NoError(t, err)
	assert.Equal(t, `{"2":"b","1":"a"}`, string(data), "numeric keys are quoted like encoding/json does")

	decoded, err := codec.DecodeJSON[*collection.Map[int, string]](data)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, decoded.Keys())
}

func TestMapNonStringKeysQuoteTheirLiteral(t *testing.T) {
	m := collection.MapOf(
		functional.NewPair(true, 1),
		functional.NewPair(false, 0),
	)

	data, err := codec.EncodeJSON(m)
	require.NoError(t, err)
	assert.Equal(t, `{"true":1,"false":0}`, string(data))

	decoded, err := codec.DecodeJSON[*collection.Map[bool, int]](data)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, decoded.Keys())

	floats := collection.MapOf(functional.NewPair(1.5, "a"))
	data, err = codec.EncodeJSON(floats)
	require.NoError(t, err)
	assert.Equal(t, `{"1.5":"a"}`, string(data))

	back, err := codec.DecodeJSON[*collection.Map[float64, string]](data)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, back.Keys())
}
