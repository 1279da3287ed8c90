package collection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-korpi/types/codec"
	"github.com/o-korpi/types/collection"
)

func TestNotEmptyListOf(t *testing.T) {
	l := collection.NotEmptyListOf(1, 2, 3)

	assert.Equal(t, 1, l.Head())
	assert.Equal(t, 3, l.Size().Value())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, "[1, 2, 3]", l.String())
}

func TestToNotEmptyListTotalitySplit(t *testing.T) {
	ok := collection.ToNotEmptyList([]string{"a"})
	require.True(t, ok.IsOk())
	assert.Equal(t, "a", ok.Unwrap().Head())

	empty := collection.ToNotEmptyList([]string{})
	require.True(t, empty.IsErr())
	var emptyErr collection.EmptyCollectionError
	require.ErrorAs(t, empty.UnwrapErr(), &emptyErr)
	assert.Equal(t, "Given collection shouldn't be empty.", emptyErr.Error())
}

func TestNotEmptyListDefensiveCopy(t *testing.T) {
	source := []int{1, 2, 3}
	l := collection.ToNotEmptyList(source).Unwrap()
	source[0] = 99
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestNotEmptyListTail(t *testing.T) {
	l := collection.NotEmptyListOf(1, 2, 3)

	tail := l.Tail()
	require.True(t, tail.IsSome())
	assert.Equal(t, []int{2, 3}, tail.Unwrap().ToSlice())

	assert.True(t, collection.NotEmptyListOf(1).Tail().IsNone())
}

func TestNotEmptyListJSONRoundTrip(t *testing.T) {
	l := collection.NotEmptyListOf(1, 2, 3)

	data, err := codec.EncodeJSON(l)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(data), "wire form is the plain array")

	decoded, err := codec.DecodeJSON[collection.NotEmptyList[int]](data)
	require.NoError(t, err)
	assert.Equal(t, l.ToSlice(), decoded.ToSlice())

	_, err = codec.DecodeJSON[collection.NotEmptyList[int]]([]byte("[]"))
	require.Error(t, err)
	var emptyErr collection.EmptyCollectionError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestNotEmptyListYAMLRoundTrip(t *testing.T) {
	l := collection.NotEmptyListOf("a", "b")

	data, err := codec.EncodeYAML(l)
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(data))

	decoded, err := codec.DecodeYAML[collection.NotEmptyList[string]](data)
	require.NoError(t, err)
	assert.Equal(t, l.ToSlice(), decoded.ToSlice())

	_, err = codec.DecodeYAML[collection.NotEmptyList[string]]([]byte("[]\n"))
	require.Error(t, err)
	var emptyErr collection.EmptyCollectionError
	assert.True(t, errors.As(err, &emptyErr))
}
