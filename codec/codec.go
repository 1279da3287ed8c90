// Package codec provides type-safe encoding and decoding for the refined
// types, in JSON and YAML. The wire form of a refined type is always the
// plain container's or number's form; invariant re-validation happens inside
// the type's unmarshalling hooks, so a decode of an invalid payload fails
// with the type's own validation error.
package codec

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
)

// TypedCodec encodes and decodes values of a single type.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec[T any] struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a JSON codec with default options.
func NewJSONCodec[T any]() *JSONCodec[T] {
	return &JSONCodec[T]{Indent: "  "}
}

// WithPretty enables indented output.
func (c *JSONCodec[T]) WithPretty() *JSONCodec[T] {
	c.Pretty = true
	return c
}

// WithIndent sets the indentation string.
func (c *JSONCodec[T]) WithIndent(indent string) *JSONCodec[T] {
	c.Indent = indent
	return c
}

// Encode encodes value to JSON.
func (c *JSONCodec[T]) Encode(v T) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec[T any] struct {
	Indent int
}

// NewYAMLCodec creates a YAML codec with default options.
func NewYAMLCodec[T any]() *YAMLCodec[T] {
	return &YAMLCodec[T]{Indent: 2}
}

// WithIndent sets the indentation level.
func (c *YAMLCodec[T]) WithIndent(indent int) *YAMLCodec[T] {
	c.Indent = indent
	return c
}

// Encode encodes value to YAML.
func (c *YAMLCodec[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes YAML to value. An empty document (no content, or comments
// only) is an error: the stream never reaches the target type's
// unmarshalling hook, so it cannot stand in for any value.
func (c *YAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&v)
	return v, err
}

// EncodeResult encodes and returns a Result for functional error handling.
func EncodeResult[T any](c TypedCodec[T], v T) functional.Result[[]byte] {
	data, err := c.Encode(v)
	if err != nil {
		return functional.Err[[]byte](err)
	}
	return functional.Ok(data)
}

// DecodeResult decodes and returns a Result for functional error handling.
func DecodeResult[T any](c TypedCodec[T], data []byte) functional.Result[T] {
	v, err := c.Decode(data)
	if err != nil {
		return functional.Err[T](err)
	}
	return functional.Ok(v)
}

// EncodeJSON is a convenience function for one-off JSON encoding.
func EncodeJSON[T any](v T) ([]byte, error) {
	return NewJSONCodec[T]().Encode(v)
}

// DecodeJSON is a convenience function for one-off JSON decoding.
func DecodeJSON[T any](data []byte) (T, error) {
	return NewJSONCodec[T]().Decode(data)
}

// EncodeYAML is a convenience function for one-off YAML encoding.
func EncodeYAML[T any](v T) ([]byte, error) {
	return NewYAMLCodec[T]().Encode(v)
}

// DecodeYAML is a convenience function for one-off YAML decoding.
func DecodeYAML[T any](data []byte) (T, error) {
	return NewYAMLCodec[T]().Decode(data)
}
