package collection

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/o-korpi/types/functional"
)

// Shared wire-format plumbing for Map and NotEmptyMap. Both serialize to the
// exact form of a plain JSON object / YAML mapping, entries in insertion
// order, so consumers unaware of the non-empty wrapper can read the payload
// as an ordinary map.

func encodeEntriesJSON[K comparable, V any](entries []functional.Pair[K, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSONKey(e.First)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Second)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSONKey renders a key as a JSON object key: string keys keep their
// quoted form, any other key marshals to its literal which is then quoted.
// For integer keys this is the same treatment encoding/json gives map keys;
// kinds encoding/json refuses as map keys (bool, float) still encode here,
// as their quoted literal.
func encodeJSONKey[K comparable](key K) ([]byte, error) {
	raw, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 && raw[0] == '"' {
		return raw, nil
	}
	return json.Marshal(string(raw))
}

// decodeJSONKey is the inverse: the literal arrives as an object key string
// and is decoded as a string first, then as the raw literal for numeric key
// types.
func decodeJSONKey[K comparable](literal string) (K, error) {
	var key K
	quoted, err := json.Marshal(literal)
	if err != nil {
		return key, err
	}
	if err := json.Unmarshal(quoted, &key); err == nil {
		return key, nil
	}
	if err := json.Unmarshal([]byte(literal), &key); err == nil {
		return key, nil
	}
	return key, fmt.Errorf("cannot decode %q as map key", literal)
}

// decodeEntriesJSON walks the object with a token decoder instead of
// unmarshalling into a builtin map, which would lose entry order.
func decodeEntriesJSON[K comparable, V any](data []byte) (*Map[K, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}
	m := NewMap[K, V]()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, err := decodeJSONKey[K](keyTok.(string))
		if err != nil {
			return nil, err
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		m.Put(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func encodeEntriesYAML[K comparable, V any](entries []functional.Pair[K, V]) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		var key, value yaml.Node
		if err := key.Encode(e.First); err != nil {
			return nil, err
		}
		if err := value.Encode(e.Second); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

func decodeEntriesYAML[K comparable, V any](node *yaml.Node) (*Map[K, V], error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected YAML mapping, got %v", node.Tag)
	}
	m := NewMap[K, V]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, err
		}
		m.Put(key, value)
	}
	return m, nil
}

// MarshalJSON writes the map as a plain JSON object in insertion order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return encodeEntriesJSON(m.entries)
}

// UnmarshalJSON reads a plain JSON object, preserving entry order.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	decoded, err := decodeEntriesJSON[K, V](data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// MarshalYAML writes the map as a plain YAML mapping in insertion order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	return encodeEntriesYAML(m.entries)
}

// UnmarshalYAML reads a plain YAML mapping, preserving entry order.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeEntriesYAML[K, V](node)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
