package types

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
)

// Mapping is a JSON object keyed by account whose values decode into R. The
// member order of the reply is kept.
type Mapping[R any] struct {
	keys   []string
	values map[string]R
}

// NewMapping returns a mapping holding pairs in the given key order.
func NewMapping[R any](keys []string, values map[string]R) Mapping[R] {
	m := Mapping[R]{values: make(map[string]R, len(keys))}
	for _, k := range keys {
		m.set(k, values[k])
	}
	return m
}

func (m *Mapping[R]) set(key string, rec R) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = rec
}

// Len returns the number of distinct keys.
func (m Mapping[R]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in wire order.
func (m Mapping[R]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the record stored under key.
func (m Mapping[R]) Get(key string) (R, bool) {
	rec, ok := m.values[key]
	return rec, ok
}

// UnmarshalJSON implements json.Unmarshaler. null and the empty string (which
// the node sends for an empty set) decode to an empty mapping. A repeated key
// keeps its first position and its last value.
func (m *Mapping[R]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON object: %q", data)
	}
	m.keys = nil
	m.values = make(map[string]R)

	res := gjson.ParseBytes(data)
	switch {
	case res.Type == gjson.Null:
		return nil
	case res.Type == gjson.String && res.Str == "":
		return nil
	case !res.IsObject():
		return fmt.Errorf("expected an object keyed by account, got %s", res.Type)
	}

	var err error
	res.ForEach(func(key, value gjson.Result) bool {
		var rec R
		if err = cmtjson.Unmarshal([]byte(value.Raw), &rec); err != nil {
			err = fmt.Errorf("entry %s: %w", key.String(), err)
			return false
		}
		m.set(key.String(), rec)
		return true
	})
	return err
}

// MarshalJSON implements json.Marshaler, writing the members in key order.
func (m Mapping[R]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := cmtjson.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := cmtjson.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keyed is implemented by entities identified by the key they were stored
// under.
type Keyed interface {
	SetKey(key string)
}

// ReshapeFunc turns a mapping into a list with one element per key, in
// mapping order.
func ReshapeFunc[R, E any](m Mapping[R], fn func(key string, rec R) E) []E {
	out := make([]E, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, fn(k, m.values[k]))
	}
	return out
}

// Reshape is ReshapeFunc for records that are already the entity type: each
// record is copied and its key injected with SetKey.
func Reshape[E any, PE interface {
	*E
	Keyed
}](m Mapping[E]) []E {
	return ReshapeFunc(m, func(key string, rec E) E {
		PE(&rec).SetKey(key)
		return rec
	})
}
