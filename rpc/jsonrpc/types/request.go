package types

import (
	"bytes"
	"fmt"
	"strings"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
)

// ActionKey is the parameter under which every request carries its action.
const ActionKey = "action"

// Request is a single call to the node: an action and its named parameters.
// A Request is built once with a Builder and never mutated afterwards.
type Request struct {
	action string
	keys   []string
	params map[string]any
}

// Action starts building a request for the given action.
func Action(name string) *Builder {
	return &Builder{
		action: name,
		params: make(map[string]any),
	}
}

// Builder accumulates the parameters of a Request.
type Builder struct {
	action string
	keys   []string
	params map[string]any
}

// Param sets a parameter. Setting the same key twice keeps the last value at
// the position of the first insertion. Values are not validated.
func (b *Builder) Param(key string, value any) *Builder {
	if _, ok := b.params[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.params[key] = value
	return b
}

// Build stamps the action into the parameters and returns the finished
// request. The builder may keep being used; the returned Request does not
// observe later changes.
func (b *Builder) Build() Request {
	keys := make([]string, 0, len(b.keys)+1)
	keys = append(keys, ActionKey)
	params := make(map[string]any, len(b.params)+1)
	for _, k := range b.keys {
		if k == ActionKey {
			continue
		}
		keys = append(keys, k)
		params[k] = b.params[k]
	}
	params[ActionKey] = b.action

	return Request{
		action: b.action,
		keys:   keys,
		params: params,
	}
}

// Action returns the action selecting the remote operation.
func (r Request) Action() string {
	return r.action
}

// Params returns a copy of the parameters, "action" included.
func (r Request) Params() map[string]any {
	params := make(map[string]any, len(r.params))
	for k, v := range r.params {
		params[k] = v
	}
	return params
}

// Keys returns the parameter names in wire order, "action" first.
func (r Request) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Get returns the value of a single parameter.
func (r Request) Get(key string) (any, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Encode renders the request as a JSON object with the members in wire
// order, encoding keys and values with c.
func (r Request) Encode(c cmtjson.Codec) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := c.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := c.Marshal(r.params[k])
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler with the default codec.
func (r Request) MarshalJSON() ([]byte, error) {
	return r.Encode(cmtjson.Default())
}

func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString(r.action)
	if len(r.keys) < 2 {
		return sb.String()
	}
	for _, k := range r.keys[1:] {
		fmt.Fprintf(&sb, " %s=%v", k, r.params[k])
	}
	return sb.String()
}
