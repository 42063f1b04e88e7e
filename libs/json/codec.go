// Package json provides the codec used on the node wire.
//
// Exported struct fields that carry no explicit json name are mapped to
// lower_snake_case names, so a field BlockCount travels as "block_count".
// An explicit name in a json tag always wins and `json:"-"` hides a field.
// Map keys are left untouched.
package json

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	jsoniter "github.com/json-iterator/go"
)

// Codec converts between in-memory values and JSON text.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type codec struct {
	api jsoniter.API
}

var _ Codec = (*codec)(nil)

var defaultCodec = NewCodec()

// NewCodec returns a codec applying the lower_snake_case naming convention.
// Each codec owns its own frozen configuration and decoder cache.
func NewCodec() Codec {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&snakeCaseNaming{})
	return &codec{api: api}
}

// Default returns the package codec.
func Default() Codec { return defaultCodec }

func (c *codec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

func (c *codec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}

// Marshal encodes v with the default codec.
func Marshal(v any) ([]byte, error) {
	return defaultCodec.Marshal(v)
}

// MarshalIndent is like Marshal but applies indent to format the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return defaultCodec.(*codec).api.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data into v with the default codec.
func Unmarshal(data []byte, v any) error {
	return defaultCodec.Unmarshal(data, v)
}

// snakeCaseNaming renames untagged exported fields to lower_snake_case.
type snakeCaseNaming struct {
	jsoniter.DummyExtension
}

func (*snakeCaseNaming) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		name := binding.Field.Name()
		if unicode.IsLower(rune(name[0])) || name[0] == '_' {
			continue
		}
		if tag, ok := binding.Field.Tag().Lookup("json"); ok {
			// "-" hides the field, any other name was chosen on purpose.
			if wire := strings.Split(tag, ",")[0]; wire != "" {
				continue
			}
		}
		wire := FieldName(name)
		binding.ToNames = []string{wire}
		binding.FromNames = []string{wire}
	}
}

// FieldName returns the wire name of an in-memory field name.
func FieldName(name string) string {
	return strcase.ToSnake(name)
}
