// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package typemap maps schema field types onto Go types, wire types and the
// runtime's field table constructors.
package typemap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"buf.build/go/protolite/internal/schema"
	"buf.build/go/protolite/internal/wire"
)

// ErrMalformedDefault is returned by [DefaultLiteral] for a default value
// that does not parse as the field's type.
var ErrMalformedDefault = errors.New("malformed default value")

// Names supplies the Go names of message and enum types, which are chosen by
// the code generator.
type Names interface {
	Message(*schema.Message) string
	Enum(*schema.Enum) string
}

// WireType returns the wire type of a single value of kind k.
func WireType(k schema.Kind) wire.Type {
	switch k {
	case schema.BoolKind, schema.EnumKind,
		schema.Int32Kind, schema.Sint32Kind, schema.Uint32Kind,
		schema.Int64Kind, schema.Sint64Kind, schema.Uint64Kind:
		return wire.VarintType
	case schema.Fixed64Kind, schema.Sfixed64Kind, schema.DoubleKind:
		return wire.Fixed64Type
	case schema.Fixed32Kind, schema.Sfixed32Kind, schema.FloatKind:
		return wire.Fixed32Type
	case schema.GroupKind:
		return wire.StartGroupType
	default:
		return wire.BytesType
	}
}

// FieldWireType returns the wire type that f is encoded with. This is
// [wire.BytesType] for packed repeated fields.
func FieldWireType(f *schema.Field) wire.Type {
	if f.Label == schema.Repeated && Packable(f.Kind) {
		return wire.BytesType
	}
	return WireType(f.Kind)
}

// Packable reports whether repeated fields of kind k are packed.
func Packable(k schema.Kind) bool {
	switch WireType(k) {
	case wire.VarintType, wire.Fixed32Type, wire.Fixed64Type:
		return true
	default:
		return false
	}
}

// ScalarType returns the Go type of kind k, for kinds that are not message
// or enum types.
func ScalarType(k schema.Kind) string {
	switch k {
	case schema.Int32Kind, schema.Sint32Kind, schema.Sfixed32Kind:
		return "int32"
	case schema.Int64Kind, schema.Sint64Kind, schema.Sfixed64Kind:
		return "int64"
	case schema.Uint32Kind, schema.Fixed32Kind:
		return "uint32"
	case schema.Uint64Kind, schema.Fixed64Kind:
		return "uint64"
	case schema.FloatKind:
		return "float32"
	case schema.DoubleKind:
		return "float64"
	case schema.BoolKind:
		return "bool"
	case schema.StringKind:
		return "string"
	case schema.BytesKind:
		return "[]byte"
	default:
		return ""
	}
}

// ElemType returns the Go type of one value of f: for a repeated field, the
// element type. Message fields are pointers.
func ElemType(f *schema.Field, names Names) string {
	switch f.Kind {
	case schema.MessageKind, schema.GroupKind:
		return "*" + names.Message(f.Message)
	case schema.EnumKind:
		return names.Enum(f.Enum)
	default:
		return ScalarType(f.Kind)
	}
}

// GoType returns the Go type of the storage slot for f.
func GoType(f *schema.Field, names Names) string {
	if f.Label == schema.Repeated {
		return "[]" + ElemType(f, names)
	}
	return ElemType(f, names)
}

// Zero returns the Go literal for the zero value of f, which is what its
// getter returns on a nil message when it has no explicit default.
func Zero(f *schema.Field, names Names) string {
	if f.Label == schema.Repeated {
		return "nil"
	}
	switch f.Kind {
	case schema.MessageKind, schema.GroupKind, schema.BytesKind:
		return "nil"
	case schema.BoolKind:
		return "false"
	case schema.StringKind:
		return `""`
	case schema.EnumKind:
		if v := f.Enum.Default(); v != nil {
			return EnumConst(names.Enum(f.Enum), v.Name)
		}
		return "0"
	default:
		return "0"
	}
}

// EnumConst returns the name of the Go constant for an enum value.
func EnumConst(enum, value string) string {
	return enum + "_" + value
}

var runtimeKinds = map[schema.Kind]string{
	schema.BoolKind:     "BoolKind",
	schema.EnumKind:     "EnumKind",
	schema.Int32Kind:    "Int32Kind",
	schema.Sint32Kind:   "Sint32Kind",
	schema.Uint32Kind:   "Uint32Kind",
	schema.Int64Kind:    "Int64Kind",
	schema.Sint64Kind:   "Sint64Kind",
	schema.Uint64Kind:   "Uint64Kind",
	schema.Sfixed32Kind: "Sfixed32Kind",
	schema.Fixed32Kind:  "Fixed32Kind",
	schema.FloatKind:    "FloatKind",
	schema.Sfixed64Kind: "Sfixed64Kind",
	schema.Fixed64Kind:  "Fixed64Kind",
	schema.DoubleKind:   "DoubleKind",
	schema.StringKind:   "StringKind",
	schema.BytesKind:    "BytesKind",
	schema.MessageKind:  "MessageKind",
}

// RuntimeKind returns the name of the runtime's Kind constant for k, or ""
// if the runtime has none.
func RuntimeKind(k schema.Kind) string {
	return runtimeKinds[k]
}

// Constructor returns the name of the runtime function that builds the
// field table entry for f.
func Constructor(f *schema.Field) string {
	var name string
	switch f.Kind {
	case schema.BoolKind:
		name = "BoolField"
	case schema.EnumKind:
		name = "EnumField"
	case schema.StringKind:
		name = "StringField"
	case schema.BytesKind:
		name = "BytesField"
	case schema.MessageKind:
		name = "MessageField"
	default:
		name = "Field"
	}

	if f.Label == schema.Repeated {
		return "Repeated" + name
	}
	if name == "Field" {
		return "ScalarField"
	}
	return name
}

// TakesKind reports whether the constructor for f takes a runtime Kind
// argument.
func TakesKind(f *schema.Field) bool {
	switch Constructor(f) {
	case "ScalarField", "RepeatedField":
		return true
	default:
		return false
	}
}

// Literal is a Go expression, together with the import it needs, if any.
type Literal struct {
	Expr   string
	Import string
}

// DefaultLiteral returns the Go expression for f's proto2 default value.
//
// ok is false if f has no default, or if its default is the zero value, in
// which case nothing needs to be generated for it.
func DefaultLiteral(f *schema.Field, names Names) (lit Literal, ok bool, err error) {
	if !f.HasDefault || f.Label == schema.Repeated {
		return Literal{}, false, nil
	}

	s := f.Default
	fail := func() (Literal, bool, error) {
		return Literal{}, false, fmt.Errorf("%w for %s field: %q", ErrMalformedDefault, f.Kind, s)
	}

	switch f.Kind {
	case schema.Int32Kind, schema.Sint32Kind, schema.Sfixed32Kind,
		schema.Int64Kind, schema.Sint64Kind, schema.Sfixed64Kind:
		bits := 64
		if ScalarType(f.Kind) == "int32" {
			bits = 32
		}
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return fail()
		}
		return Literal{Expr: strconv.FormatInt(v, 10)}, v != 0, nil

	case schema.Uint32Kind, schema.Fixed32Kind, schema.Uint64Kind, schema.Fixed64Kind:
		bits := 64
		if ScalarType(f.Kind) == "uint32" {
			bits = 32
		}
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return fail()
		}
		return Literal{Expr: strconv.FormatUint(v, 10)}, v != 0, nil

	case schema.FloatKind, schema.DoubleKind:
		bits := 64
		if f.Kind == schema.FloatKind {
			bits = 32
		}
		// Calls into math yield float64, which needs a conversion for float
		// fields.
		call := func(expr string) (Literal, bool, error) {
			if bits == 32 {
				expr = "float32(" + expr + ")"
			}
			return Literal{Expr: expr, Import: "math"}, true, nil
		}
		switch s {
		case "inf":
			return call("math.Inf(1)")
		case "-inf":
			return call("math.Inf(-1)")
		case "nan":
			return call("math.NaN()")
		}
		v, err := strconv.ParseFloat(s, bits)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return fail()
		}
		if math.Signbit(v) && v == 0 {
			return call("math.Copysign(0, -1)")
		}
		return Literal{Expr: strconv.FormatFloat(v, 'g', -1, bits)}, v != 0, nil

	case schema.BoolKind:
		v, err := strconv.ParseBool(s)
		if err != nil || (s != "true" && s != "false") {
			return fail()
		}
		return Literal{Expr: s}, v, nil

	case schema.StringKind:
		return Literal{Expr: strconv.Quote(s)}, s != "", nil

	case schema.BytesKind:
		b, err := unescape(s)
		if err != nil {
			return fail()
		}
		return Literal{Expr: "[]byte(" + strconv.Quote(string(b)) + ")"}, len(b) != 0, nil

	case schema.EnumKind:
		if f.Enum == nil {
			return fail()
		}
		for _, v := range f.Enum.Values {
			if v.Name == s {
				zero := f.Enum.Default()
				isZero := zero != nil && zero.Number == v.Number
				return Literal{Expr: EnumConst(names.Enum(f.Enum), v.Name)}, !isZero, nil
			}
		}
		return fail()

	default:
		return fail()
	}
}

// unescape undoes the C-style escaping that descriptors use for the
// defaults of bytes fields.
func unescape(s string) ([]byte, error) {
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}

		i++
		if i == len(s) {
			return nil, ErrMalformedDefault
		}
		c = s[i]
		switch c {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'v':
			out = append(out, '\v')
		case '\\', '\'', '"', '?':
			out = append(out, c)
		case 'x', 'X':
			j := i + 1
			for j < len(s) && j < i+3 && isHex(s[j]) {
				j++
			}
			if j == i+1 {
				return nil, ErrMalformedDefault
			}
			v, _ := strconv.ParseUint(s[i+1:j], 16, 8)
			out = append(out, byte(v))
			i = j - 1
		default:
			if c < '0' || c > '7' {
				return nil, ErrMalformedDefault
			}
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, err := strconv.ParseUint(s[i:j], 8, 16)
			if err != nil || v > 0xff {
				return nil, ErrMalformedDefault
			}
			out = append(out, byte(v))
			i = j - 1
		}
	}
	return out, nil
}

func isHex(c byte) bool {
	return strings.IndexByte("0123456789abcdefABCDEF", c) >= 0
}
