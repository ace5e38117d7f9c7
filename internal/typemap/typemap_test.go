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

package typemap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/protolite"
	"buf.build/go/protolite/internal/schema"
	"buf.build/go/protolite/internal/typemap"
	"buf.build/go/protolite/internal/wire"
)

type names struct{}

func (names) Message(m *schema.Message) string { return "M_" + m.Name }
func (names) Enum(e *schema.Enum) string       { return "E_" + e.Name }

var enum = &schema.Enum{
	Name: "Color",
	Values: []*schema.EnumValue{
		{Name: "NONE", Number: 0},
		{Name: "RED", Number: 3},
		{Name: "ALSO_NONE", Number: 0},
	},
}

func TestWireType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    schema.Kind
		wire    wire.Type
		runtime protolite.Kind
	}{
		{schema.Int32Kind, wire.VarintType, protolite.Int32Kind},
		{schema.Int64Kind, wire.VarintType, protolite.Int64Kind},
		{schema.Uint32Kind, wire.VarintType, protolite.Uint32Kind},
		{schema.Uint64Kind, wire.VarintType, protolite.Uint64Kind},
		{schema.Sint32Kind, wire.VarintType, protolite.Sint32Kind},
		{schema.Sint64Kind, wire.VarintType, protolite.Sint64Kind},
		{schema.BoolKind, wire.VarintType, protolite.BoolKind},
		{schema.EnumKind, wire.VarintType, protolite.EnumKind},
		{schema.Fixed64Kind, wire.Fixed64Type, protolite.Fixed64Kind},
		{schema.Sfixed64Kind, wire.Fixed64Type, protolite.Sfixed64Kind},
		{schema.DoubleKind, wire.Fixed64Type, protolite.DoubleKind},
		{schema.Fixed32Kind, wire.Fixed32Type, protolite.Fixed32Kind},
		{schema.Sfixed32Kind, wire.Fixed32Type, protolite.Sfixed32Kind},
		{schema.FloatKind, wire.Fixed32Type, protolite.FloatKind},
		{schema.StringKind, wire.BytesType, protolite.StringKind},
		{schema.BytesKind, wire.BytesType, protolite.BytesKind},
		{schema.MessageKind, wire.BytesType, protolite.MessageKind},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wire, typemap.WireType(tt.kind))
			assert.Equal(t, tt.wire != wire.BytesType, typemap.Packable(tt.kind))

			// Agrees with the runtime.
			assert.Equal(t, tt.runtime.WireType(), typemap.WireType(tt.kind))
			assert.Equal(t, tt.runtime.String(), tt.kind.String())
			assert.Equal(t, fmt.Sprintf("%sKind", upper(tt.kind.String())), typemap.RuntimeKind(tt.kind))

			f := &schema.Field{Kind: tt.kind, Label: schema.Repeated}
			if typemap.Packable(tt.kind) {
				assert.Equal(t, wire.BytesType, typemap.FieldWireType(f))
			} else {
				assert.Equal(t, tt.wire, typemap.FieldWireType(f))
			}
		})
	}

	assert.Equal(t, wire.StartGroupType, typemap.WireType(schema.GroupKind))
	assert.Empty(t, typemap.RuntimeKind(schema.GroupKind))
}

func upper(s string) string {
	return string(s[0]-'a'+'A') + s[1:]
}

func TestGoType(t *testing.T) {
	t.Parallel()

	msg := &schema.Message{Name: "Tree"}
	tests := []struct {
		field *schema.Field
		typ   string
		zero  string
		ctor  string
	}{
		{&schema.Field{Kind: schema.Sint32Kind}, "int32", "0", "ScalarField"},
		{&schema.Field{Kind: schema.Sfixed64Kind}, "int64", "0", "ScalarField"},
		{&schema.Field{Kind: schema.Fixed32Kind}, "uint32", "0", "ScalarField"},
		{&schema.Field{Kind: schema.FloatKind}, "float32", "0", "ScalarField"},
		{&schema.Field{Kind: schema.BoolKind}, "bool", "false", "BoolField"},
		{&schema.Field{Kind: schema.StringKind}, "string", `""`, "StringField"},
		{&schema.Field{Kind: schema.BytesKind}, "[]byte", "nil", "BytesField"},
		{&schema.Field{Kind: schema.EnumKind, Enum: enum}, "E_Color", "E_Color_NONE", "EnumField"},
		{&schema.Field{Kind: schema.MessageKind, Message: msg}, "*M_Tree", "nil", "MessageField"},
		{&schema.Field{Kind: schema.Uint64Kind, Label: schema.Repeated}, "[]uint64", "nil", "RepeatedField"},
		{&schema.Field{Kind: schema.BoolKind, Label: schema.Repeated}, "[]bool", "nil", "RepeatedBoolField"},
		{&schema.Field{Kind: schema.BytesKind, Label: schema.Repeated}, "[][]byte", "nil", "RepeatedBytesField"},
		{&schema.Field{Kind: schema.EnumKind, Label: schema.Repeated, Enum: enum}, "[]E_Color", "nil", "RepeatedEnumField"},
		{&schema.Field{Kind: schema.MessageKind, Label: schema.Repeated, Message: msg}, "[]*M_Tree", "nil", "RepeatedMessageField"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, typemap.GoType(tt.field, names{}))
		assert.Equal(t, tt.zero, typemap.Zero(tt.field, names{}), tt.typ)
		assert.Equal(t, tt.ctor, typemap.Constructor(tt.field), tt.typ)
	}

	assert.True(t, typemap.TakesKind(&schema.Field{Kind: schema.DoubleKind}))
	assert.True(t, typemap.TakesKind(&schema.Field{Kind: schema.DoubleKind, Label: schema.Repeated}))
	assert.False(t, typemap.TakesKind(&schema.Field{Kind: schema.StringKind}))
	assert.Equal(t, "*M_Tree", typemap.ElemType(&schema.Field{Kind: schema.MessageKind, Label: schema.Repeated, Message: msg}, names{}))
}

func TestDefaultLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     schema.Kind
		def      string
		expr     string
		nonZero  bool
		imported bool
	}{
		{kind: schema.Int32Kind, def: "7", expr: "7", nonZero: true},
		{kind: schema.Sint32Kind, def: "-3", expr: "-3", nonZero: true},
		{kind: schema.Int64Kind, def: "0", expr: "0"},
		{kind: schema.Uint64Kind, def: "18446744073709551615", expr: "18446744073709551615", nonZero: true},
		{kind: schema.DoubleKind, def: "inf", expr: "math.Inf(1)", nonZero: true, imported: true},
		{kind: schema.DoubleKind, def: "-inf", expr: "math.Inf(-1)", nonZero: true, imported: true},
		{kind: schema.FloatKind, def: "nan", expr: "float32(math.NaN())", nonZero: true, imported: true},
		{kind: schema.DoubleKind, def: "-0", expr: "math.Copysign(0, -1)", nonZero: true, imported: true},
		{kind: schema.FloatKind, def: "1.5", expr: "1.5", nonZero: true},
		{kind: schema.DoubleKind, def: "1e10", expr: "1e+10", nonZero: true},
		{kind: schema.BoolKind, def: "true", expr: "true", nonZero: true},
		{kind: schema.BoolKind, def: "false", expr: "false"},
		{kind: schema.StringKind, def: `say "hi"`, expr: `"say \"hi\""`, nonZero: true},
		{kind: schema.StringKind, def: "", expr: `""`},
		{kind: schema.BytesKind, def: `\001\002`, expr: `[]byte("\x01\x02")`, nonZero: true},
		{kind: schema.BytesKind, def: `a\x41\n\\`, expr: `[]byte("aA\n\\")`, nonZero: true},
		{kind: schema.BytesKind, def: `\0`, expr: `[]byte("\x00")`, nonZero: true},
		{kind: schema.EnumKind, def: "RED", expr: "E_Color_RED", nonZero: true},
		{kind: schema.EnumKind, def: "ALSO_NONE", expr: "E_Color_ALSO_NONE"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.def, func(t *testing.T) {
			t.Parallel()

			f := &schema.Field{Kind: tt.kind, Default: tt.def, HasDefault: true, Enum: enum}
			lit, ok, err := typemap.DefaultLiteral(f, names{})
			require.NoError(t, err)
			assert.Equal(t, tt.expr, lit.Expr)
			assert.Equal(t, tt.nonZero, ok)
			if tt.imported {
				assert.Equal(t, "math", lit.Import)
			} else {
				assert.Empty(t, lit.Import)
			}
		})
	}
}

func TestDefaultLiteralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind schema.Kind
		def  string
	}{
		{schema.Int32Kind, "x"},
		{schema.Int32Kind, "4294967296"},
		{schema.Int32Kind, "0x10"},
		{schema.Uint32Kind, "-1"},
		{schema.FloatKind, "1e100"},
		{schema.DoubleKind, "infinity"},
		{schema.BoolKind, "1"},
		{schema.BytesKind, `\`},
		{schema.BytesKind, `\q`},
		{schema.BytesKind, `\x`},
		{schema.BytesKind, `\777`},
		{schema.EnumKind, "GREEN"},
	}

	for _, tt := range tests {
		f := &schema.Field{Kind: tt.kind, Default: tt.def, HasDefault: true, Enum: enum}
		_, _, err := typemap.DefaultLiteral(f, names{})
		assert.ErrorIs(t, err, typemap.ErrMalformedDefault, "%v %q", tt.kind, tt.def)
	}

	// No default at all.
	_, ok, err := typemap.DefaultLiteral(&schema.Field{Kind: schema.Int32Kind}, names{})
	assert.NoError(t, err)
	assert.False(t, ok)
}
