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

package protolite

import (
	"fmt"

	"buf.build/go/protolite/internal/wire"
)

// FieldNumber is the number of a field, as it appears in tags.
type FieldNumber = wire.Number

// WireType is the low three bits of a tag.
type WireType = wire.Type

// Wire types.
const (
	VarintType  = wire.VarintType
	Fixed64Type = wire.Fixed64Type
	BytesType   = wire.BytesType
	Fixed32Type = wire.Fixed32Type
)

// Kind is the schema type of a field.
type Kind int8

const (
	invalidKind Kind = iota

	BoolKind
	EnumKind
	Int32Kind
	Sint32Kind
	Uint32Kind
	Int64Kind
	Sint64Kind
	Uint64Kind
	Sfixed32Kind
	Fixed32Kind
	FloatKind
	Sfixed64Kind
	Fixed64Kind
	DoubleKind
	StringKind
	BytesKind
	MessageKind
)

var kindNames = [...]string{
	BoolKind:     "bool",
	EnumKind:     "enum",
	Int32Kind:    "int32",
	Sint32Kind:   "sint32",
	Uint32Kind:   "uint32",
	Int64Kind:    "int64",
	Sint64Kind:   "sint64",
	Uint64Kind:   "uint64",
	Sfixed32Kind: "sfixed32",
	Fixed32Kind:  "fixed32",
	FloatKind:    "float",
	Sfixed64Kind: "sfixed64",
	Fixed64Kind:  "fixed64",
	DoubleKind:   "double",
	StringKind:   "string",
	BytesKind:    "bytes",
	MessageKind:  "message",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k > invalidKind && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// WireType returns the wire type used for a single value of this kind.
func (k Kind) WireType() WireType {
	switch k {
	case BoolKind, EnumKind, Int32Kind, Sint32Kind, Uint32Kind, Int64Kind, Sint64Kind, Uint64Kind:
		return VarintType
	case Sfixed64Kind, Fixed64Kind, DoubleKind:
		return Fixed64Type
	case Sfixed32Kind, Fixed32Kind, FloatKind:
		return Fixed32Type
	default:
		return BytesType
	}
}

// IsPackable reports whether repeated fields of this kind use packed
// encoding.
func (k Kind) IsPackable() bool {
	return k.WireType() != BytesType
}

// raw is the untyped encoding of a single value of some wire type.
type raw struct {
	typ     WireType
	size    func(uint64) int
	append  func([]byte, uint64) []byte
	consume func([]byte) (uint64, int)
}

var (
	rawVarint = &raw{
		typ:     VarintType,
		size:    wire.SizeVarint,
		append:  wire.AppendVarint,
		consume: wire.ConsumeVarint,
	}
	rawFixed32 = &raw{
		typ:    Fixed32Type,
		size:   func(uint64) int { return 4 },
		append: func(b []byte, v uint64) []byte { return wire.AppendFixed32(b, uint32(v)) },
		consume: func(b []byte) (uint64, int) {
			v, n := wire.ConsumeFixed32(b)
			return uint64(v), n
		},
	}
	rawFixed64 = &raw{
		typ:     Fixed64Type,
		size:    func(uint64) int { return 8 },
		append:  wire.AppendFixed64,
		consume: wire.ConsumeFixed64,
	}
)

// raw returns the raw codec for k. Panics for length-delimited kinds.
func (k Kind) raw() *raw {
	switch k.WireType() {
	case VarintType:
		return rawVarint
	case Fixed32Type:
		return rawFixed32
	case Fixed64Type:
		return rawFixed64
	default:
		panic(fmt.Sprintf("protolite: %v values are not scalars", k))
	}
}
