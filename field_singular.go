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
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"
	"unsafe"

	"buf.build/go/protolite/internal/wire"
	"buf.build/go/protolite/internal/zigzag"
)

// Number is the constraint for Go types that hold numeric fields.
type Number interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// bitsOf returns a function converting a value of type T to the raw wire
// value for kind k, and one converting back.
//
// Panics if T cannot represent k; generated code always pairs them
// correctly.
func bitsOf[T Number](k Kind) (enc func(T) uint64, dec func(uint64) T) {
	var z T
	size := unsafe.Sizeof(z)
	half := 0.5
	float := T(half) != 0

	check := func(ok bool) {
		if !ok {
			panic(fmt.Sprintf("protolite: %T cannot hold a %v field", z, k))
		}
	}

	switch k {
	case FloatKind:
		check(float && size == 4)
		return func(v T) uint64 { return uint64(math.Float32bits(float32(v))) },
			func(r uint64) T { return T(math.Float32frombits(uint32(r))) }
	case DoubleKind:
		check(float && size == 8)
		return func(v T) uint64 { return math.Float64bits(float64(v)) },
			func(r uint64) T { return T(math.Float64frombits(r)) }
	}

	check(!float)
	switch k {
	case Int32Kind, EnumKind, Sfixed32Kind:
		// Negative 32-bit values are sign-extended to ten bytes on the wire.
		check(size == 4)
		return func(v T) uint64 { return uint64(int64(int32(v))) },
			func(r uint64) T { return T(int32(r)) }
	case Uint32Kind, Fixed32Kind:
		check(size == 4)
		return func(v T) uint64 { return uint64(uint32(v)) },
			func(r uint64) T { return T(uint32(r)) }
	case Sint32Kind:
		check(size == 4)
		return func(v T) uint64 { return zigzag.Encode(int32(v)) },
			func(r uint64) T { return T(zigzag.Decode[int32](r)) }
	case Sint64Kind:
		check(size == 8)
		return func(v T) uint64 { return zigzag.Encode(int64(v)) },
			func(r uint64) T { return T(zigzag.Decode[int64](r)) }
	case Int64Kind, Uint64Kind, Sfixed64Kind, Fixed64Kind:
		check(size == 8)
		return func(v T) uint64 { return uint64(v) },
			func(r uint64) T { return T(r) }
	}

	check(false)
	return nil, nil
}

// ScalarField returns a field for a singular numeric or enum field.
//
// slot returns a pointer to the field's storage within a message. If def is
// given, it is the field's default value: the value after Clear, and a value
// that is not encoded.
//
// Presence and equality are decided on the raw wire value, so a float field
// holding -0.0 is present when the default is 0.0, and NaN equals itself.
func ScalarField[M Message, T Number](num FieldNumber, name string, kind Kind, slot func(M) *T, def ...T) Field {
	var zero T
	if len(def) > 0 {
		zero = def[0]
	}

	enc, dec := bitsOf[T](kind)
	r := kind.raw()
	tg := newTag(num, r.typ)
	zeroBits := enc(zero)

	return Field{
		Number: num,
		Name:   name,
		Kind:   kind,
		ops: fieldOps{
			present: func(m Message) bool { return enc(*slot(m.(M))) != zeroBits },
			size: func(m Message, _ *encoder) int {
				return tg.size() + r.size(enc(*slot(m.(M))))
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				return r.append(tg.append(b), enc(*slot(m.(M))))
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != r.typ {
					return 0, d.mismatch(pos)
				}
				v, n := r.consume(d.buf[pos:end])
				if n < 0 {
					return 0, d.fail(wire.ParseError(n), pos)
				}
				*slot(m.(M)) = dec(v)
				return pos + n, nil
			},
			clear:  func(m Message) { *slot(m.(M)) = zero },
			equal:  func(a, b Message) bool { return enc(*slot(a.(M))) == enc(*slot(b.(M))) },
			copy:   func(dst, src Message) { *slot(dst.(M)) = *slot(src.(M)) },
			format: func(p *printer, f *Field, m Message) { p.scalar(f, enc(*slot(m.(M)))) },
		},
	}
}

// EnumField returns a field for a singular enum field. Values not named by
// table are preserved as plain numbers.
func EnumField[M Message, E ~int32](num FieldNumber, name string, table *EnumTable, slot func(M) *E, def ...E) Field {
	f := ScalarField(num, name, EnumKind, slot, def...)
	f.Enum = table
	return f
}

// BoolField returns a field for a singular bool field.
func BoolField[M Message, T ~bool](num FieldNumber, name string, slot func(M) *T, def ...T) Field {
	var zero T
	if len(def) > 0 {
		zero = def[0]
	}
	tg := newTag(num, VarintType)

	return Field{
		Number: num,
		Name:   name,
		Kind:   BoolKind,
		ops: fieldOps{
			present: func(m Message) bool { return *slot(m.(M)) != zero },
			size:    func(Message, *encoder) int { return tg.size() + 1 },
			append: func(b []byte, m Message, _ *encoder) []byte {
				return wire.AppendVarint(tg.append(b), boolBits(*slot(m.(M))))
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != VarintType {
					return 0, d.mismatch(pos)
				}
				v, n := wire.ConsumeVarint(d.buf[pos:end])
				if n < 0 {
					return 0, d.fail(wire.ParseError(n), pos)
				}
				*slot(m.(M)) = v != 0
				return pos + n, nil
			},
			clear:  func(m Message) { *slot(m.(M)) = zero },
			equal:  func(a, b Message) bool { return *slot(a.(M)) == *slot(b.(M)) },
			copy:   func(dst, src Message) { *slot(dst.(M)) = *slot(src.(M)) },
			format: func(p *printer, f *Field, m Message) { p.scalar(f, boolBits(*slot(m.(M)))) },
		},
	}
}

func boolBits[T ~bool](v T) uint64 {
	if v {
		return 1
	}
	return 0
}

// StringField returns a field for a singular string field.
//
// Decoded strings are checked for valid UTF-8 unless disabled with
// [WithAllowInvalidUTF8].
func StringField[M Message](num FieldNumber, name string, slot func(M) *string, def ...string) Field {
	var zero string
	if len(def) > 0 {
		zero = def[0]
	}
	tg := newTag(num, BytesType)

	return Field{
		Number: num,
		Name:   name,
		Kind:   StringKind,
		ops: fieldOps{
			present: func(m Message) bool { return *slot(m.(M)) != zero },
			size: func(m Message, _ *encoder) int {
				return tg.size() + wire.SizeBytes(len(*slot(m.(M))))
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				return wire.AppendString(tg.append(b), *slot(m.(M)))
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				v, next, err := d.string(pos, end)
				if err != nil {
					return 0, err
				}
				*slot(m.(M)) = v
				return next, nil
			},
			clear:  func(m Message) { *slot(m.(M)) = zero },
			equal:  func(a, b Message) bool { return *slot(a.(M)) == *slot(b.(M)) },
			copy:   func(dst, src Message) { *slot(dst.(M)) = *slot(src.(M)) },
			format: func(p *printer, f *Field, m Message) { p.string(f, *slot(m.(M))) },
		},
	}
}

// BytesField returns a field for a singular bytes field.
//
// Decoded values are copied out of the input, and are never nil, even when
// empty.
func BytesField[M Message](num FieldNumber, name string, slot func(M) *[]byte, def ...[]byte) Field {
	var zero []byte
	if len(def) > 0 {
		zero = def[0]
	}
	tg := newTag(num, BytesType)

	return Field{
		Number: num,
		Name:   name,
		Kind:   BytesKind,
		ops: fieldOps{
			present: func(m Message) bool { return !bytes.Equal(*slot(m.(M)), zero) },
			size: func(m Message, _ *encoder) int {
				return tg.size() + wire.SizeBytes(len(*slot(m.(M))))
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				return wire.AppendBytes(tg.append(b), *slot(m.(M)))
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				start, stop, err := d.delimited(pos, end)
				if err != nil {
					return 0, err
				}
				*slot(m.(M)) = append([]byte{}, d.buf[start:stop]...)
				return stop, nil
			},
			clear: func(m Message) {
				if zero == nil {
					*slot(m.(M)) = nil
				} else {
					*slot(m.(M)) = bytes.Clone(zero)
				}
			},
			equal:  func(a, b Message) bool { return bytes.Equal(*slot(a.(M)), *slot(b.(M))) },
			copy:   func(dst, src Message) { *slot(dst.(M)) = bytes.Clone(*slot(src.(M))) },
			format: func(p *printer, f *Field, m Message) { p.bytes(f, *slot(m.(M))) },
		},
	}
}

// string parses a length-prefixed string at pos, validating it. Returns the
// offset just past it.
func (d *decoder) string(pos, end int) (string, int, error) {
	start, stop, err := d.delimited(pos, end)
	if err != nil {
		return "", 0, err
	}
	b := d.buf[start:stop]
	if !d.allowInvalidUTF8 && !utf8.Valid(b) {
		return "", 0, d.fail(ErrInvalidUTF8, pos)
	}
	return string(b), stop, nil
}
