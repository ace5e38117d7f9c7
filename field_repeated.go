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
	"errors"
	"slices"

	"buf.build/go/protolite/internal/wire"
)

// RepeatedField returns a field for a repeated numeric field.
//
// Values are encoded as a single packed block. Decoding accepts both the
// packed form and one element per tag, in any mix.
func RepeatedField[M Message, T Number](num FieldNumber, name string, kind Kind, slot func(M) *[]T) Field {
	enc, dec := bitsOf[T](kind)
	return packed(num, name, kind, slot, enc, dec)
}

// RepeatedEnumField returns a field for a repeated enum field.
func RepeatedEnumField[M Message, E ~int32](num FieldNumber, name string, table *EnumTable, slot func(M) *[]E) Field {
	f := RepeatedField(num, name, EnumKind, slot)
	f.Enum = table
	return f
}

// RepeatedBoolField returns a field for a repeated bool field.
func RepeatedBoolField[M Message, T ~bool](num FieldNumber, name string, slot func(M) *[]T) Field {
	return packed(num, name, BoolKind, slot, boolBits[T], func(v uint64) T { return v != 0 })
}

// packed builds a packed repeated field from a pair of raw converters.
func packed[M Message, T comparable](
	num FieldNumber, name string, kind Kind, slot func(M) *[]T,
	enc func(T) uint64, dec func(uint64) T,
) Field {
	r := kind.raw()
	tg := newTag(num, BytesType)

	payload := func(vs []T) int {
		switch r {
		case rawFixed32:
			return 4 * len(vs)
		case rawFixed64:
			return 8 * len(vs)
		}
		var n int
		for _, v := range vs {
			n += r.size(enc(v))
		}
		return n
	}

	return Field{
		Number:   num,
		Name:     name,
		Kind:     kind,
		Repeated: true,
		Packed:   true,
		ops: fieldOps{
			present: func(m Message) bool { return len(*slot(m.(M))) > 0 },
			size: func(m Message, _ *encoder) int {
				return tg.size() + wire.SizeBytes(payload(*slot(m.(M))))
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				vs := *slot(m.(M))
				b = wire.AppendVarint(tg.append(b), uint64(payload(vs)))
				for _, v := range vs {
					b = r.append(b, enc(v))
				}
				return b
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				p := slot(m.(M))
				switch typ {
				case r.typ:
					v, n := r.consume(d.buf[pos:end])
					if n < 0 {
						return 0, d.fail(wire.ParseError(n), pos)
					}
					*p = append(*p, dec(v))
					return pos + n, nil

				case BytesType:
					start, stop, err := d.delimited(pos, end)
					if err != nil {
						return 0, err
					}
					if r != rawVarint {
						// The element count is known up front.
						*p = slices.Grow(*p, (stop-start)/r.size(0))
					}
					for i := start; i < stop; {
						v, n := r.consume(d.buf[i:stop])
						if n < 0 {
							err := wire.ParseError(n)
							if errors.Is(err, ErrTruncatedInput) {
								// The block ended part-way through an element.
								err = ErrInvalidLength
							}
							return 0, d.fail(err, i)
						}
						*p = append(*p, dec(v))
						i += n
					}
					return stop, nil

				default:
					return 0, d.mismatch(pos)
				}
			},
			clear: func(m Message) { *slot(m.(M)) = nil },
			equal: func(a, b Message) bool {
				return slices.EqualFunc(*slot(a.(M)), *slot(b.(M)), func(x, y T) bool { return enc(x) == enc(y) })
			},
			copy: func(dst, src Message) { *slot(dst.(M)) = slices.Clone(*slot(src.(M))) },
			format: func(p *printer, f *Field, m Message) {
				for _, v := range *slot(m.(M)) {
					p.scalar(f, enc(v))
				}
			},
		},
	}
}

// RepeatedStringField returns a field for a repeated string field. Each
// element is written with its own tag.
func RepeatedStringField[M Message](num FieldNumber, name string, slot func(M) *[]string) Field {
	tg := newTag(num, BytesType)

	return Field{
		Number:   num,
		Name:     name,
		Kind:     StringKind,
		Repeated: true,
		ops: fieldOps{
			present: func(m Message) bool { return len(*slot(m.(M))) > 0 },
			size: func(m Message, _ *encoder) int {
				var n int
				for _, v := range *slot(m.(M)) {
					n += tg.size() + wire.SizeBytes(len(v))
				}
				return n
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				for _, v := range *slot(m.(M)) {
					b = wire.AppendString(tg.append(b), v)
				}
				return b
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				v, next, err := d.string(pos, end)
				if err != nil {
					return 0, err
				}
				p := slot(m.(M))
				*p = append(*p, v)
				return next, nil
			},
			clear: func(m Message) { *slot(m.(M)) = nil },
			equal: func(a, b Message) bool { return slices.Equal(*slot(a.(M)), *slot(b.(M))) },
			copy:  func(dst, src Message) { *slot(dst.(M)) = slices.Clone(*slot(src.(M))) },
			format: func(p *printer, f *Field, m Message) {
				for _, v := range *slot(m.(M)) {
					p.string(f, v)
				}
			},
		},
	}
}

// RepeatedBytesField returns a field for a repeated bytes field.
func RepeatedBytesField[M Message](num FieldNumber, name string, slot func(M) *[][]byte) Field {
	tg := newTag(num, BytesType)

	return Field{
		Number:   num,
		Name:     name,
		Kind:     BytesKind,
		Repeated: true,
		ops: fieldOps{
			present: func(m Message) bool { return len(*slot(m.(M))) > 0 },
			size: func(m Message, _ *encoder) int {
				var n int
				for _, v := range *slot(m.(M)) {
					n += tg.size() + wire.SizeBytes(len(v))
				}
				return n
			},
			append: func(b []byte, m Message, _ *encoder) []byte {
				for _, v := range *slot(m.(M)) {
					b = wire.AppendBytes(tg.append(b), v)
				}
				return b
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				start, stop, err := d.delimited(pos, end)
				if err != nil {
					return 0, err
				}
				p := slot(m.(M))
				*p = append(*p, append([]byte{}, d.buf[start:stop]...))
				return stop, nil
			},
			clear: func(m Message) { *slot(m.(M)) = nil },
			equal: func(a, b Message) bool { return slices.EqualFunc(*slot(a.(M)), *slot(b.(M)), bytes.Equal) },
			copy: func(dst, src Message) {
				vs := slices.Clone(*slot(src.(M)))
				for i := range vs {
					vs[i] = bytes.Clone(vs[i])
				}
				*slot(dst.(M)) = vs
			},
			format: func(p *printer, f *Field, m Message) {
				for _, v := range *slot(m.(M)) {
					p.bytes(f, v)
				}
			},
		},
	}
}
