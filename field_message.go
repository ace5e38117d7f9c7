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
	"slices"

	"buf.build/go/protolite/internal/wire"
)

// MessageField returns a field for a singular message field.
//
// The slot holds the child exclusively: decoding a new occurrence of the
// field replaces the child with a freshly decoded one via [Replace], and
// clearing the field clears the child.
func MessageField[M Message, T any, P Ptr[T]](num FieldNumber, name string, slot func(M) *P) Field {
	tg := newTag(num, BytesType)

	return Field{
		Number: num,
		Name:   name,
		Kind:   MessageKind,
		ops: fieldOps{
			present: func(m Message) bool { return *slot(m.(M)) != nil },
			size: func(m Message, e *encoder) int {
				return tg.size() + wire.SizeBytes(e.messageSize(*slot(m.(M))))
			},
			append: func(b []byte, m Message, e *encoder) []byte {
				return e.appendChild(tg.append(b), *slot(m.(M)))
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				child, next, err := consumeMessage[T, P](d, pos, end)
				if err != nil {
					return 0, err
				}
				Replace(slot(m.(M)), child)
				return next, nil
			},
			clear: func(m Message) { Replace(slot(m.(M)), nil) },
			equal: func(a, b Message) bool { return equalChild(*slot(a.(M)), *slot(b.(M))) },
			copy:  func(dst, src Message) { *slot(dst.(M)) = cloneChild(*slot(src.(M))) },
			format: func(p *printer, f *Field, m Message) {
				p.message(f, *slot(m.(M)))
			},
			find: func(m, v Message, unlink bool) bool {
				p := slot(m.(M))
				child := *p
				switch {
				case child == nil:
					return false
				case Message(child) == v:
					if unlink {
						*p = nil
					}
					return true
				default:
					return find(child, v, unlink)
				}
			},
		},
	}
}

// RepeatedMessageField returns a field for a repeated message field.
//
// A nil element is encoded as an empty message.
func RepeatedMessageField[M Message, T any, P Ptr[T]](num FieldNumber, name string, slot func(M) *[]P) Field {
	tg := newTag(num, BytesType)

	return Field{
		Number:   num,
		Name:     name,
		Kind:     MessageKind,
		Repeated: true,
		ops: fieldOps{
			present: func(m Message) bool { return len(*slot(m.(M))) > 0 },
			size: func(m Message, e *encoder) int {
				var n int
				for _, v := range *slot(m.(M)) {
					var size int
					if v != nil {
						size = e.messageSize(v)
					}
					n += tg.size() + wire.SizeBytes(size)
				}
				return n
			},
			append: func(b []byte, m Message, e *encoder) []byte {
				for _, v := range *slot(m.(M)) {
					b = tg.append(b)
					if v == nil {
						b = append(b, 0)
						continue
					}
					b = e.appendChild(b, v)
				}
				return b
			},
			consume: func(d *decoder, m Message, typ WireType, pos, end int) (int, error) {
				if typ != BytesType {
					return 0, d.mismatch(pos)
				}
				child, next, err := consumeMessage[T, P](d, pos, end)
				if err != nil {
					return 0, err
				}
				p := slot(m.(M))
				*p = append(*p, child)
				return next, nil
			},
			clear: func(m Message) {
				p := slot(m.(M))
				vs := *p
				*p = nil
				for _, v := range vs {
					if v != nil {
						v.Clear()
					}
				}
			},
			equal: func(a, b Message) bool {
				x, y := *slot(a.(M)), *slot(b.(M))
				if len(x) != len(y) {
					return false
				}
				for i := range x {
					if !equalChild(x[i], y[i]) {
						return false
					}
				}
				return true
			},
			copy: func(dst, src Message) {
				vs := *slot(src.(M))
				out := make([]P, len(vs))
				for i, v := range vs {
					out[i] = cloneChild(v)
				}
				*slot(dst.(M)) = out
			},
			format: func(p *printer, f *Field, m Message) {
				for _, v := range *slot(m.(M)) {
					if v == nil {
						p.message(f, nil)
						continue
					}
					p.message(f, v)
				}
			},
			find: func(m, v Message, unlink bool) bool {
				p := slot(m.(M))
				for i, child := range *p {
					switch {
					case child == nil:
						continue
					case Message(child) == v:
						if unlink {
							// Copy, so that a caller still holding the old slice
							// does not see it shift.
							*p = slices.Delete(slices.Clone(*p), i, i+1)
						}
						return true
					case find(child, v, unlink):
						return true
					}
				}
				return false
			},
		},
	}
}

// appendChild appends a length-prefixed child message.
func (e *encoder) appendChild(b []byte, m Message) []byte {
	b = wire.AppendVarint(b, uint64(e.messageSize(m)))
	return e.appendMessage(b, m)
}

// consumeMessage decodes a length-prefixed message at pos into a new value.
//
// On failure the partially-decoded value is cleared and dropped, so that the
// caller never attaches it.
func consumeMessage[T any, P Ptr[T]](d *decoder, pos, end int) (P, int, error) {
	start, stop, err := d.delimited(pos, end)
	if err != nil {
		return nil, 0, err
	}
	child := newMessage[T, P]()
	if err := d.message(child, start, stop); err != nil {
		child.Clear()
		return nil, 0, err
	}
	return child, stop, nil
}

// equalChild compares two child slots. An absent child only equals another
// absent child.
func equalChild[T any, P Ptr[T]](a, b P) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equal(a, b)
}

// cloneChild deep-copies a child slot.
func cloneChild[T any, P Ptr[T]](m P) P {
	if m == nil {
		return nil
	}
	c := newMessage[T, P]()
	copyMessage(c, m)
	return c
}
