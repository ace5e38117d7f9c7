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
	"io"
	"slices"
)

// Message is the contract implemented by every generated message type.
//
// Generated types implement these methods by calling the functions of the
// same name in this package, so an alternative runtime only needs to provide
// the same API.
type Message interface {
	// MessageInfo returns the field table shared by all values of the type.
	//
	// It must not dereference the receiver.
	MessageInfo() *MessageInfo

	// Clear resets the message to the all-defaults state, clearing every
	// nested message it owns. Clear is idempotent.
	Clear()

	// Encode writes the wire encoding of the message to w.
	Encode(w io.Writer) error

	// Decode merges the wire encoding read from r into the message.
	Decode(r io.Reader) error
}

// MessageInfo describes a generated message type: its full name, a
// constructor, and its field table.
type MessageInfo struct {
	name   string
	new    func() Message
	fields []Field

	// dense[n] is the index into fields for field number n, plus one; zero
	// means there is no such field. Only used when field numbers are small.
	dense []uint16
}

// maxDense is the largest field number that will use a dense lookup table.
const maxDense = 256

// NewMessageInfo builds the field table for a generated message type.
//
// new must return a fresh message in the all-defaults state. Fields may be
// given in any order; they are sorted by number, which is also the order in
// which they are encoded.
//
// Panics if two fields share a number; the generator never emits such a
// table.
func NewMessageInfo(name string, new func() Message, fields ...Field) *MessageInfo {
	mi := &MessageInfo{
		name:   name,
		new:    new,
		fields: slices.Clone(fields),
	}
	slices.SortStableFunc(mi.fields, func(a, b Field) int {
		return int(a.Number) - int(b.Number)
	})

	for i := 1; i < len(mi.fields); i++ {
		if mi.fields[i].Number == mi.fields[i-1].Number {
			panic(fmt.Sprintf("protolite: %s: fields %q and %q share number %d",
				name, mi.fields[i-1].Name, mi.fields[i].Name, mi.fields[i].Number))
		}
	}

	for i := range mi.fields {
		mi.fields[i].fullName = name + "." + mi.fields[i].Name
	}

	if n := len(mi.fields); n > 0 && mi.fields[n-1].Number <= maxDense {
		mi.dense = make([]uint16, mi.fields[n-1].Number+1)
		for i, f := range mi.fields {
			mi.dense[f.Number] = uint16(i + 1)
		}
	}

	return mi
}

// FullName returns the fully-qualified schema name of the message.
func (mi *MessageInfo) FullName() string {
	return mi.name
}

// New returns a new message of this type in the all-defaults state.
func (mi *MessageInfo) New() Message {
	return mi.new()
}

// Fields returns the fields of the message, sorted by number.
//
// The returned slice must not be modified.
func (mi *MessageInfo) Fields() []Field {
	return mi.fields
}

// FieldByNumber returns the field with the given number, or nil.
func (mi *MessageInfo) FieldByNumber(n FieldNumber) *Field {
	if mi.dense != nil {
		if n < 0 || int(n) >= len(mi.dense) || mi.dense[n] == 0 {
			return nil
		}
		return &mi.fields[mi.dense[n]-1]
	}

	i, ok := slices.BinarySearchFunc(mi.fields, n, func(f Field, n FieldNumber) int {
		return int(f.Number) - int(n)
	})
	if !ok {
		return nil
	}
	return &mi.fields[i]
}

// FieldByName returns the field with the given schema name, or nil.
func (mi *MessageInfo) FieldByName(name string) *Field {
	for i := range mi.fields {
		if mi.fields[i].Name == name {
			return &mi.fields[i]
		}
	}
	return nil
}

// String implements [fmt.Stringer].
func (mi *MessageInfo) String() string {
	return mi.name
}

// Clear resets m to the all-defaults state.
//
// Every nested message owned by m is detached and then cleared itself, so
// the whole subtree is released. Generated Clear methods call this function.
func Clear(m Message) {
	for i := range m.MessageInfo().fields {
		m.MessageInfo().fields[i].ops.clear(m)
	}
}

// Ptr is the constraint satisfied by pointers to generated message structs.
type Ptr[T any] interface {
	*T
	Message
}

// Replace stores v into the message slot *slot, taking ownership of it.
//
// The previous occupant of the slot, if any, is detached before v is
// attached and is then cleared, which releases everything it owned in turn.
// v may be nil, which simply empties the slot. Replacing a value with itself
// is a no-op.
//
// v may come from inside the previous occupant, as when a grandchild is
// moved up a level; it is unlinked from there first and survives. If the
// previous occupant is instead inside v, it now belongs to v and is kept.
func Replace[T any, P Ptr[T]](slot *P, v P) {
	old := *slot
	if old == v {
		return
	}
	*slot = nil
	if old != nil {
		if v != nil {
			release(old, v)
		} else {
			release(old)
		}
	}
	*slot = v
}

// newMessage allocates a new message of type P in the all-defaults state.
func newMessage[T any, P Ptr[T]]() P {
	m := P(new(T))
	m.Clear()
	return m
}

// ReplaceList stores v into the repeated message slot *slot, taking ownership
// of its elements.
//
// Elements of the previous list that do not also appear in v are cleared
// once the new list is attached, following the same rules as [Replace].
func ReplaceList[T any, P Ptr[T]](slot *[]P, v []P) {
	old := *slot
	*slot = v
	if len(old) == 0 {
		return
	}

	keep := make(map[P]struct{}, len(v))
	next := make([]Message, 0, len(v))
	for _, x := range v {
		keep[x] = struct{}{}
		if x != nil {
			next = append(next, x)
		}
	}
	for _, x := range old {
		if _, ok := keep[x]; !ok && x != nil {
			release(x, next...)
		}
	}
}

// release clears old, which has just been detached from its parent, unless
// one of next now owns it. Any of next still inside old is unlinked first,
// so that clearing old cannot reach it.
//
// None of next may be a nil pointer.
func release(old Message, next ...Message) {
	for _, v := range next {
		if find(v, old, false) {
			return
		}
	}
	for _, v := range next {
		find(old, v, true)
	}
	old.Clear()
}

// find reports whether v is a descendant of m, unlinking it from its parent
// if unlink is set.
func find(m, v Message, unlink bool) bool {
	fields := m.MessageInfo().fields
	for i := range fields {
		if f := fields[i].ops.find; f != nil && f(m, v, unlink) {
			return true
		}
	}
	return false
}
