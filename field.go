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
	"buf.build/go/protolite/internal/wire"
)

// Field is one entry in a [MessageInfo] field table.
//
// Fields are constructed by generated code using [ScalarField],
// [MessageField] and friends, which bind a field's wire behavior to an
// accessor for its storage slot.
type Field struct {
	Number   FieldNumber
	Name     string
	Kind     Kind
	Repeated bool

	// Packed is set for repeated fields that are encoded as a single
	// length-delimited block.
	Packed bool

	// Enum is set for enum-typed fields.
	Enum *EnumTable

	fullName string
	ops      fieldOps
}

// FullName returns the fully-qualified name of the field.
func (f *Field) FullName() string {
	return f.fullName
}

// Has reports whether the field is present in m, i.e. whether it will be
// written when m is encoded.
func (f *Field) Has(m Message) bool {
	return f.ops.present(m)
}

// ClearIn resets the field in m to its default, releasing any nested
// messages it held.
func (f *Field) ClearIn(m Message) {
	f.ops.clear(m)
}

// fieldOps are the type-erased operations for a field. Each closure casts
// the message to the concrete generated type it was built for.
type fieldOps struct {
	// present reports whether the field will be encoded.
	present func(m Message) bool
	// size returns the encoded size of the field, including tags.
	size func(m Message, e *encoder) int
	// append encodes the field, including tags. Only called if present.
	append func(b []byte, m Message, e *encoder) []byte
	// consume decodes one occurrence of the field whose tag has already been
	// read; the value starts at pos. Returns the offset after the value.
	consume func(d *decoder, m Message, typ WireType, pos, end int) (int, error)
	// clear resets the field to its default.
	clear func(m Message)
	// equal compares the field across two messages of the same type.
	equal func(a, b Message) bool
	// copy deep-copies the field from src into dst, which is freshly cleared.
	copy func(dst, src Message)
	// format renders the field in text form. Only called if present.
	format func(p *printer, f *Field, m Message)
	// find reports whether v is held by the field, directly or further down.
	// If unlink is set, v is also removed from the slot that held it. Only
	// set for message fields.
	find func(m, v Message, unlink bool) bool
}

// tag is a precomputed field tag.
type tag struct {
	bytes []byte
}

func newTag(num FieldNumber, typ WireType) tag {
	return tag{wire.AppendTag(nil, num, typ)}
}

func (t tag) size() int              { return len(t.bytes) }
func (t tag) append(b []byte) []byte { return append(b, t.bytes...) }
