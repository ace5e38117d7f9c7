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
	"io"

	"buf.build/go/protolite/internal/debug"
)

// encoder holds state for a single encoding operation.
type encoder struct {
	// sizes caches the payload size of every nested message, so that each
	// length prefix is computed once even for deeply nested trees.
	sizes map[Message]int
}

// messageSize returns the encoded size of m, without a length prefix.
func (e *encoder) messageSize(m Message) int {
	if n, ok := e.sizes[m]; ok {
		return n
	}

	var n int
	fields := m.MessageInfo().fields
	for i := range fields {
		if fields[i].ops.present(m) {
			n += fields[i].ops.size(m, e)
		}
	}

	if e.sizes == nil {
		e.sizes = make(map[Message]int)
	}
	e.sizes[m] = n
	return n
}

// appendMessage appends the encoding of m, without a length prefix.
//
// Fields are written in ascending field number order; absent fields are not
// written at all.
func (e *encoder) appendMessage(b []byte, m Message) []byte {
	fields := m.MessageInfo().fields
	for i := range fields {
		if fields[i].ops.present(m) {
			b = fields[i].ops.append(b, m, e)
		}
	}
	return b
}

// Size returns the size of the wire encoding of m.
func Size(m Message) int {
	if m == nil {
		return 0
	}
	return new(encoder).messageSize(m)
}

// Marshal returns the wire encoding of m.
//
// A message in the all-defaults state encodes to zero bytes. The result is
// never nil unless there is an error.
func Marshal(m Message) ([]byte, error) {
	b, err := Append(nil, m)
	if b == nil && err == nil {
		b = []byte{}
	}
	return b, err
}

// Append appends the wire encoding of m to b.
func Append(b []byte, m Message) ([]byte, error) {
	if m == nil {
		return b, nil
	}

	e := new(encoder)
	n := e.messageSize(m)
	b = growCap(b, n)

	start := len(b)
	b = e.appendMessage(b, m)
	debug.Assert(len(b)-start == n, "%s: encoded %d bytes, expected %d", m.MessageInfo(), len(b)-start, n)

	return b, nil
}

// Encode writes the wire encoding of m to w.
//
// Write failures are reported as a [*StreamError].
func Encode(w io.Writer, m Message) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	return nil
}

// growCap ensures b has room for n more bytes.
func growCap(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	c := make([]byte, len(b), len(b)+n)
	copy(c, b)
	return c
}
