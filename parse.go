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
	"errors"
	"io"

	"buf.build/go/protolite/internal/debug"
	"buf.build/go/protolite/internal/wire"
)

// Unmarshal merges the wire encoding in b into m.
//
// Unmarshal does not clear m first; see the package documentation for the
// merge rules. The decoded message never aliases b.
//
// Malformed input is reported as a [*DecodeError], after which m must be
// discarded.
func Unmarshal(b []byte, m Message, options ...DecodeOption) error {
	d := &decoder{
		decodeOptions: newDecodeOptions(options),
		buf:           b,
	}
	return d.message(m, 0, len(b))
}

// Decode reads r to completion and merges the wire encoding it contains
// into m, exactly like [Unmarshal].
//
// Read failures are reported as a [*StreamError].
func Decode(r io.Reader, m Message, options ...DecodeOption) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return &StreamError{Op: "read", Err: err}
	}
	return Unmarshal(b, m, options...)
}

// decoder holds state for a single decoding operation.
type decoder struct {
	decodeOptions
	buf   []byte
	depth int
}

// fail constructs a decode error at the given offset.
func (d *decoder) fail(err error, offset int) error {
	return &DecodeError{err: err, offset: offset}
}

// message decodes d.buf[pos:end] into m.
func (d *decoder) message(m Message, pos, end int) error {
	if d.depth >= d.maxDepth {
		return d.fail(ErrRecursionDepth, pos)
	}
	d.depth++
	defer func() { d.depth-- }()

	info := m.MessageInfo()
	if debug.Enabled {
		debug.Log(nil, "message", "%s [%d:%d]", info, pos, end)
	}

	for pos < end {
		num, typ, n := wire.ConsumeTag(d.buf[pos:end])
		if n < 0 {
			return d.fail(wire.ParseError(n), pos)
		}
		pos += n

		f := info.FieldByNumber(num)
		if f == nil {
			n := wire.ConsumeFieldValue(typ, d.buf[pos:end])
			if n < 0 {
				return d.fail(wire.ParseError(n), pos)
			}
			if debug.Enabled {
				debug.Log(nil, "skip", "%s: unknown field %d (%v), %d bytes", info, num, typ, n)
			}
			pos += n
			continue
		}

		next, err := f.ops.consume(d, m, typ, pos, end)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) && de.field == "" {
				de.field = f.fullName
			}
			return err
		}
		pos = next
	}

	return nil
}

// delimited parses a length prefix at pos and returns the bounds of the
// payload that follows it.
func (d *decoder) delimited(pos, end int) (start, stop int, err error) {
	l, n := wire.ConsumeVarint(d.buf[pos:end])
	if n < 0 {
		return 0, 0, d.fail(wire.ParseError(n), pos)
	}
	start = pos + n
	if l > uint64(end-start) {
		if l > 1<<31-1 {
			return 0, 0, d.fail(ErrInvalidLength, pos)
		}
		return 0, 0, d.fail(ErrTruncatedInput, pos)
	}
	return start, start + int(l), nil
}

// mismatch reports a known field whose tag carried the wrong wire type.
func (d *decoder) mismatch(pos int) error {
	return d.fail(ErrWireTypeMismatch, pos)
}
