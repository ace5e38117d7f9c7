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

	"buf.build/go/protolite/internal/wire"
)

// WriteDelimited writes m to w prefixed with its length as a varint, so
// that several messages can share one stream.
func WriteDelimited(w io.Writer, m Message) error {
	b := wire.AppendVarint(nil, uint64(Size(m)))
	b, err := Append(b, m)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	return nil
}

// ReadDelimited reads a single length-prefixed message written by
// [WriteDelimited] and merges it into m.
//
// If r is an [io.ByteReader], such as a [bufio.Reader], nothing past the
// end of the message is consumed. Otherwise, r is read one byte at a time
// while parsing the prefix.
//
// Records longer than the limit set by [WithMaxSize] are rejected with
// [ErrInvalidLength]. Returns [io.EOF], unwrapped, if r is exhausted before
// the first byte.
func ReadDelimited(r io.Reader, m Message, options ...DecodeOption) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = byteReader{r}
	}

	b, err := wire.ReadBytes(br, r, newDecodeOptions(options).maxSize)
	switch {
	case err == nil:
		return Unmarshal(b, m, options...)
	case err == io.EOF:
		return io.EOF
	case errors.Is(err, ErrTruncatedInput), errors.Is(err, ErrVarintTooLong), errors.Is(err, ErrInvalidLength):
		return &DecodeError{err: err}
	default:
		return &StreamError{Op: "read", Err: err}
	}
}

type byteReader struct{ r io.Reader }

func (br byteReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(br.r, b[:])
	return b[0], err
}
