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
	"fmt"

	"buf.build/go/protolite/internal/wire"
)

// Errors that a [DecodeError] may wrap. Test for them with [errors.Is].
var (
	// ErrTruncatedInput means the input ended in the middle of a value, or a
	// length prefix claimed more bytes than were available.
	ErrTruncatedInput = wire.ErrTruncated
	// ErrVarintTooLong means a varint did not terminate within ten bytes.
	ErrVarintTooLong = wire.ErrTooLong
	// ErrInvalidLength means a length prefix was out of range, or a packed
	// block did not contain a whole number of elements.
	ErrInvalidLength = wire.ErrLength
	// ErrWireTypeMismatch means a tag's wire type was unusable: either it does
	// not match the declared type of a known field, or it cannot be skipped.
	ErrWireTypeMismatch = wire.ErrWireType
	// ErrInvalidFieldNumber means a tag carried field number zero or a number
	// larger than the maximum.
	ErrInvalidFieldNumber = wire.ErrFieldNumber
	// ErrRecursionDepth means messages were nested more deeply than allowed
	// by [WithMaxDepth].
	ErrRecursionDepth = errors.New("recursion depth exceeded")
	// ErrInvalidUTF8 means a string field contained invalid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in string")
)

// DecodeError is returned when decoding fails because of malformed input.
type DecodeError struct {
	err    error
	offset int
	field  string
}

// Offset returns the offset into the input at which the error occurred.
func (e *DecodeError) Offset() int {
	return e.offset
}

// Field returns the full name of the field being decoded when the error
// occurred, if there was one.
func (e *DecodeError) Field() string {
	return e.field
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *DecodeError) Unwrap() error {
	return e.err
}

// Error implements [error].
func (e *DecodeError) Error() string {
	if e.field != "" {
		return fmt.Sprintf("protolite: decode error at offset %d/%#x in %s: %v", e.offset, e.offset, e.field, e.err)
	}
	return fmt.Sprintf("protolite: decode error at offset %d/%#x: %v", e.offset, e.offset, e.err)
}

// StreamError is returned when the reader or writer passed to [Decode] or
// [Encode] fails. It is never a [DecodeError].
type StreamError struct {
	Op  string // "read" or "write"
	Err error
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *StreamError) Unwrap() error {
	return e.Err
}

// Error implements [error].
func (e *StreamError) Error() string {
	return fmt.Sprintf("protolite: %s failed: %v", e.Op, e.Err)
}
