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

// Package wire implements the primitives of the Protobuf binary wire format:
// varints, zigzag, fixed-width integers, length-delimited values and tags.
//
// The encoding half is a thin layer over [protowire]. The decoding half is
// implemented here, because the error classification required by protolite
// (truncation vs. overlong varints vs. bad wire types) is finer than what
// [protowire.ParseError] exposes.
//
// Like protowire, the Consume* functions return a negative length on error;
// pass it to [ParseError] to obtain the error value.
package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Number is a field number.
type Number int32

const (
	MinValidNumber      Number = 1
	FirstReservedNumber Number = 19000
	LastReservedNumber  Number = 19999
	MaxValidNumber      Number = 1<<29 - 1
)

// IsValid reports whether n may appear on the wire.
func (n Number) IsValid() bool {
	return MinValidNumber <= n && n <= MaxValidNumber
}

// IsReserved reports whether n is in the range reserved for the Protobuf
// implementation. Such numbers may still appear on the wire.
func (n Number) IsReserved() bool {
	return FirstReservedNumber <= n && n <= LastReservedNumber
}

// Type is a wire type: the low three bits of a tag.
type Type int8

const (
	VarintType     Type = 0
	Fixed64Type    Type = 1
	BytesType      Type = 2
	StartGroupType Type = 3
	EndGroupType   Type = 4
	Fixed32Type    Type = 5
)

// String implements [fmt.Stringer].
func (t Type) String() string {
	switch t {
	case VarintType:
		return "varint"
	case Fixed64Type:
		return "fixed64"
	case BytesType:
		return "bytes"
	case StartGroupType:
		return "sgroup"
	case EndGroupType:
		return "egroup"
	case Fixed32Type:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", int8(t))
	}
}

// MaxVarintLen is the largest number of bytes a varint may occupy.
const MaxVarintLen = 10

const (
	errCodeTruncated = -(iota + 1)
	errCodeTooLong
	errCodeLength
	errCodeWireType
	errCodeFieldNumber
)

var (
	ErrTruncated   = io.ErrUnexpectedEOF
	ErrTooLong     = errors.New("variable length integer is too long")
	ErrLength      = errors.New("invalid length prefix")
	ErrWireType    = errors.New("cannot skip value of this wire type")
	ErrFieldNumber = errors.New("invalid field number")
)

var errs = [...]error{
	-errCodeTruncated:   ErrTruncated,
	-errCodeTooLong:     ErrTooLong,
	-errCodeLength:      ErrLength,
	-errCodeWireType:    ErrWireType,
	-errCodeFieldNumber: ErrFieldNumber,
}

// ParseError converts a negative length returned by a Consume function into
// an error. Returns nil for non-negative n.
func ParseError(n int) error {
	if n >= 0 {
		return nil
	}
	if -n >= len(errs) || errs[-n] == nil {
		return errors.New("wire: unknown parse error")
	}
	return errs[-n]
}

// AppendVarint appends v as a base-128 varint.
func AppendVarint(b []byte, v uint64) []byte {
	return protowire.AppendVarint(b, v)
}

// EncodeVarint returns v as a base-128 varint.
func EncodeVarint(v uint64) []byte {
	return AppendVarint(make([]byte, 0, SizeVarint(v)), v)
}

// SizeVarint returns the encoded size of v.
func SizeVarint(v uint64) int {
	return protowire.SizeVarint(v)
}

// ConsumeVarint parses a varint from the front of b, returning the value and
// the number of bytes consumed.
//
// More than ten groups, or a tenth group that would overflow 64 bits, is
// reported as ErrTooLong.
func ConsumeVarint(b []byte) (uint64, int) {
	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		if i >= len(b) {
			return 0, errCodeTruncated
		}
		c := b[i]
		if i == MaxVarintLen-1 && c > 1 {
			return 0, errCodeTooLong
		}
		v |= uint64(c&0x7f) << (7 * i)
		if c < 0x80 {
			return v, i + 1
		}
	}
	return 0, errCodeTooLong
}

// DecodeVarint reads a varint from r.
//
// If r is exhausted before the first byte, the error is [io.EOF]; if it is
// exhausted part-way through, the error is [ErrTruncated].
func DecodeVarint(r io.ByteReader) (uint64, error) {
	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && i > 0 {
				return 0, ErrTruncated
			}
			return 0, err
		}
		if i == MaxVarintLen-1 && c > 1 {
			return 0, ErrTooLong
		}
		v |= uint64(c&0x7f) << (7 * i)
		if c < 0x80 {
			return v, nil
		}
	}
	return 0, ErrTooLong
}

// EncodeZigZag maps a signed integer onto an unsigned one so that values of
// small magnitude have small encodings.
func EncodeZigZag(v int64) uint64 {
	return protowire.EncodeZigZag(v)
}

// DecodeZigZag inverts [EncodeZigZag].
func DecodeZigZag(v uint64) int64 {
	return protowire.DecodeZigZag(v)
}

// AppendFixed32 appends v as four little-endian bytes.
func AppendFixed32(b []byte, v uint32) []byte {
	return protowire.AppendFixed32(b, v)
}

// ConsumeFixed32 parses four little-endian bytes from the front of b.
func ConsumeFixed32(b []byte) (uint32, int) {
	if len(b) < 4 {
		return 0, errCodeTruncated
	}
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return v, 4
}

// AppendFixed64 appends v as eight little-endian bytes.
func AppendFixed64(b []byte, v uint64) []byte {
	return protowire.AppendFixed64(b, v)
}

// ConsumeFixed64 parses eight little-endian bytes from the front of b.
func ConsumeFixed64(b []byte) (uint64, int) {
	if len(b) < 8 {
		return 0, errCodeTruncated
	}
	lo, _ := ConsumeFixed32(b)
	hi, _ := ConsumeFixed32(b[4:])
	return uint64(lo) | uint64(hi)<<32, 8
}

// AppendBytes appends v with a varint length prefix.
func AppendBytes(b []byte, v []byte) []byte {
	return append(AppendVarint(b, uint64(len(v))), v...)
}

// AppendString appends v with a varint length prefix.
func AppendString(b []byte, v string) []byte {
	return append(AppendVarint(b, uint64(len(v))), v...)
}

// SizeBytes returns the encoded size of a length-delimited value whose
// payload is n bytes long.
func SizeBytes(n int) int {
	return SizeVarint(uint64(n)) + n
}

// ConsumeBytes parses a length-delimited value from the front of b. The
// returned slice aliases b.
func ConsumeBytes(b []byte) ([]byte, int) {
	l, n := ConsumeVarint(b)
	if n < 0 {
		return nil, n
	}
	if l > math.MaxInt32 {
		return nil, errCodeLength
	}
	if uint64(len(b)-n) < l {
		return nil, errCodeTruncated
	}
	return b[n : n+int(l)], n + int(l)
}

// ReadBytes reads a length-delimited value from a stream. br and r must
// refer to the same underlying stream, as with a [bufio.Reader].
//
// A length prefix larger than limit is rejected with [ErrLength] before any
// of the payload is read; a negative limit means no limit beyond the format's
// own. Large payloads are read incrementally, so a prefix alone cannot force
// a large allocation.
func ReadBytes(br io.ByteReader, r io.Reader, limit int) ([]byte, error) {
	l, err := DecodeVarint(br)
	if err != nil {
		return nil, err
	}
	if l > math.MaxInt32 || (limit >= 0 && l > uint64(limit)) {
		return nil, ErrLength
	}

	if l <= readChunk {
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				err = ErrTruncated
			}
			return nil, err
		}
		return buf, nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, readChunk))
	n, err := buf.ReadFrom(io.LimitReader(r, int64(l)))
	if err != nil {
		return nil, err
	}
	if uint64(n) < l {
		return nil, ErrTruncated
	}
	return buf.Bytes(), nil
}

// readChunk is the largest payload [ReadBytes] allocates up front.
const readChunk = 64 << 10

// EncodeTag builds a tag from a field number and wire type.
func EncodeTag(num Number, typ Type) uint64 {
	return uint64(num)<<3 | uint64(typ&7)
}

// DecodeTag splits a tag into its field number and wire type. The number is
// not validated.
func DecodeTag(tag uint64) (Number, Type) {
	if tag>>3 > math.MaxInt32 {
		return -1, 0
	}
	return Number(tag >> 3), Type(tag & 7)
}

// AppendTag appends a tag.
func AppendTag(b []byte, num Number, typ Type) []byte {
	return AppendVarint(b, EncodeTag(num, typ))
}

// SizeTag returns the encoded size of a tag for the given field number.
func SizeTag(num Number) int {
	return SizeVarint(EncodeTag(num, 0))
}

// ConsumeTag parses a tag from the front of b, rejecting field numbers
// outside of the valid range.
func ConsumeTag(b []byte) (Number, Type, int) {
	v, n := ConsumeVarint(b)
	if n < 0 {
		return 0, 0, n
	}
	num, typ := DecodeTag(v)
	if !num.IsValid() {
		return 0, 0, errCodeFieldNumber
	}
	return num, typ, n
}

// ConsumeFieldValue returns the length of the value at the front of b, which
// was introduced by a tag of the given type. It is used to skip fields that
// the reader does not know about.
//
// Groups cannot be skipped: protolite does not support them, and their
// extent cannot be determined from the tag alone.
func ConsumeFieldValue(typ Type, b []byte) int {
	switch typ {
	case VarintType:
		_, n := ConsumeVarint(b)
		return n
	case Fixed32Type:
		_, n := ConsumeFixed32(b)
		return n
	case Fixed64Type:
		_, n := ConsumeFixed64(b)
		return n
	case BytesType:
		_, n := ConsumeBytes(b)
		return n
	default:
		return errCodeWireType
	}
}
