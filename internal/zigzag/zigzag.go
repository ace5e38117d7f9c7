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

// Package zigzag provides width-aware zigzag conversions.
//
// The 64-bit helpers in [wire] are only correct for sint32 values if the
// input is first truncated to 32 bits; these helpers take care of that.
package zigzag

import "buf.build/go/protolite/internal/wire"

// Signed is a signed integer type that may be zigzag encoded.
type Signed interface {
	~int32 | ~int64
}

// Encode zigzag-encodes v at the width of T.
func Encode[T Signed](v T) uint64 {
	n := wire.EncodeZigZag(int64(v))
	if isNarrow[T]() {
		n &= 1<<32 - 1
	}
	return n
}

// Decode decodes a zigzag-encoded value at the width of T.
//
// Wire data for a 32-bit field may carry garbage in the upper bits (e.g. when
// a writer sign-extended the value); those bits are discarded.
func Decode[T Signed](raw uint64) T {
	if isNarrow[T]() {
		raw &= 1<<32 - 1
	}
	return T(wire.DecodeZigZag(raw))
}

func isNarrow[T Signed]() bool {
	var probe T = 1 << 30
	probe <<= 2
	return probe == 0
}
