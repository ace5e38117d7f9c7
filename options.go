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

import "math"

const (
	defaultMaxDepth = 10000
	defaultMaxSize  = 4 << 20
)

// DecodeOption is a configuration setting for [Unmarshal] and [Decode].
type DecodeOption struct{ apply func(*decodeOptions) }

type decodeOptions struct {
	maxDepth         int
	maxSize          int
	allowInvalidUTF8 bool
}

func newDecodeOptions(options []DecodeOption) decodeOptions {
	opts := decodeOptions{maxDepth: defaultMaxDepth, maxSize: defaultMaxSize}
	for _, opt := range options {
		if opt.apply != nil {
			opt.apply(&opts)
		}
	}
	return opts
}

// WithMaxDepth sets the maximum nesting depth of messages while decoding.
// The default is 10000.
//
// Setting a large value enables potential DoS vectors.
func WithMaxDepth(depth int) DecodeOption {
	return DecodeOption{func(opts *decodeOptions) { opts.maxDepth = min(max(depth, 1), math.MaxInt32) }}
}

// WithAllowInvalidUTF8 sets whether string fields are checked for valid
// UTF-8 while decoding. By default they are.
func WithAllowInvalidUTF8(allow bool) DecodeOption {
	return DecodeOption{func(opts *decodeOptions) { opts.allowInvalidUTF8 = allow }}
}

// WithMaxSize sets the largest record [ReadDelimited] accepts, in bytes.
// Longer length prefixes fail with [ErrInvalidLength] before the record is
// read. The default is 4 MiB; a negative size means no limit.
//
// It has no effect on [Unmarshal] and [Decode], whose input size is already
// known to the caller.
func WithMaxSize(size int) DecodeOption {
	return DecodeOption{func(opts *decodeOptions) {
		if size == 0 {
			size = defaultMaxSize
		}
		opts.maxSize = size
	}}
}
