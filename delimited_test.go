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

package protolite_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/protolite"
	"buf.build/go/protolite/internal/gen/test"
)

func TestDelimited(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	for i := range 3 {
		m := test.NewScalars()
		m.SetI32(int32(i))
		require.NoError(t, protolite.WriteDelimited(buf, m))
	}
	// A message in the all-defaults state is a zero-length record.
	assert.Equal(t, []byte{0x00, 0x02, 0x08, 0x01, 0x02, 0x08, 0x02}, buf.Bytes())

	readers := map[string]func() io.Reader{
		"bufio":    func() io.Reader { return bufio.NewReader(bytes.NewReader(buf.Bytes())) },
		"one-byte": func() io.Reader { return iotest.OneByteReader(bytes.NewReader(buf.Bytes())) },
	}
	for name, newReader := range readers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := newReader()
			for i := range 3 {
				m := test.NewScalars()
				require.NoError(t, protolite.ReadDelimited(r, m))
				assert.Equal(t, int32(i), m.GetI32())
			}
			assert.Equal(t, io.EOF, protolite.ReadDelimited(r, test.NewScalars()))
		})
	}
}

func TestDelimitedErrors(t *testing.T) {
	t.Parallel()

	var de *protolite.DecodeError

	err := protolite.ReadDelimited(bytes.NewReader([]byte{0x05, 0x08}), test.NewScalars())
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, protolite.ErrTruncatedInput)

	err = protolite.ReadDelimited(bytes.NewReader([]byte{0x80}), test.NewScalars())
	assert.ErrorIs(t, err, protolite.ErrTruncatedInput)

	err = protolite.ReadDelimited(bytes.NewReader([]byte{0x02, 0x0a, 0x00}), test.NewScalars())
	assert.ErrorIs(t, err, protolite.ErrWireTypeMismatch)

	err = protolite.ReadDelimited(iotest.ErrReader(io.ErrClosedPipe), test.NewScalars())
	var se *protolite.StreamError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, io.ErrClosedPipe)

	err = protolite.WriteDelimited(failWriter{}, test.NewScalars())
	assert.ErrorAs(t, err, &se)
}

func TestDelimitedMaxSize(t *testing.T) {
	t.Parallel()

	var de *protolite.DecodeError

	// A 256 MiB prefix is rejected before anything is allocated for it.
	huge := []byte{0x80, 0x80, 0x80, 0x80, 0x01}
	err := protolite.ReadDelimited(bytes.NewReader(huge), test.NewScalars())
	require.ErrorAs(t, err, &de)
	assert.ErrorIs(t, err, protolite.ErrInvalidLength)

	// Without a limit, the missing payload is reported as truncation.
	err = protolite.ReadDelimited(bytes.NewReader(huge), test.NewScalars(), protolite.WithMaxSize(-1))
	assert.ErrorIs(t, err, protolite.ErrTruncatedInput)

	m := test.NewScalars()
	m.SetStr("twelve bytes")
	buf := new(bytes.Buffer)
	require.NoError(t, protolite.WriteDelimited(buf, m))
	record := buf.Bytes()
	size := len(record) - 1

	err = protolite.ReadDelimited(bytes.NewReader(record), test.NewScalars(), protolite.WithMaxSize(size-1))
	assert.ErrorIs(t, err, protolite.ErrInvalidLength)

	got := test.NewScalars()
	require.NoError(t, protolite.ReadDelimited(bytes.NewReader(record), got, protolite.WithMaxSize(size)))
	assert.Equal(t, "twelve bytes", got.GetStr())
}
