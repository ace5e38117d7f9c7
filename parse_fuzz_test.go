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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/protolite"
	"buf.build/go/protolite/internal/gen/test"
	"buf.build/go/protolite/internal/testdata"
)

func FuzzScalars(f *testing.F)  { fuzz(f, func() protolite.Message { return test.NewScalars() }) }
func FuzzRepeated(f *testing.F) { fuzz(f, func() protolite.Message { return test.NewRepeated() }) }
func FuzzTree(f *testing.F)     { fuzz(f, func() protolite.Message { return test.NewTree() }) }
func FuzzDefaults(f *testing.F) { fuzz(f, func() protolite.Message { return test.NewDefaults() }) }

// fuzz checks that decoding arbitrary input never panics, and that anything
// that decodes successfully survives a round trip.
func fuzz(f *testing.F, newMessage func() protolite.Message) {
	f.Helper()

	for _, specimen := range testdata.Seeds(f, newMessage().MessageInfo().FullName()) {
		f.Add(specimen)
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		m := newMessage()
		if err := protolite.Unmarshal(b, m); err != nil {
			var de *protolite.DecodeError
			require.ErrorAs(t, err, &de)
			return
		}

		out, err := protolite.Marshal(m)
		require.NoError(t, err)

		m2 := newMessage()
		require.NoError(t, protolite.Unmarshal(out, m2))
		assert.True(t, protolite.Equal(m, m2) || hasNaN(m), "%v\n%v", m, m2)
	})
}

// hasNaN reports whether formatting m shows a NaN, which is never equal to
// itself.
func hasNaN(m protolite.Message) bool {
	return strings.Contains(protolite.Format(m), "NaN")
}
