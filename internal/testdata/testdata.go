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

// Package testdata is the wire-format test corpus for protolite.
//
// Each YAML file in this directory describes one or more specimens of the
// encoding of a message type from internal/gen/test, along with what decoding
// them should produce.
package testdata

//go:generate go run ./gen

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bufbuild/protocompile/linker"
	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"gopkg.in/yaml.v3"

	"buf.build/go/protolite"
	"buf.build/go/protolite/internal/debug"
	"buf.build/go/protolite/internal/gen/test"
	"buf.build/go/protolite/internal/prototest"
)

//go:embed *.yaml
var testdata embed.FS

// Harness is a generalization of [testing.TB] that also includes the
// [testing.T.Run] method. It must be generic because the signature of this
// function varies across [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// Types maps the full name of every generated test message to its
// constructor.
var Types = func() map[string]func() protolite.Message {
	types := make(map[string]func() protolite.Message)
	for _, m := range []protolite.Message{
		test.NewScalars(),
		test.NewRepeated(),
		test.NewTree(),
		test.NewTree_Leaf(),
		test.NewTree_CountsEntry(),
		test.NewDefaults(),
	} {
		types[m.MessageInfo().FullName()] = m.MessageInfo().New
	}
	return types
}()

// Errors maps the names used by the error key of a test case to the error
// that decoding is expected to produce.
var Errors = map[string]error{
	"truncated":       protolite.ErrTruncatedInput,
	"varint_too_long": protolite.ErrVarintTooLong,
	"invalid_length":  protolite.ErrInvalidLength,
	"wire_type":       protolite.ErrWireTypeMismatch,
	"field_number":    protolite.ErrInvalidFieldNumber,
	"depth":           protolite.ErrRecursionDepth,
	"utf8":            protolite.ErrInvalidUTF8,
}

var schema = sync.OnceValues(func() (linker.Files, error) {
	return prototest.CompileFiles(test.Protos, "test.proto", "defaults.proto")
})

// TestCase is a test case from the corpus.
type TestCase struct {
	Name string `yaml:"-"`

	TypeName string                   `yaml:"type"`
	New      func() protolite.Message `yaml:"-"`

	// Reflective type of the message, used to cross-check protolite against
	// the reference implementation.
	Reflect protoreflect.MessageType `yaml:"-"`

	// If set, run this test as a benchmark.
	Benchmark bool `yaml:"benchmark"`

	// Two ways to encode the test: hex and protoscope.
	Hex        []string `yaml:"hex"`
	Protoscope []string `yaml:"protoscope"`

	// The expected output of protolite.Format, if set.
	Text *string `yaml:"text"`
	// The expected decode error, as a key of [Errors].
	Error string `yaml:"error"`
	// Whether re-encoding must reproduce the specimen exactly.
	Canonical bool `yaml:"canonical"`
	// Disables the cross-check against the reference implementation.
	SkipInterop bool `yaml:"skip_interop"`
	// Decoding options.
	MaxDepth int `yaml:"max_depth"`

	Specimens [][]byte `yaml:"-"`
}

// RunAll runs all of the test cases against the given harness.
func RunAll[T Harness[T]](t T, f func(T, *TestCase)) {
	t.Helper()

	err := fs.WalkDir(testdata, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", path)

		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimSuffix(path, ".yaml"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}

			data, err := fs.ReadFile(testdata, path)
			require.NoError(t, err, "loading test %q", path)

			test := parseTestCase(t, path, data)
			if test != nil {
				f(t, test)
			}
		})

		return nil
	})
	require.NoError(t, err)
}

// Seeds returns every specimen in the corpus for the named type, for use as
// fuzzing seeds.
func Seeds(t testing.TB, typeName string) [][]byte {
	t.Helper()

	var seeds [][]byte
	err := fs.WalkDir(testdata, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".yaml" {
			return err
		}
		data, err := fs.ReadFile(testdata, path)
		if err != nil {
			return err
		}
		if test := parseTestCase(t, path, data); test.TypeName == typeName {
			seeds = append(seeds, test.Specimens...)
		}
		return nil
	})
	require.NoError(t, err)
	return seeds
}

// Options returns the decode options for this test.
func (test *TestCase) Options() []protolite.DecodeOption {
	var opts []protolite.DecodeOption
	if test.MaxDepth > 0 {
		opts = append(opts, protolite.WithMaxDepth(test.MaxDepth))
	}
	return opts
}

// Run executes a single test case.
func (test *TestCase) Run(t *testing.T) {
	t.Helper()

	run := func(t *testing.T, specimen []byte) {
		t.Helper()
		defer debug.WithTesting(t)()

		m := test.New()
		err := protolite.Unmarshal(specimen, m, test.Options()...)

		if test.Error != "" {
			want, ok := Errors[test.Error]
			require.True(t, ok, "unknown error name %q", test.Error)
			require.ErrorIs(t, err, want)

			var de *protolite.DecodeError
			require.ErrorAs(t, err, &de)
			assert.LessOrEqual(t, de.Offset(), len(specimen))
			return
		}
		require.NoError(t, err)

		if test.Text != nil {
			assert.Equal(t, *test.Text, protolite.Format(m))
		}

		out, err := protolite.Marshal(m)
		require.NoError(t, err)
		assert.Len(t, out, protolite.Size(m))
		if test.Canonical {
			prototest.EqualWire(t, specimen, out)
		}

		// Decoding our own output must produce the same message.
		m2 := test.New()
		require.NoError(t, protolite.Unmarshal(out, m2))
		assert.True(t, protolite.Equal(m, m2), "round trip:\n%v\n%v", m, m2)

		if test.SkipInterop {
			return
		}

		// The reference implementation must see the same message in the
		// specimen and in our re-encoding of it.
		want := test.Reflect.New().Interface()
		require.NoError(t, proto.Unmarshal(specimen, want))
		got := test.Reflect.New().Interface()
		require.NoError(t, proto.Unmarshal(out, got))
		prototest.Equal(t, want.ProtoReflect(), got.ProtoReflect())

		// And we must be able to read what it writes.
		ref, err := proto.MarshalOptions{Deterministic: true}.Marshal(want)
		require.NoError(t, err)
		m3 := test.New()
		require.NoError(t, protolite.Unmarshal(ref, m3))
		assert.True(t, protolite.Equal(m, m3), "reference encoding:\n%v\n%v", m, m3)
	}

	if len(test.Specimens) == 1 {
		run(t, test.Specimens[0])
		return
	}

	for _, specimen := range test.Specimens {
		t.Run("", func(t *testing.T) {
			t.Parallel()
			run(t, specimen)
		})
	}
}

// parseTestCase parses a single test case from the given data.
//
// This will call t.FailNow() if loading fails.
func parseTestCase(t testing.TB, path string, file []byte) *TestCase {
	t.Helper()
	defer debug.WithTesting(t)()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	test := new(TestCase)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	err := dec.Decode(&test)
	require.NoError(t, err, "loading test %q", path)

	_, isBench := t.(*testing.B)
	if isBench && !test.Benchmark {
		t.SkipNow()
	}

	test.Name = strings.TrimSuffix(path, ".yaml")

	var ok bool
	test.New, ok = Types[test.TypeName]
	require.True(t, ok, "loading type %q", test.TypeName)

	files, err := schema()
	require.NoError(t, err, "compiling test schemas")
	test.Reflect = prototest.FindMessage(t, files, test.TypeName)

	for _, raw := range test.Hex {
		r := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
		b, err := hex.DecodeString(r.Replace(raw))
		require.NoError(t, err, "loading test %q", path)

		test.Specimens = append(test.Specimens, b)
	}

	for _, raw := range test.Protoscope {
		s := protoscope.NewScanner(raw)
		b, err := s.Exec()
		require.NoError(t, err, "loading test %q", path)

		test.Specimens = append(test.Specimens, b)
	}

	require.NotEmpty(t, test.Specimens, "test %q has no specimens", path)
	return test
}
