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

// Package prototest contains helpers shared by protolite's tests: compiling
// schemas in memory, building wire bytes from protoscope text, and comparing
// reflective messages.
package prototest

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/linker"
	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Compile compiles the named files out of an in-memory set of sources.
func Compile(t testing.TB, sources map[string]string, names ...string) linker.Files {
	t.Helper()
	files, err := compile(protocompile.SourceAccessorFromMap(sources), names)
	require.NoError(t, err)
	return files
}

// CompileFS compiles the named files out of fsys.
func CompileFS(t testing.TB, fsys fs.FS, names ...string) linker.Files {
	t.Helper()
	files, err := CompileFiles(fsys, names...)
	require.NoError(t, err)
	return files
}

// CompileFiles is like [CompileFS], but returns an error instead of failing
// a test.
func CompileFiles(fsys fs.FS, names ...string) (linker.Files, error) {
	return compile(func(path string) (io.ReadCloser, error) { return fsys.Open(path) }, names)
}

func compile(accessor func(string) (io.ReadCloser, error), names []string) (linker.Files, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: accessor,
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	return compiler.Compile(context.Background(), names...)
}

// FileProtos converts compiled files to descriptor protos, including all of
// their transitive imports. Every file appears after its dependencies.
func FileProtos(files linker.Files) []*descriptorpb.FileDescriptorProto {
	var out []*descriptorpb.FileDescriptorProto
	seen := make(map[string]bool)

	var visit func(protoreflect.FileDescriptor)
	visit = func(fd protoreflect.FileDescriptor) {
		if seen[fd.Path()] {
			return
		}
		seen[fd.Path()] = true
		imports := fd.Imports()
		for i := range imports.Len() {
			visit(imports.Get(i).FileDescriptor)
		}
		out = append(out, protodesc.ToFileDescriptorProto(fd))
	}

	for _, f := range files {
		visit(f)
	}
	return out
}

// FindMessage returns a dynamic message type for the named message, which
// must be declared in one of files.
func FindMessage(t testing.TB, files linker.Files, name string) protoreflect.MessageType {
	t.Helper()

	var find func(protoreflect.MessageDescriptors) protoreflect.MessageDescriptor
	find = func(mds protoreflect.MessageDescriptors) protoreflect.MessageDescriptor {
		for i := range mds.Len() {
			md := mds.Get(i)
			if string(md.FullName()) == name {
				return md
			}
			if md := find(md.Messages()); md != nil {
				return md
			}
		}
		return nil
	}

	for _, f := range files {
		if md := find(f.Messages()); md != nil {
			return dynamicpb.NewMessageType(md)
		}
	}
	require.Failf(t, "message not found", "no message named %q", name)
	return nil
}

// Wire assembles protoscope text into bytes.
func Wire(t testing.TB, text string) []byte {
	t.Helper()
	b, err := protoscope.NewScanner(text).Exec()
	require.NoError(t, err, "protoscope: %s", text)
	return b
}

// EqualWire asserts that two encodings are byte-identical, printing both as
// protoscope text on failure.
func EqualWire(t testing.TB, want, got []byte, msgAndArgs ...any) bool {
	t.Helper()
	if assert.Equal(t, want, got, msgAndArgs...) {
		return true
	}
	t.Logf("want:\n%s", disassemble(want))
	t.Logf("got:\n%s", disassemble(got))
	return false
}

func disassemble(b []byte) string {
	return strings.TrimSpace(protoscope.Write(b, protoscope.WriterOptions{}))
}
