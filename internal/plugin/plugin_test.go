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

package plugin_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"buf.build/go/protolite/internal/codegen"
	"buf.build/go/protolite/internal/plugin"
	"buf.build/go/protolite/internal/prototest"
)

var sources = map[string]string{
	"a.proto": `
		syntax = "proto3";
		package a;
		option go_package = "example.com/a;a";
		message A { int32 x = 1; }
	`,
	"b.proto": `
		syntax = "proto3";
		package b;
		option go_package = "example.com/b;b";
		message B { optional int32 x = 1; }
	`,
	"c.proto": `
		syntax = "proto2";
		package c;
		option go_package = "example.com/c;c";
		import "a.proto";
		message C { optional a.A dep = 1; optional string s = 2 [default = "hi"]; }
	`,
}

func request(t *testing.T, param string, names ...string) *pluginpb.CodeGeneratorRequest {
	t.Helper()
	files := prototest.Compile(t, sources, "a.proto", "b.proto", "c.proto")
	return &pluginpb.CodeGeneratorRequest{
		FileToGenerate: names,
		Parameter:      proto.String(param),
		ProtoFile:      prototest.FileProtos(files),
	}
}

func run(t *testing.T, req *pluginpb.CodeGeneratorRequest) (*pluginpb.CodeGeneratorResponse, string, error) {
	t.Helper()
	logs := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})
	resp, err := plugin.Run(context.Background(), req, logger)
	require.NotNil(t, resp)
	return resp, logs.String(), err
}

func names(resp *pluginpb.CodeGeneratorResponse) []string {
	var out []string
	for _, f := range resp.GetFile() {
		out = append(out, f.GetName())
	}
	return out
}

func TestRun(t *testing.T) {
	t.Parallel()

	resp, logs, err := run(t, request(t, "", "a.proto", "c.proto"))
	require.NoError(t, err)
	assert.Empty(t, resp.GetError())
	assert.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), resp.GetSupportedFeatures())
	assert.Equal(t, []string{"example.com/a/a.pl.go", "example.com/c/c.pl.go"}, names(resp))

	c := resp.GetFile()[1].GetContent()
	assert.True(t, strings.HasPrefix(c, "// Code generated by protoc-gen-protolite. DO NOT EDIT."))
	assert.Contains(t, c, "package c\n")
	assert.Contains(t, c, `"example.com/a"`)
	assert.Contains(t, c, `"buf.build/go/protolite"`)
	assert.Contains(t, c, `"hi"`)

	assert.Contains(t, logs, `"run":`)
	assert.Contains(t, logs, `"msg":"generating"`)
	assert.Contains(t, logs, `"msg":"done"`)
}

func TestRunParallel(t *testing.T) {
	t.Parallel()

	resp, _, err := run(t, request(t, "parallel=4,paths=source_relative", "c.proto", "a.proto"))
	require.NoError(t, err)
	// Output order follows the request, not completion order.
	assert.Equal(t, []string{"c.pl.go", "a.pl.go"}, names(resp))
}

func TestRunPartialFailure(t *testing.T) {
	t.Parallel()

	resp, logs, err := run(t, request(t, "parallel=2", "a.proto", "b.proto", "c.proto"))
	require.Error(t, err)
	assert.ErrorIs(t, err, codegen.ErrUnsupported)

	var genErr *codegen.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "b.proto", genErr.File)

	assert.Equal(t, err.Error(), resp.GetError())
	assert.Equal(t, []string{"example.com/a/a.pl.go", "example.com/c/c.pl.go"}, names(resp),
		"unaffected files are still generated")
	assert.Contains(t, logs, `"file":"b.proto"`)
	assert.Contains(t, logs, "generation failed")
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	resp, _, err := run(t, request(t, "", "nope.proto"))
	require.Error(t, err)
	assert.ErrorIs(t, err, codegen.ErrUnresolvedType)
	assert.Empty(t, resp.GetFile())
}

func TestRunBadOptions(t *testing.T) {
	t.Parallel()

	resp, _, err := run(t, request(t, "frobnicate=1", "a.proto"))
	require.ErrorIs(t, err, plugin.ErrBadOption)
	assert.Contains(t, resp.GetError(), "frobnicate")
	assert.Empty(t, resp.GetFile())
}

func TestRunLogLevel(t *testing.T) {
	t.Parallel()

	_, logs, err := run(t, request(t, "log_level=debug", "a.proto"))
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"generated"`)
	assert.Contains(t, logs, `"output":"example.com/a/a.pl.go"`)

	_, logs, err = run(t, request(t, "log_level=error", "a.proto"))
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	opts, err := plugin.ParseOptions("")
	require.NoError(t, err)
	assert.Equal(t, plugin.DefaultOptions(), opts)

	opts, err = plugin.ParseOptions("runtime=example.com/rt,paths=source_relative,Mfoo.proto=example.com/foo,comments=false,parallel=3,log_level=warn")
	require.NoError(t, err)
	assert.Equal(t, plugin.Options{
		Runtime:   "example.com/rt",
		Paths:     plugin.PathsSourceRelative,
		ImportMap: map[string]string{"foo.proto": "example.com/foo"},
		Comments:  false,
		Parallel:  3,
		LogLevel:  "warn",
	}, opts)

	cg := opts.Codegen(logrus.New())
	assert.Equal(t, "example.com/rt", cg.RuntimeImport)
	assert.True(t, cg.SourceRelative)
	assert.False(t, cg.Comments)
	assert.Equal(t, "example.com/foo", cg.ImportMap["foo.proto"])
}

func TestOptionsClone(t *testing.T) {
	t.Parallel()

	opts, err := plugin.ParseOptions("Mfoo.proto=example.com/foo,parallel=2")
	require.NoError(t, err)

	c, err := opts.Clone()
	require.NoError(t, err)
	assert.Equal(t, opts, c)

	// Writes through the generator's view of a clone stay in that clone.
	c.Codegen(logrus.New()).ImportMap["bar.proto"] = "example.com/bar"
	c.ImportMap["foo.proto"] = "example.com/changed"
	assert.Equal(t, map[string]string{"foo.proto": "example.com/foo"}, opts.ImportMap)
}

func TestParseOptionsErrors(t *testing.T) {
	t.Parallel()

	for _, param := range []string{
		"bogus=1",
		"paths=relative",
		"parallel=0",
		"parallel=many",
		"comments=maybe",
		"runtime=",
		"log_level=loud",
		"Mfoo.proto=",
		"config=does/not/exist.yaml",
	} {
		t.Run(param, func(t *testing.T) {
			t.Parallel()
			_, err := plugin.ParseOptions(param)
			assert.Error(t, err)
		})
	}
}

func TestParseOptionsConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "protolite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
runtime: example.com/from-config
paths: source_relative
parallel: 8
M:
  x.proto: example.com/x
`), 0o600))

	// Parameters override the file, even when they come first.
	opts, err := plugin.ParseOptions("parallel=2,config=" + path)
	require.NoError(t, err)
	assert.Equal(t, "example.com/from-config", opts.Runtime)
	assert.Equal(t, plugin.PathsSourceRelative, opts.Paths)
	assert.Equal(t, 2, opts.Parallel)
	assert.True(t, opts.Comments, "unset keys keep their defaults")
	assert.Equal(t, map[string]string{"x.proto": "example.com/x"}, opts.ImportMap)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: blue\n"), 0o600))
	_, err = plugin.ParseOptions("config=" + bad)
	assert.ErrorIs(t, err, plugin.ErrBadOption)
}
