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

package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"buf.build/go/protolite/internal/prototest"
)

func TestRun(t *testing.T) {
	t.Parallel()

	files := prototest.Compile(t, map[string]string{
		"x.proto": `syntax = "proto3"; package x; message X { string s = 1; }`,
	}, "x.proto")
	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"x.proto"},
		Parameter:      proto.String("paths=source_relative"),
		ProtoFile:      prototest.FileProtos(files),
	}
	in, err := proto.Marshal(req)
	require.NoError(t, err)

	logs := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(logs)

	out := new(bytes.Buffer)
	require.NoError(t, run(context.Background(), bytes.NewReader(in), out, logger))

	resp := new(pluginpb.CodeGeneratorResponse)
	require.NoError(t, proto.Unmarshal(out.Bytes(), resp))
	assert.Empty(t, resp.GetError())
	require.Len(t, resp.GetFile(), 1)
	assert.Equal(t, "x.pl.go", resp.GetFile()[0].GetName())
	assert.Contains(t, resp.GetFile()[0].GetContent(), "type X struct")
	assert.Contains(t, logs.String(), "generating")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(context.Background(), strings.NewReader("\xff"), io.Discard, logger)
	assert.ErrorContains(t, err, "parsing request")

	// Bad options are reported to protoc, not to the caller.
	in, err := proto.Marshal(&pluginpb.CodeGeneratorRequest{Parameter: proto.String("nope=1")})
	require.NoError(t, err)
	out := new(bytes.Buffer)
	require.NoError(t, run(context.Background(), bytes.NewReader(in), out, logger))

	resp := new(pluginpb.CodeGeneratorResponse)
	require.NoError(t, proto.Unmarshal(out.Bytes(), resp))
	assert.Contains(t, resp.GetError(), "nope")
}
