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

// protoc-gen-protolite is a protoc plugin that generates protolite message
// types.
//
// It reads a CodeGeneratorRequest from stdin and writes a
// CodeGeneratorResponse to stdout. Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"buf.build/go/protolite/internal/plugin"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "protoc-gen-protolite: this program is run by protoc, not directly")
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if err := run(context.Background(), os.Stdin, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("protoc-gen-protolite failed")
		os.Exit(1)
	}
}

// run serves a single plugin request. Generation errors are reported to
// protoc in the response, not returned; only I/O failures are.
func run(ctx context.Context, in io.Reader, out io.Writer, logger *logrus.Logger) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}
	req := new(pluginpb.CodeGeneratorRequest)
	if err := proto.Unmarshal(data, req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	resp, _ := plugin.Run(ctx, req, logger)

	data, err = proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
