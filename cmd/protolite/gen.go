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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"buf.build/go/protolite/internal/plugin"
)

func newGenCmd(f *flags) *cobra.Command {
	var (
		out  string
		opts []string
	)
	cmd := &cobra.Command{
		Use:   "gen <file.proto>...",
		Short: "`gen` compiles .proto files and writes generated Go code",
		Long: "`gen` compiles .proto files and writes generated Go code.\n\n" +
			"Options are the same as the protoc plugin's, e.g. --opt paths=source_relative.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := f.logger(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()
			files, err := f.compile(ctx, args)
			if err != nil {
				return err
			}

			param := strings.Join(opts, ",")
			if !hasOption(opts, "log_level") {
				param = strings.Join(append(opts, "log_level="+f.logLevel), ",")
			}
			resp, err := plugin.Run(ctx, &pluginpb.CodeGeneratorRequest{
				FileToGenerate: args,
				Parameter:      proto.String(param),
				ProtoFile:      files,
			}, logger)

			// Whatever did generate is still written out.
			for _, file := range resp.GetFile() {
				if werr := writeFile(out, file); werr != nil {
					return werr
				}
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(out, file.GetName()))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().StringSliceVar(&opts, "opt", nil, "generator options, as key=value")
	return cmd
}

func hasOption(opts []string, key string) bool {
	for _, opt := range opts {
		if k, _, _ := strings.Cut(opt, "="); k == key {
			return true
		}
	}
	return false
}

func writeFile(dir string, file *pluginpb.CodeGeneratorResponse_File) error {
	path := filepath.Join(dir, filepath.FromSlash(file.GetName()))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(file.GetContent()), 0o644)
}
