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
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"buf.build/go/protolite/internal/codegen"
	"buf.build/go/protolite/internal/plugin"
	"buf.build/go/protolite/internal/schema"
)

func newDumpCmd(f *flags) *cobra.Command {
	var opts []string
	cmd := &cobra.Command{
		Use:   "dump <file.proto>",
		Short: "`dump` prints the generated-unit model of a .proto file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := f.logger(cmd)
			if err != nil {
				return err
			}
			options, err := plugin.ParseOptions(strings.Join(opts, ","))
			if err != nil {
				return err
			}

			files, err := f.compile(context.Background(), args)
			if err != nil {
				return err
			}
			reg, err := schema.Build(files)
			if err != nil {
				return err
			}
			file := reg.File(args[0])
			if file == nil {
				return fmt.Errorf("%s: not found after compiling", args[0])
			}

			unit, err := codegen.Generate(file, options.Codegen(logger))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(unit)
		},
	}
	cmd.Flags().StringSliceVar(&opts, "opt", nil, "generator options, as key=value")
	return cmd
}
