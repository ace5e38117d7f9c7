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

// Package plugin drives the code generator as a protoc plugin: it reads a
// CodeGeneratorRequest, generates every requested file in isolation, and
// builds the CodeGeneratorResponse.
package plugin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"buf.build/go/protolite/internal/codegen"
	"buf.build/go/protolite/internal/emit"
	"buf.build/go/protolite/internal/schema"
)

// Run generates code for every file in req.FileToGenerate.
//
// A file that fails to generate does not stop the others. Its error is
// reported in the response's error field, joined with any others, and no
// output is produced for it. The returned error is the same one, for the
// caller's logs; the response is always usable.
func Run(ctx context.Context, req *pluginpb.CodeGeneratorRequest, logger *logrus.Logger) (*pluginpb.CodeGeneratorResponse, error) {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	fail := func(err error) (*pluginpb.CodeGeneratorResponse, error) {
		resp.Error = proto.String(err.Error())
		return resp, err
	}

	opts, err := ParseOptions(req.GetParameter())
	if err != nil {
		return fail(err)
	}
	level, _ := logrus.ParseLevel(opts.LogLevel)
	logger.SetLevel(level)

	log := logger.WithField("run", uuid.NewString())
	log.WithFields(logrus.Fields{
		"files":    len(req.GetFileToGenerate()),
		"runtime":  opts.Runtime,
		"parallel": opts.Parallel,
	}).Info("generating")

	reg, err := schema.Build(req.GetProtoFile())
	if reg == nil {
		return fail(err)
	}
	if err != nil {
		// Reported again, per file, by the code generator.
		log.WithError(err).Debug("unresolved types")
	}

	files, errs := generate(ctx, reg, req.GetFileToGenerate(), opts, log)
	for _, f := range files {
		if f != nil {
			resp.File = append(resp.File, f)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fail(err)
	}

	log.WithField("outputs", len(resp.File)).Info("done")
	return resp, nil
}

// generate runs the code generator over names with opts.Parallel workers.
// The results are in the same order as names; failed files are nil.
func generate(
	ctx context.Context,
	reg *schema.Registry,
	names []string,
	opts Options,
	log logrus.FieldLogger,
) ([]*pluginpb.CodeGeneratorResponse_File, []error) {
	files := make([]*pluginpb.CodeGeneratorResponse_File, len(names))
	errs := make([]error, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			local, err := opts.Clone()
			if err != nil {
				return err
			}

			log := log.WithField("file", name)
			f, err := generateFile(reg, name, local, log)
			if err != nil {
				log.WithError(err).Warn("generation failed")
				errs[i] = err
				return nil
			}
			log.WithField("output", f.GetName()).Debug("generated")
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, []error{err}
	}
	return files, errs
}

func generateFile(reg *schema.Registry, name string, opts Options, log logrus.FieldLogger) (*pluginpb.CodeGeneratorResponse_File, error) {
	file := reg.File(name)
	if file == nil {
		return nil, &codegen.GenerationError{File: name, Err: fmt.Errorf("%w: file not in request", codegen.ErrUnresolvedType)}
	}

	unit, err := codegen.Generate(file, opts.Codegen(log))
	if err != nil {
		return nil, err
	}
	src, err := emit.Emit(unit)
	if err != nil {
		return nil, &codegen.GenerationError{File: name, Err: err}
	}
	return &pluginpb.CodeGeneratorResponse_File{
		Name:    proto.String(unit.Filename),
		Content: proto.String(string(src)),
	}, nil
}
