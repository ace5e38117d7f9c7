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

package plugin

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tiendc/go-deepcopy"
	"gopkg.in/yaml.v3"

	"buf.build/go/protolite/internal/codegen"
)

// ErrBadOption is returned for parameters that cannot be parsed.
var ErrBadOption = errors.New("invalid plugin option")

const (
	PathsImport         = "import"
	PathsSourceRelative = "source_relative"
)

// Options is the plugin configuration, parsed from the protoc parameter
// string and, optionally, a YAML file named by its config key.
type Options struct {
	Runtime   string            `yaml:"runtime"`
	Paths     string            `yaml:"paths"`
	ImportMap map[string]string `yaml:"M"`
	Comments  bool              `yaml:"comments"`
	Parallel  int               `yaml:"parallel"`
	LogLevel  string            `yaml:"log_level"`
}

// DefaultOptions returns the options used for anything not configured.
func DefaultOptions() Options {
	return Options{
		Runtime:  codegen.DefaultRuntime,
		Paths:    PathsImport,
		Comments: true,
		Parallel: 1,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// ParseOptions parses a parameter string of the form k=v,k=v.
//
// If a config key is present, that file is loaded first; the other
// parameters override whatever it sets, regardless of their order.
func ParseOptions(param string) (Options, error) {
	opts := DefaultOptions()

	var pairs [][2]string
	for _, kv := range strings.Split(param, ",") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		if k == "config" {
			if err := opts.load(v); err != nil {
				return Options{}, err
			}
			continue
		}
		pairs = append(pairs, [2]string{k, v})
	}

	for _, kv := range pairs {
		if err := opts.set(kv[0], kv[1]); err != nil {
			return Options{}, err
		}
	}
	return opts, opts.Validate()
}

func (o *Options) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: config parse failed (%s): %w", ErrBadOption, path, err)
	}
	return nil
}

func (o *Options) set(key, value string) error {
	switch {
	case key == "runtime":
		o.Runtime = value
	case key == "paths":
		o.Paths = value
	case strings.HasPrefix(key, "M"):
		if o.ImportMap == nil {
			o.ImportMap = make(map[string]string)
		}
		o.ImportMap[key[1:]] = value
	case key == "comments":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: comments=%q", ErrBadOption, value)
		}
		o.Comments = v
	case key == "parallel":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: parallel=%q", ErrBadOption, value)
		}
		o.Parallel = v
	case key == "log_level":
		o.LogLevel = value
	default:
		return fmt.Errorf("%w: unknown key %q", ErrBadOption, key)
	}
	return nil
}

// Validate checks that every option has a usable value.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Runtime) == "" {
		return fmt.Errorf("%w: runtime must not be empty", ErrBadOption)
	}
	if o.Paths != PathsImport && o.Paths != PathsSourceRelative {
		return fmt.Errorf("%w: paths=%q, want %q or %q", ErrBadOption, o.Paths, PathsImport, PathsSourceRelative)
	}
	if o.Parallel < 1 {
		return fmt.Errorf("%w: parallel=%d, must be at least 1", ErrBadOption, o.Parallel)
	}
	for file, path := range o.ImportMap {
		if file == "" || path == "" {
			return fmt.Errorf("%w: M%s=%s", ErrBadOption, file, path)
		}
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrBadOption, err)
	}
	return nil
}

// Clone returns a deep copy of o. Generation workers each take a clone, so
// they never share the ImportMap map: codegen.Options aliases it, and a
// write made while generating one file must not be seen by another.
func (o Options) Clone() (Options, error) {
	var c Options
	if err := deepcopy.Copy(&c, &o); err != nil {
		return Options{}, err
	}
	return c, nil
}

// Codegen converts o into options for the code generator.
func (o Options) Codegen(logger logrus.FieldLogger) codegen.Options {
	return codegen.Options{
		RuntimeImport:  o.Runtime,
		SourceRelative: o.Paths == PathsSourceRelative,
		ImportMap:      o.ImportMap,
		Comments:       o.Comments,
		Logger:         logger,
	}
}
