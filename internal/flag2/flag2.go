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

// Package flag2 contains helpers for reading flags registered by other
// packages, such as the testing package.
package flag2

import (
	"flag"
)

// Lookup looks up a flag by name of the given type.
//
// Panics if this flag is of the wrong type, or if the flag value is not a
// [flag.Getter].
func Lookup[T any](name string) T {
	return flag.Lookup(name).Value.(flag.Getter).Get().(T) //nolint:errcheck
}

// Get is like [Lookup], but reports false instead of panicking if the flag
// does not exist or holds a value of some other type.
//
// The test.v flag, for example, holds a string under test2json.
func Get[T any](name string) (T, bool) {
	var zero T
	f := flag.Lookup(name)
	if f == nil {
		return zero, false
	}
	g, ok := f.Value.(flag.Getter)
	if !ok {
		return zero, false
	}
	v, ok := g.Get().(T)
	return v, ok
}

// IsSet reports whether the named flag was set on the command line.
func IsSet(name string) bool {
	var set bool
	flag.Visit(func(f *flag.Flag) { set = set || f.Name == name })
	return set
}
