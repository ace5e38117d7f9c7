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

package prototest

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protolite/internal/dbg"
)

// Equal compares two reflective messages field by field, reporting the path
// to every difference.
//
// Unknown fields are ignored, since protolite discards them. Floats are
// compared by bit pattern, so NaNs with the same payload are equal.
func Equal(t testing.TB, expect, got protoreflect.Message) {
	t.Helper()
	e := &equal{TB: t}

	panicked := true
	defer func() {
		if panicked {
			t.Errorf("panicked at %s", e.formatPath())
		}
	}()

	e.message(expect, got)
	panicked = false
}

type equal struct {
	testing.TB
	path []any
}

func (e *equal) any(v1, v2 protoreflect.Value) {
	e.Helper()

	switch a := v1.Interface().(type) {
	case protoreflect.Message:
		e.message(a, v2.Message())
	case protoreflect.List:
		e.list(a, v2.List())
	case protoreflect.Map:
		e.map_(a, v2.Map())
	case []byte:
		if b := v2.Bytes(); !bytes.Equal(a, b) {
			e.fail("expected `%x`, got `%x`", a, b)
		}
	case float32:
		if b := float32(v2.Float()); math.Float32bits(a) != math.Float32bits(b) {
			e.fail("expected %v, got %v", a, b)
		}
	case float64:
		if b := v2.Float(); math.Float64bits(a) != math.Float64bits(b) {
			e.fail("expected %v, got %v", a, b)
		}
	default:
		b := v2.Interface()
		if reflect.TypeOf(a) != reflect.TypeOf(b) {
			e.fail("expected %T, got %T", a, b)
			return
		}
		if a != b {
			e.fail("expected %#v, got %#v", a, b)
		}
	}
}

func (e *equal) message(a, b protoreflect.Message) {
	e.Helper()

	if a.Descriptor().FullName() != b.Descriptor().FullName() {
		e.fail("expected %v, got %v", a.Descriptor().FullName(), b.Descriptor().FullName())
		return
	}

	fds := a.Descriptor().Fields()
	for i := range fds.Len() {
		fd := fds.Get(i)
		e.push(fd.Name(), func() {
			e.Helper()
			if a.Has(fd) != b.Has(fd) {
				e.fail("unequal has: want %v, got %v", a.Has(fd), b.Has(fd))
			}
			e.any(a.Get(fd), b.Get(fd))
		})
	}
}

func (e *equal) list(a, b protoreflect.List) {
	e.Helper()
	for i := range min(a.Len(), b.Len()) {
		e.push(i, func() {
			e.Helper()
			e.any(a.Get(i), b.Get(i))
		})
	}

	if a.Len() != b.Len() {
		e.fail("unequal lengths: want %d, got %d", a.Len(), b.Len())
	}
}

func (e *equal) map_(a, b protoreflect.Map) {
	e.Helper()

	keySet := make(map[any]struct{})
	for k := range a.Range {
		keySet[k.Interface()] = struct{}{}
	}
	for k := range b.Range {
		keySet[k.Interface()] = struct{}{}
	}

	keys := make([]protoreflect.MapKey, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, protoreflect.ValueOf(k).MapKey())
	}
	slices.SortFunc(keys, func(x, y protoreflect.MapKey) int {
		return cmp.Compare(fmt.Sprint(x.Interface()), fmt.Sprint(y.Interface()))
	})

	for _, k := range keys {
		e.push(k.Interface(), func() {
			e.Helper()
			if a.Has(k) != b.Has(k) {
				e.fail("unequal has: want %v, got %v", a.Has(k), b.Has(k))
				return
			}
			e.any(a.Get(k), b.Get(k))
		})
	}
}

func (e *equal) push(v any, f func()) {
	e.Helper()
	e.path = append(e.path, v)
	f()
	e.path = e.path[:len(e.path)-1]
}

func (e *equal) fail(format string, args ...any) {
	e.Helper()
	e.Errorf("failure at %s: %v", e.formatPath(), dbg.Fprintf(format, args...))
}

func (e *equal) formatPath() string {
	if len(e.path) == 0 {
		return "."
	}

	buf := new(strings.Builder)
	for _, e := range e.path {
		switch e := e.(type) {
		case protoreflect.Name:
			fmt.Fprintf(buf, ".%v", e)
		case string:
			fmt.Fprintf(buf, "[%q]", e)
		default:
			fmt.Fprintf(buf, "[%v]", e)
		}
	}

	return buf.String()
}
