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

// gen writes randomly generated benchmark specimens for the message types in
// internal/gen/test into the test corpus.
//
// Messages are filled in through the reference implementation, so that the
// corpus does not depend on the code under test. Output is deterministic for
// a given -seed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"buf.build/go/protolite/internal/gen/test"
	"buf.build/go/protolite/internal/prototest"
)

var (
	seed  = flag.Uint64("seed", 1, "random seed")
	count = flag.Int("n", 4, "specimens per type")
)

// targets are the corpus files written by gen, and the type of each.
var targets = map[string]string{
	"random_scalars.yaml":  "protolite.test.Scalars",
	"random_repeated.yaml": "protolite.test.Repeated",
	"random_tree.yaml":     "protolite.test.Tree",
}

func run() error {
	flag.Parse()
	dir := getDir()

	files, err := prototest.CompileFiles(test.Protos, "test.proto")
	if err != nil {
		return err
	}

	g := &generator{
		rand:     rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)),
		maxDepth: 4,
		p:        0.75,
	}
	for name, typ := range targets {
		desc := files.FindFileByPath("test.proto").Messages().ByName(protoreflect.FullName(typ).Name())
		if desc == nil {
			return fmt.Errorf("no message %s in test.proto", typ)
		}
		if err := g.writeYAML(desc, *count, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type generator struct {
	rand     *rand.Rand
	maxDepth int
	// p is the probability that any given field is populated.
	p float64
}

func (g *generator) writeYAML(desc protoreflect.MessageDescriptor, count int, path string) error {
	specimens := make([][]byte, count)
	for i := range specimens {
		m := dynamicpb.NewMessage(desc)
		g.message(g.maxDepth, m)
		var err error
		specimens[i], err = proto.MarshalOptions{Deterministic: true}.Marshal(m)
		if err != nil {
			return err
		}
	}

	out := new(bytes.Buffer)
	fmt.Fprintln(out, "type:", desc.FullName())
	fmt.Fprintln(out, "benchmark: true")
	fmt.Fprintln(out, "hex:")
	for _, specimen := range specimens {
		fmt.Fprintln(out, "- |")
		// Rows of 32 bytes.
		for i := 0; i < len(specimen); i += 32 {
			chunk := specimen[i:min(len(specimen), i+32)]
			fmt.Fprintf(out, "  %x\n", chunk)
		}
	}

	fmt.Printf("writing %v: %.3f KB\n", path, float64(out.Len())/(1<<10))
	return os.WriteFile(path, out.Bytes(), 0o666)
}

func (g *generator) message(depth int, m protoreflect.Message) {
	if depth == 0 {
		return
	}

	fields := m.Descriptor().Fields()
	for i := range fields.Len() {
		fd := fields.Get(i)
		if g.rand.Float64() > g.p {
			continue
		}

		switch {
		case fd.IsMap():
			x := m.Mutable(fd).Map()
			for range g.len(0, 4) {
				k := g.singular(fd.MapKey()).MapKey()
				if fd.MapValue().Message() != nil {
					g.message(depth-1, x.Mutable(k).Message())
				} else {
					x.Set(k, g.singular(fd.MapValue()))
				}
			}

		case fd.IsList():
			x := m.Mutable(fd).List()
			for range g.len(1, 8) {
				if fd.Message() != nil {
					g.message(depth-1, x.AppendMutable().Message())
				} else {
					x.Append(g.singular(fd))
				}
			}

		case fd.Message() != nil:
			g.message(depth-1, m.Mutable(fd).Message())

		default:
			m.Set(fd, g.singular(fd))
		}
	}
}

// len returns a random length in [lo, hi].
func (g *generator) len(lo, hi int) int {
	return g.rand.IntN(hi-lo+1) + lo
}

func (g *generator) singular(fd protoreflect.FieldDescriptor) protoreflect.Value {
	switch fd.Kind() {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return protoreflect.ValueOfInt32(int32(g.rand.Uint32()))

	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		// Mostly small values, so that varint lengths vary.
		if g.rand.IntN(2) == 0 {
			return protoreflect.ValueOfInt64(g.rand.Int64N(256) - 128)
		}
		return protoreflect.ValueOfInt64(int64(g.rand.Uint64()))

	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return protoreflect.ValueOfUint32(g.rand.Uint32())

	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return protoreflect.ValueOfUint64(g.rand.Uint64N(math.MaxUint64))

	case protoreflect.EnumKind:
		values := fd.Enum().Values()
		value := values.Get(g.rand.IntN(values.Len()))
		return protoreflect.ValueOfEnum(value.Number())

	case protoreflect.BoolKind:
		return protoreflect.ValueOfBool(g.rand.IntN(2) == 0)

	case protoreflect.FloatKind:
		return protoreflect.ValueOfFloat32(g.rand.Float32())

	case protoreflect.DoubleKind:
		return protoreflect.ValueOfFloat64(g.rand.Float64())

	case protoreflect.StringKind:
		data := make([]byte, g.len(0, 24))
		for i := range data {
			data[i] = byte(' ' + g.rand.IntN(95))
		}
		return protoreflect.ValueOfString(string(data))

	case protoreflect.BytesKind:
		data := make([]byte, g.len(0, 24))
		for i := range data {
			data[i] = byte(g.rand.IntN(256))
		}
		return protoreflect.ValueOfBytes(data)

	default:
		panic(fmt.Sprintf("unexpected protoreflect.Kind %v", fd.Kind()))
	}
}

func getDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(file))
}
