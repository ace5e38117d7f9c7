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

package emit_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/protolite/internal/codegen"
	"buf.build/go/protolite/internal/emit"
	"buf.build/go/protolite/internal/gen/test"
	"buf.build/go/protolite/internal/prototest"
	"buf.build/go/protolite/internal/schema"
)

// The generated code under internal/gen/test is checked in; regenerating it
// must be a no-op.
func TestGolden(t *testing.T) {
	t.Parallel()

	files := prototest.CompileFS(t, test.Protos, "test.proto", "defaults.proto")
	r, err := schema.Build(prototest.FileProtos(files))
	require.NoError(t, err)

	for _, name := range []string{"test.proto", "defaults.proto"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u, err := codegen.Generate(r.File(name), codegen.Options{Comments: true})
			require.NoError(t, err)
			got, err := emit.Emit(u)
			require.NoError(t, err)

			want, err := os.ReadFile("../gen/test/" + strings.TrimSuffix(name, ".proto") + codegen.Suffix)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestEmit(t *testing.T) {
	t.Parallel()

	files := prototest.Compile(t, map[string]string{
		"dep.proto": `
			syntax = "proto3";
			package dep;
			option go_package = "example.com/dep";
			// E is an enum.
			enum E {
				// The zero value.
				//
				// With a blank line.
				E_ZERO = 0;
			}
			message D {}`,
		"a.proto": `
			// Package doc.
			syntax = "proto3";
			package a;
			import "dep.proto";
			option go_package = "example.com/a;apb";
			message Empty {}
			message A {
				dep.D d = 1;
				repeated dep.E es = 2;
				Empty type = 3;
			}`,
	}, "a.proto")
	r, err := schema.Build(prototest.FileProtos(files))
	require.NoError(t, err)

	u, err := codegen.Generate(r.File("a.proto"), codegen.Options{
		Comments:      true,
		RuntimeImport: "example.com/alt/runtime-v2",
	})
	require.NoError(t, err)
	src, err := emit.Emit(u)
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, u.Filename, src, parser.ParseComments)
	require.NoError(t, err, "%s", src)

	assert.Equal(t, "apb", f.Name.Name)
	assert.Nil(t, f.Doc, "the file comment is not the package doc")
	assert.True(t, strings.HasPrefix(string(src), emit.Header+"\n// source: a.proto\n\n// Package doc.\n\npackage apb\n"))

	var imports []string
	for _, imp := range f.Imports {
		s := imp.Path.Value
		if imp.Name != nil {
			s = imp.Name.Name + " " + s
		}
		imports = append(imports, s)
	}
	assert.Equal(t, []string{`"io"`, `runtime_v2 "example.com/alt/runtime-v2"`, `"example.com/dep"`}, imports)

	decls := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				name = types(d.Recv.List[0].Type) + "." + name
			}
			decls[name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					decls[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						decls[n.Name] = true
					}
				}
			}
		}
	}
	for _, name := range []string{
		"Empty", "NewEmpty", "_Empty_info", "Empty.Clear", "Empty.String",
		"A", "NewA", "_A_info",
		"A.GetD", "A.SetD", "A.HasD", "A.ClearD", "A.MutableD",
		"A.GetEs", "A.SetEs", "A.AddEs",
		"A.GetType", "A.SetType", "A.MutableType",
	} {
		assert.True(t, decls[name], "missing %s", name)
	}

	out := string(src)
	assert.Contains(t, out, "type_ *Empty")
	assert.Contains(t, out, "runtime_v2.MessageField[*A, dep.D](1, \"d\", func(m *A) **dep.D { return &m.d })")
	assert.Contains(t, out, "runtime_v2.RepeatedEnumField(2, \"es\", dep.E_table, func(m *A) *[]dep.E { return &m.Es })")
	assert.Contains(t, out, "m.type_ = NewEmpty()")
	assert.Contains(t, out, "m.d = dep.NewD()")
}

func TestEmitEnumsOnly(t *testing.T) {
	t.Parallel()

	files := prototest.Compile(t, map[string]string{
		"a.proto": `
			syntax = "proto3";
			package a;
			// E is an enum.
			enum E {
				// The zero value.
				//
				// With a blank line.
				E_ZERO = 0;
				E_ONE = 1;
			}`,
	}, "a.proto")
	r, err := schema.Build(prototest.FileProtos(files))
	require.NoError(t, err)

	u, err := codegen.Generate(r.File("a.proto"), codegen.Options{Comments: true})
	require.NoError(t, err)
	src, err := emit.Emit(u)
	require.NoError(t, err)

	out := string(src)
	assert.NotContains(t, out, `"io"`)
	assert.Contains(t, out, "// E is an enum.\ntype E int32\n")
	assert.Contains(t, out, "\t// The zero value.\n\t//\n\t// With a blank line.\n\tE_E_ZERO E = 0\n")

	_, err = parser.ParseFile(token.NewFileSet(), "a.pl.go", src, 0)
	assert.NoError(t, err)
}

func TestEmitInternalError(t *testing.T) {
	t.Parallel()

	_, err := emit.Emit(&codegen.Unit{
		Source:        "bad.proto",
		Filename:      "bad.pl.go",
		GoPackageName: "not a package",
	})
	assert.ErrorIs(t, err, emit.ErrInternal)
	assert.ErrorContains(t, err, "bad.proto")
}

func types(e ast.Expr) string {
	if s, ok := e.(*ast.StarExpr); ok {
		e = s.X
	}
	if id, ok := e.(*ast.Ident); ok {
		return id.Name
	}
	return "?"
}
