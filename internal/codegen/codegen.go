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

// Package codegen turns the schema model of one .proto file into the
// generated-unit model: Go names, storage slots, accessors and field table
// entries for every message and enum in the file.
//
// Generate never panics on user input. Anything that cannot be represented
// is reported as a [*GenerationError] naming the file and element at fault.
package codegen

import (
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"buf.build/go/protolite/internal/schema"
	"buf.build/go/protolite/internal/typemap"
	"buf.build/go/protolite/internal/wire"
)

// DefaultRuntime is the import path of the runtime package generated code
// binds against unless configured otherwise.
const DefaultRuntime = "buf.build/go/protolite"

// Options configures [Generate].
type Options struct {
	// RuntimeImport is the import path of the runtime package. Any package
	// exporting the same API may be substituted. Defaults to [DefaultRuntime].
	RuntimeImport string
	// SourceRelative places output next to the .proto file rather than under
	// its Go import path.
	SourceRelative bool
	// ImportMap overrides the Go import path of individual .proto files.
	ImportMap map[string]string
	// Comments carries schema comments into generated code.
	Comments bool
	// Logger receives debug output. Defaults to a logger that discards
	// everything.
	Logger logrus.FieldLogger
}

// Suffix is the file name suffix of generated files.
const Suffix = ".pl.go"

// Generate builds the generated-unit model for file.
//
// The registry that file came from must have been resolved; fields whose
// types were not found are reported as [ErrUnresolvedType].
func Generate(file *schema.File, opts Options) (*Unit, error) {
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntime
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	g := &generator{
		file:    file,
		opts:    opts,
		log:     opts.Logger.WithField("file", file.Name),
		idents:  make(map[string]string),
		imports: make(map[string]string),
	}
	return g.run()
}

type generator struct {
	file *schema.File
	opts Options
	log  logrus.FieldLogger
	unit *Unit

	// idents maps every file-scope identifier to the element that declared
	// it.
	idents map[string]string
	// imports maps import paths to the names they are referred to by.
	imports map[string]string
}

func (g *generator) fail(element string, err error) error {
	return &GenerationError{File: g.file.Name, Element: element, Err: err}
}

func (g *generator) run() (*Unit, error) {
	if err := g.validateFile(); err != nil {
		return nil, err
	}

	importPath := g.importPath(g.file)
	u := &Unit{
		Source:        g.file.Name,
		GoImportPath:  importPath,
		GoPackageName: packageName(g.file, g.explicitImportPath(g.file)),
		RuntimeImport: g.opts.RuntimeImport,
		RuntimeName:   sanitize(path.Base(g.opts.RuntimeImport)),
	}
	if g.opts.Comments {
		u.Doc = g.file.Doc
	}

	base := strings.TrimSuffix(path.Base(g.file.Name), ".proto") + Suffix
	if g.opts.SourceRelative {
		u.Filename = path.Join(path.Dir(g.file.Name), base)
	} else {
		u.Filename = path.Join(importPath, base)
	}
	g.unit = u

	g.imports[u.RuntimeImport] = u.RuntimeName

	for _, e := range g.file.AllEnums() {
		ge, err := g.enum(e)
		if err != nil {
			return nil, err
		}
		u.Enums = append(u.Enums, ge)
	}
	for _, m := range messages(g.file.Messages) {
		gm, err := g.message(m)
		if err != nil {
			return nil, err
		}
		u.Messages = append(u.Messages, gm)
	}

	switch {
	case len(u.Messages) > 0:
		g.imports["io"] = "io"
	case len(u.Enums) == 0:
		delete(g.imports, u.RuntimeImport)
	}
	for p, name := range g.imports {
		imp := Import{Path: p}
		if name != path.Base(p) {
			imp.Name = name
		}
		u.Imports = append(u.Imports, imp)
	}
	slices.SortFunc(u.Imports, func(a, b Import) int { return strings.Compare(a.Path, b.Path) })

	g.log.WithFields(logrus.Fields{
		"messages": len(u.Messages),
		"enums":    len(u.Enums),
		"output":   u.Filename,
	}).Debug("generated unit")
	return u, nil
}

// messages flattens a message tree in the order types are emitted: each
// message, followed by its nested messages, with map entries last.
func messages(ms []*schema.Message) []*schema.Message {
	var out []*schema.Message
	for _, m := range ms {
		out = append(out, m)
		nested := slices.Clone(m.Messages)
		slices.SortStableFunc(nested, func(a, b *schema.Message) int {
			switch {
			case a.MapEntry == b.MapEntry:
				return 0
			case a.MapEntry:
				return 1
			default:
				return -1
			}
		})
		out = append(out, messages(nested)...)
	}
	return out
}

// declare reserves a file-scope identifier.
func (g *generator) declare(element string, idents ...string) error {
	for _, id := range idents {
		if prev, ok := g.idents[id]; ok {
			return g.fail(element, fmt.Errorf("%w: %s is also generated for %s", ErrNameCollision, id, prev))
		}
		g.idents[id] = element
	}
	return nil
}

func (g *generator) doc(s string) string {
	if !g.opts.Comments {
		return ""
	}
	return s
}

func (g *generator) enum(e *schema.Enum) (*Enum, error) {
	if e.Default() == nil {
		return nil, g.fail(e.FullName, ErrMissingEnumDefault)
	}
	if g.file.Syntax == "proto3" && e.Values[0].Number != 0 {
		return nil, g.fail(e.FullName, fmt.Errorf("%w: first value %s must be zero", ErrMissingEnumDefault, e.Values[0].Name))
	}

	name := typeName(e.Name, e.Parent)
	ge := &Enum{
		GoName:   name,
		FullName: e.FullName,
		Doc:      g.doc(e.Doc),
		Table:    name + "_table",
		NameMap:  name + "_name",
		ValueMap: name + "_value",
	}
	if err := g.declare(e.FullName, ge.GoName, ge.Table, ge.NameMap, ge.ValueMap); err != nil {
		return nil, err
	}

	for _, v := range e.Values {
		gv := &EnumValue{
			Name:   v.Name,
			GoName: typemap.EnumConst(name, v.Name),
			Number: v.Number,
			Doc:    g.doc(v.Doc),
		}
		if err := g.declare(e.FullName+"."+v.Name, gv.GoName); err != nil {
			return nil, err
		}
		ge.Values = append(ge.Values, gv)
	}
	return ge, nil
}

func (g *generator) message(m *schema.Message) (*Message, error) {
	if err := g.validateMessage(m); err != nil {
		return nil, err
	}

	name := typeName(m.Name, m.Parent)
	gm := &Message{
		GoName:   name,
		FullName: m.FullName,
		Doc:      g.doc(m.Doc),
		New:      "New" + name,
		Info:     "_" + name + "_info",
		MapEntry: m.MapEntry,
	}
	if err := g.declare(m.FullName, gm.GoName, gm.New, gm.Info); err != nil {
		return nil, err
	}

	names := newFieldNames()
	for _, f := range m.Fields {
		gf, err := g.field(f)
		if err != nil {
			return nil, err
		}
		names.assign(gf)
		gm.Fields = append(gm.Fields, gf)
	}

	g.log.WithFields(logrus.Fields{
		"message": m.FullName,
		"type":    name,
		"fields":  len(gm.Fields),
	}).Debug("generated message")
	return gm, nil
}

func (g *generator) field(f *schema.Field) (*Field, error) {
	gf := &Field{
		Name:        f.Name,
		Number:      f.Number,
		Kind:        f.Kind,
		Label:       f.Label,
		Doc:         g.doc(f.Doc),
		GoType:      typemap.GoType(f, g),
		ElemType:    typemap.ElemType(f, g),
		Zero:        typemap.Zero(f, g),
		Constructor: typemap.Constructor(f),
	}
	if typemap.TakesKind(f) {
		gf.RuntimeKind = typemap.RuntimeKind(f.Kind)
	}

	switch f.Kind {
	case schema.EnumKind:
		gf.EnumTable = g.qualify(f.Enum.File, typeName(f.Enum.Name, f.Enum.Parent)+"_table")
	case schema.MessageKind:
		gf.MessageType = g.Message(f.Message)
		gf.MessageNew = g.qualify(f.Message.File, "New"+typeName(f.Message.Name, f.Message.Parent))
	}

	lit, ok, err := typemap.DefaultLiteral(f, g)
	if err != nil {
		return nil, g.fail(f.FullName(), err)
	}
	if ok {
		gf.Default = lit.Expr
		gf.Zero = lit.Expr
		if lit.Import != "" {
			g.imports[lit.Import] = lit.Import
		}
	}
	return gf, nil
}

// Message implements [typemap.Names].
func (g *generator) Message(m *schema.Message) string {
	return g.qualify(m.File, typeName(m.Name, m.Parent))
}

// Enum implements [typemap.Names].
func (g *generator) Enum(e *schema.Enum) string {
	return g.qualify(e.File, typeName(e.Name, e.Parent))
}

// qualify returns a reference to a file-scope identifier declared by the
// code generated for file, adding an import if it lives in another package.
func (g *generator) qualify(file *schema.File, ident string) string {
	p := g.importPath(file)
	if p == g.importPath(g.file) {
		return ident
	}

	name, ok := g.imports[p]
	if !ok {
		name = packageName(file, g.explicitImportPath(file))
		for g.nameTaken(name) {
			name += "_"
		}
		g.imports[p] = name
	}
	return name + "." + ident
}

// locals are names generated code uses for something other than a
// cross-file import.
var locals = []string{"b", "io", "m", "math", "r", "v", "w", "x"}

func (g *generator) nameTaken(name string) bool {
	if slices.Contains(locals, name) {
		return true
	}
	for _, n := range g.imports {
		if n == name {
			return true
		}
	}
	return false
}

// importPath returns the Go import path of the code generated for file.
// Files with no go_package and no override use their directory.
func (g *generator) importPath(file *schema.File) string {
	if p := g.explicitImportPath(file); p != "" {
		return p
	}
	return path.Dir(file.Name)
}

// explicitImportPath returns the import path given for file by an override
// or by its go_package option, if any.
func (g *generator) explicitImportPath(file *schema.File) string {
	if p, ok := g.opts.ImportMap[file.Name]; ok {
		return p
	}
	p, _, _ := strings.Cut(file.GoPackage, ";")
	return p
}

func (g *generator) validateFile() error {
	switch g.file.Syntax {
	case "proto2", "proto3":
	default:
		return g.fail("", fmt.Errorf("%w: syntax %q", ErrUnsupported, g.file.Syntax))
	}
	if len(g.file.Extensions) > 0 {
		return g.fail(g.file.Extensions[0], fmt.Errorf("%w: extensions", ErrUnsupported))
	}
	return nil
}

func (g *generator) validateMessage(m *schema.Message) error {
	if len(m.Extensions) > 0 {
		return g.fail(m.Extensions[0], fmt.Errorf("%w: extensions", ErrUnsupported))
	}

	seen := make(map[int32]string, len(m.Fields))
	for _, f := range m.Fields {
		n := wire.Number(f.Number)
		if !n.IsValid() || n.IsReserved() {
			return g.fail(f.FullName(), fmt.Errorf("%w: %d", ErrInvalidFieldNumber, f.Number))
		}
		if prev, ok := seen[f.Number]; ok {
			return g.fail(f.FullName(), fmt.Errorf("%w: %d is also used by %s", ErrFieldNumberConflict, f.Number, prev))
		}
		seen[f.Number] = f.Name

		switch {
		case f.Proto3Optional:
			return g.fail(f.FullName(), fmt.Errorf("%w: proto3 optional", ErrUnsupported))
		case f.Oneof != "":
			return g.fail(f.FullName(), fmt.Errorf("%w: oneof %s", ErrUnsupported, f.Oneof))
		case f.Kind == schema.GroupKind:
			return g.fail(f.FullName(), fmt.Errorf("%w: groups", ErrUnsupported))
		case !f.Kind.IsValid():
			return g.fail(f.FullName(), fmt.Errorf("%w: field type %v", ErrUnsupported, f.Kind))
		case f.Kind == schema.MessageKind && f.Message == nil,
			f.Kind == schema.EnumKind && f.Enum == nil:
			return g.fail(f.FullName(), fmt.Errorf("%w: %q", ErrUnresolvedType, f.TypeName))
		}
	}
	return nil
}
