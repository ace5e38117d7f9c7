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

// Package emit renders the generated-unit model built by package codegen as
// Go source text.
//
// Rendering is mechanical. The model is assumed to contain only valid
// identifiers; if the output does not parse, that is a bug in the code
// generator, and it is reported as [ErrInternal].
package emit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"buf.build/go/protolite/internal/codegen"
	"buf.build/go/protolite/internal/debug"
)

// ErrInternal wraps every error returned by [Emit].
var ErrInternal = errors.New("protolite: internal error in emitter")

// Header is the first line of every generated file.
const Header = "// Code generated by protoc-gen-protolite. DO NOT EDIT."

// Emit renders u as a gofmt-formatted Go source file.
func Emit(u *codegen.Unit) ([]byte, error) {
	p := &printer{u: u, rt: u.RuntimeName + "."}
	p.file()

	src := []byte(p.String())
	out, err := imports.Process(u.Filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		debug.Assert(false, "emitted invalid Go for %s: %v\n%s", u.Source, err, src)
		return nil, fmt.Errorf("%w: %s: %w", ErrInternal, u.Source, err)
	}
	return out, nil
}

type printer struct {
	strings.Builder
	u  *codegen.Unit
	rt string // Qualifier for the runtime package, including the dot.
}

// line writes one line of output. Formatting is left to gofmt.
func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
	p.WriteByte('\n')
}

// doc writes a comment, one "//" line per line of text.
func (p *printer) doc(indent, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		p.line("%s//%s", indent, strings.TrimRight(line, " \t"))
	}
}

func (p *printer) file() {
	p.line("%s", Header)
	p.line("// source: %s", p.u.Source)
	p.line("")
	if p.u.Doc != "" {
		p.doc("", p.u.Doc)
		p.line("")
	}
	p.line("package %s", p.u.GoPackageName)

	if len(p.u.Imports) > 0 {
		p.line("")
		p.imports()
	}

	for _, e := range p.u.Enums {
		p.enum(e)
	}
	for _, m := range p.u.Messages {
		p.message(m)
	}
}

func (p *printer) imports() {
	var std, other []codegen.Import
	for _, imp := range p.u.Imports {
		first, _, _ := strings.Cut(imp.Path, "/")
		if strings.Contains(first, ".") {
			other = append(other, imp)
		} else {
			std = append(std, imp)
		}
	}

	p.line("import (")
	for i, group := range [][]codegen.Import{std, other} {
		if i > 0 && len(std) > 0 && len(group) > 0 {
			p.line("")
		}
		for _, imp := range group {
			if imp.Name != "" {
				p.line("\t%s %s", imp.Name, strconv.Quote(imp.Path))
			} else {
				p.line("\t%s", strconv.Quote(imp.Path))
			}
		}
	}
	p.line(")")
}

func (p *printer) enum(e *codegen.Enum) {
	p.line("")
	p.doc("", e.Doc)
	p.line("type %s int32", e.GoName)
	p.line("")

	p.line("const (")
	for _, v := range e.Values {
		p.doc("\t", v.Doc)
		p.line("\t%s %s = %d", v.GoName, e.GoName, v.Number)
	}
	p.line(")")
	p.line("")

	p.line("// %s describes the constants of %s.", e.Table, e.FullName)
	p.line("var %s = %sNewEnumTable(%s,", e.Table, p.rt, strconv.Quote(e.FullName))
	for _, v := range e.Values {
		p.line("\t%sEnumValue{Name: %s, Number: %d},", p.rt, strconv.Quote(v.Name), v.Number)
	}
	p.line(")")
	p.line("")

	p.line("var (")
	p.line("\t%s = %s.NameMap()", e.NameMap, e.Table)
	p.line("\t%s = %s.ValueMap()", e.ValueMap, e.Table)
	p.line(")")
	p.line("")

	p.line("func (x %s) String() string {", e.GoName)
	p.line("\treturn %s.Format(int32(x))", e.Table)
	p.line("}")
	p.line("")
	p.line("func (x %s) Number() int32 {", e.GoName)
	p.line("\treturn int32(x)")
	p.line("}")
}

func (p *printer) message(m *codegen.Message) {
	p.line("")
	p.doc("", m.Doc)
	p.line("type %s struct {", m.GoName)
	for _, f := range m.Fields {
		p.doc("\t", f.Doc)
		p.line("\t%s %s", f.Storage, f.GoType)
	}
	p.line("}")
	p.line("")

	p.line("// %s returns a new %s in the all-defaults state.", m.New, m.FullName)
	p.line("func %s() *%s {", m.New, m.GoName)
	p.line("\tm := new(%s)", m.GoName)
	p.line("\tm.Clear()")
	p.line("\treturn m")
	p.line("}")
	p.line("")

	recv := "func (m *" + m.GoName + ")"
	rt := p.rt
	p.line("%s MessageInfo() *%sMessageInfo { return %s }", recv, rt, m.Info)
	p.line("%s Clear() { %sClear(m) }", recv, rt)
	p.line("%s Encode(w io.Writer) error { return %sEncode(w, m) }", recv, rt)
	p.line("%s Decode(r io.Reader) error { return %sDecode(r, m) }", recv, rt)
	p.line("%s Marshal() ([]byte, error) { return %sMarshal(m) }", recv, rt)
	p.line("%s Unmarshal(b []byte) error { return %sUnmarshal(b, m) }", recv, rt)
	p.line("%s String() string { return %sFormat(m) }", recv, rt)

	for _, f := range m.Fields {
		p.accessors(recv, f)
	}

	p.line("")
	p.line("var %s = %sNewMessageInfo(%s,", m.Info, rt, strconv.Quote(m.FullName))
	p.line("\tfunc() %sMessage { return %s() },", rt, m.New)
	for _, f := range m.Fields {
		p.line("\t%s,", p.entry(m, f))
	}
	p.line(")")
}

func (p *printer) accessors(recv string, f *codegen.Field) {
	slot := "m." + f.Storage

	p.line("")
	p.line("%s %s() %s {", recv, f.Getter, f.GoType)
	p.line("\tif m == nil {")
	p.line("\t\treturn %s", f.Zero)
	p.line("\t}")
	p.line("\treturn %s", slot)
	p.line("}")
	p.line("")

	p.line("%s %s(v %s) {", recv, f.Setter, f.GoType)
	switch {
	case f.IsMessage() && f.IsRepeated():
		p.line("\t%sReplaceList(&%s, v)", p.rt, slot)
	case f.IsMessage():
		p.line("\t%sReplace(&%s, v)", p.rt, slot)
	default:
		p.line("\t%s = v", slot)
	}
	p.line("}")

	switch {
	case f.IsMessage() && f.IsRepeated():
		p.line("")
		p.line("%s %s() %s {", recv, f.Adder, f.ElemType)
		p.line("\tv := %s()", f.MessageNew)
		p.line("\t%s = append(%s, v)", slot, slot)
		p.line("\treturn v")
		p.line("}")

	case f.IsRepeated():
		p.line("")
		p.line("%s %s(v ...%s) {", recv, f.Adder, f.ElemType)
		p.line("\t%s = append(%s, v...)", slot, slot)
		p.line("}")

	case f.IsMessage():
		p.line("")
		p.line("%s %s() bool {", recv, f.Haser)
		p.line("\treturn m != nil && %s != nil", slot)
		p.line("}")
		p.line("")
		p.line("%s %s() {", recv, f.Clearer)
		p.line("\t%sReplace(&%s, nil)", p.rt, slot)
		p.line("}")
		p.line("")
		p.line("%s %s() %s {", recv, f.Mutable, f.GoType)
		p.line("\tif %s == nil {", slot)
		p.line("\t\t%s = %s()", slot, f.MessageNew)
		p.line("\t}")
		p.line("\treturn %s", slot)
		p.line("}")
	}
}

// entry returns the field table entry for f.
func (p *printer) entry(m *codegen.Message, f *codegen.Field) string {
	b := new(strings.Builder)
	b.WriteString(p.rt)
	b.WriteString(f.Constructor)
	if f.IsMessage() {
		fmt.Fprintf(b, "[*%s, %s]", m.GoName, f.MessageType)
	}
	fmt.Fprintf(b, "(%d, %s, ", f.Number, strconv.Quote(f.Name))
	if f.RuntimeKind != "" {
		fmt.Fprintf(b, "%s%s, ", p.rt, f.RuntimeKind)
	}
	if f.EnumTable != "" {
		fmt.Fprintf(b, "%s, ", f.EnumTable)
	}
	fmt.Fprintf(b, "func(m *%s) *%s { return &m.%s }", m.GoName, f.GoType, f.Storage)
	if f.Default != "" {
		fmt.Fprintf(b, ", %s", f.Default)
	}
	b.WriteString(")")
	return b.String()
}
