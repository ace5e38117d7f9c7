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

package codegen

import (
	"go/token"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"buf.build/go/protolite/internal/schema"
)

// Naming rules.
//
// Type names are the CamelCase of each element of the enclosing chain,
// joined with "_": message Outer { message Inner {} } becomes Outer_Inner.
// Enum constants are <EnumGoName>_<VALUE_NAME>, and enum tables and maps
// are <EnumGoName>_table, _name and _value.
//
// Field names are the CamelCase of the schema name. If any identifier
// generated for a field (the field itself or one of its accessors) collides
// with a method every message has, or with an identifier generated for an
// earlier field of the same message, "_" is appended to the field name
// until nothing collides. Singular message fields are stored in an
// unexported struct field whose name is the field name with a lowercase
// first letter, plus "_" if that is a Go keyword.
//
// Any two file-scope identifiers that still collide after this are reported
// as ErrNameCollision.

// reserved are the methods of every generated message.
var reserved = []string{
	"Clear", "Decode", "Encode", "Marshal", "MessageInfo", "String", "Unmarshal",
}

// camelCase converts a schema name into an exported Go identifier. It
// follows the same rules as protoc-gen-go, so that names line up with what
// users of other Go generators expect.
func camelCase(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isLower(s[i+1]):
			// Skip the dot in ".x".
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isLower(s[i+1]):
			// Skip the underscore in "_x".
		case isDigit(c):
			b = append(b, c)
		default:
			if isLower(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			for ; i+1 < len(s) && isLower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// lowerFirst returns name with its first letter lowercased, escaped if the
// result is a keyword.
func lowerFirst(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	name = string(unicode.ToLower(r)) + name[n:]
	if token.IsKeyword(name) {
		name += "_"
	}
	return name
}

// typeName returns the Go name for a message or enum, given its name and
// its enclosing message.
func typeName(name string, parent *schema.Message) string {
	var parts []string
	for m := parent; m != nil; m = m.Parent {
		parts = append(parts, camelCase(m.Name))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(append(parts, camelCase(name)), "_")
}

// packageName returns the Go package name for a file: the explicit name in
// go_package if there is one, else the last element of its explicit import
// path, else the last element of the schema package, else the file name.
func packageName(file *schema.File, importPath string) string {
	var name string
	if _, after, ok := strings.Cut(file.GoPackage, ";"); ok {
		name = after
	} else if importPath != "" {
		name = path.Base(importPath)
	} else if file.Package != "" {
		name = file.Package[strings.LastIndexByte(file.Package, '.')+1:]
	} else {
		name = strings.TrimSuffix(path.Base(file.Name), ".proto")
	}
	return sanitize(name)
}

// sanitize turns s into a valid Go package name.
func sanitize(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "_"
	}
	if token.IsKeyword(name) {
		name += "_"
	}
	return name
}

// fieldNames assigns the Go names of a message's fields and their
// accessors.
type fieldNames struct {
	taken map[string]bool
}

func newFieldNames() *fieldNames {
	n := &fieldNames{taken: make(map[string]bool)}
	for _, r := range reserved {
		n.taken[r] = true
	}
	return n
}

// assign picks names for f, which must already have its Label and
// MessageType set.
func (n *fieldNames) assign(f *Field) {
	name := camelCase(f.Name)
	for {
		f.GoName = name
		ids := f.identifiers()
		if !n.anyTaken(ids) {
			for _, id := range ids {
				n.taken[id] = true
			}
			return
		}
		name += "_"
	}
}

func (n *fieldNames) anyTaken(ids []string) bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if n.taken[id] || seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

// identifiers sets the accessor names of f from its GoName, and returns
// every identifier they occupy in the message's method and field set.
func (f *Field) identifiers() []string {
	f.Storage = f.GoName
	f.Getter = "Get" + f.GoName
	f.Setter = "Set" + f.GoName
	f.Haser, f.Clearer, f.Mutable, f.Adder = "", "", "", ""

	switch {
	case f.IsRepeated():
		f.Adder = "Add" + f.GoName
	case f.IsMessage():
		f.Storage = lowerFirst(f.GoName)
		f.Haser = "Has" + f.GoName
		f.Clearer = "Clear" + f.GoName
		f.Mutable = "Mutable" + f.GoName
	}

	ids := []string{f.Storage, f.Getter, f.Setter}
	for _, id := range []string{f.Haser, f.Clearer, f.Mutable, f.Adder} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
