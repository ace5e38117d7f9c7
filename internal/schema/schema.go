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

// Package schema is the in-memory model of a set of parsed .proto files, as
// handed to a protoc plugin.
//
// The model is built from descriptor protos by a [Registry]. It keeps
// declaration order, never renumbers anything, and resolves type references
// across files.
package schema

import (
	"fmt"
)

// Kind is the declared type of a field.
type Kind int8

// Kinds match the numbering of FieldDescriptorProto.Type.
const (
	DoubleKind   Kind = 1
	FloatKind    Kind = 2
	Int64Kind    Kind = 3
	Uint64Kind   Kind = 4
	Int32Kind    Kind = 5
	Fixed64Kind  Kind = 6
	Fixed32Kind  Kind = 7
	BoolKind     Kind = 8
	StringKind   Kind = 9
	GroupKind    Kind = 10
	MessageKind  Kind = 11
	BytesKind    Kind = 12
	Uint32Kind   Kind = 13
	EnumKind     Kind = 14
	Sfixed32Kind Kind = 15
	Sfixed64Kind Kind = 16
	Sint32Kind   Kind = 17
	Sint64Kind   Kind = 18
)

var kindNames = [...]string{
	DoubleKind:   "double",
	FloatKind:    "float",
	Int64Kind:    "int64",
	Uint64Kind:   "uint64",
	Int32Kind:    "int32",
	Fixed64Kind:  "fixed64",
	Fixed32Kind:  "fixed32",
	BoolKind:     "bool",
	StringKind:   "string",
	GroupKind:    "group",
	MessageKind:  "message",
	BytesKind:    "bytes",
	Uint32Kind:   "uint32",
	EnumKind:     "enum",
	Sfixed32Kind: "sfixed32",
	Sfixed64Kind: "sfixed64",
	Sint32Kind:   "sint32",
	Sint64Kind:   "sint64",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < len(kindNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Label is the cardinality of a field.
type Label int8

const (
	Singular Label = iota
	Repeated
)

// String implements [fmt.Stringer].
func (l Label) String() string {
	if l == Repeated {
		return "repeated"
	}
	return "singular"
}

// MarshalText implements [encoding.TextMarshaler].
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// File is one .proto file.
type File struct {
	Name      string   `json:"name"`
	Package   string   `json:"package,omitempty"`
	Syntax    string   `json:"syntax"` // "proto2", "proto3" or "editions".
	GoPackage string   `json:"go_package,omitempty"`
	Deps      []string `json:"deps,omitempty"`
	Doc       string   `json:"doc,omitempty"`

	Messages []*Message `json:"messages,omitempty"`
	Enums    []*Enum    `json:"enums,omitempty"`

	// Extensions lists the full names of extensions declared at file scope.
	Extensions []string `json:"extensions,omitempty"`
}

// Message is a message declaration.
type Message struct {
	Name     string   `json:"name"`
	FullName string   `json:"full_name"`
	Parent   *Message `json:"-"` // Nil for top-level messages.
	File     *File    `json:"-"`
	Doc      string   `json:"doc,omitempty"`

	// MapEntry is set for the entry messages synthesized for map fields.
	MapEntry bool `json:"map_entry,omitempty"`

	Fields   []*Field   `json:"fields,omitempty"`
	Messages []*Message `json:"messages,omitempty"`
	Enums    []*Enum    `json:"enums,omitempty"`

	Oneofs     []string `json:"oneofs,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// Field is a field of a message.
type Field struct {
	Name     string `json:"name"`
	JSONName string `json:"json_name,omitempty"`
	Number   int32  `json:"number"`
	Label    Label  `json:"label"`
	Kind     Kind   `json:"kind"`
	Doc      string `json:"doc,omitempty"`

	// TypeName is the full name of the message or enum type, without a
	// leading dot. Empty for scalar kinds.
	TypeName string `json:"type_name,omitempty"`

	// Set by [Registry.Resolve].
	Message *Message `json:"-"`
	Enum    *Enum    `json:"-"`

	// Default is the proto2 default value, in descriptor syntax.
	Default    string `json:"default,omitempty"`
	HasDefault bool   `json:"has_default,omitempty"`

	// Oneof is the name of the containing oneof, if any.
	Oneof          string `json:"oneof,omitempty"`
	Proto3Optional bool   `json:"proto3_optional,omitempty"`

	Parent *Message `json:"-"`
}

// FullName returns the fully-qualified name of the field.
func (f *Field) FullName() string {
	return f.Parent.FullName + "." + f.Name
}

// IsMap reports whether f is a map field.
func (f *Field) IsMap() bool {
	return f.Label == Repeated && f.Message != nil && f.Message.MapEntry
}

// Enum is an enum declaration.
type Enum struct {
	Name     string       `json:"name"`
	FullName string       `json:"full_name"`
	Parent   *Message     `json:"-"`
	File     *File        `json:"-"`
	Doc      string       `json:"doc,omitempty"`
	Values   []*EnumValue `json:"values"`
}

// EnumValue is one constant of an enum.
type EnumValue struct {
	Name   string `json:"name"`
	Number int32  `json:"number"`
	Doc    string `json:"doc,omitempty"`
}

// Default returns the constant that is the enum's default, which is the
// first one with value zero. Returns nil if there is none.
func (e *Enum) Default() *EnumValue {
	for _, v := range e.Values {
		if v.Number == 0 {
			return v
		}
	}
	return nil
}

// Walk calls yield for every message in f, including nested ones, parents
// before children, in declaration order.
func (f *File) Walk(yield func(*Message) bool) {
	var walk func([]*Message) bool
	walk = func(ms []*Message) bool {
		for _, m := range ms {
			if !yield(m) || !walk(m.Messages) {
				return false
			}
		}
		return true
	}
	walk(f.Messages)
}

// AllEnums returns every enum declared in f, including nested ones, in the
// same order as [File.Walk] visits their parents.
func (f *File) AllEnums() []*Enum {
	enums := append([]*Enum(nil), f.Enums...)
	f.Walk(func(m *Message) bool {
		enums = append(enums, m.Enums...)
		return true
	})
	return enums
}
