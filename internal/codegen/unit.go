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
	"buf.build/go/protolite/internal/schema"
)

// Unit is the generated-unit model for one .proto file: everything the
// emitter needs to write a single Go source file.
type Unit struct {
	Source        string `json:"source"`   // Path of the .proto file.
	Filename      string `json:"filename"` // Path of the output file.
	GoPackageName string `json:"go_package_name"`
	GoImportPath  string `json:"go_import_path"`
	Doc           string `json:"doc,omitempty"`

	// RuntimeImport is the import path of the runtime package, and
	// RuntimeName the name generated code refers to it by.
	RuntimeImport string `json:"runtime_import"`
	RuntimeName   string `json:"runtime_name"`

	// Imports lists every import of the generated file, runtime included.
	Imports []Import `json:"imports"`

	Enums    []*Enum    `json:"enums,omitempty"`
	Messages []*Message `json:"messages,omitempty"`
}

// Import is one import of a generated file.
type Import struct {
	Path string `json:"path"`
	// Name is set when the import needs an explicit name.
	Name string `json:"name,omitempty"`
}

// Message is a generated struct type.
type Message struct {
	GoName   string   `json:"go_name"`
	FullName string   `json:"full_name"`
	Doc      string   `json:"doc,omitempty"`
	New      string   `json:"new"`  // Name of the constructor function.
	Info     string   `json:"info"` // Name of the MessageInfo variable.
	MapEntry bool     `json:"map_entry,omitempty"`
	Fields   []*Field `json:"fields,omitempty"`
}

// Field is one storage slot of a generated message, together with its
// accessors.
type Field struct {
	Name     string       `json:"name"` // Name in the schema.
	Number   int32        `json:"number"`
	Kind     schema.Kind  `json:"kind"`
	Label    schema.Label `json:"label"`
	Doc      string       `json:"doc,omitempty"`
	GoName   string       `json:"go_name"`
	Storage  string       `json:"storage"` // Name of the struct field.
	GoType   string       `json:"go_type"`
	ElemType string       `json:"elem_type"` // For repeated fields, the element type.

	Getter  string `json:"getter"`
	Setter  string `json:"setter"`
	Haser   string `json:"haser,omitempty"`
	Clearer string `json:"clearer,omitempty"`
	Mutable string `json:"mutable,omitempty"`
	Adder   string `json:"adder,omitempty"`

	// Zero is what the getter returns for a nil message: the field's default.
	Zero string `json:"zero"`
	// Default is the explicit default passed to the field table, if any.
	Default string `json:"default,omitempty"`

	Constructor string `json:"constructor"`            // Runtime field table constructor.
	RuntimeKind string `json:"runtime_kind,omitempty"` // Set if the constructor takes a Kind.
	EnumTable   string `json:"enum_table,omitempty"`
	// MessageType is the struct type of a message field, without the pointer,
	// and MessageNew its constructor.
	MessageType string `json:"message_type,omitempty"`
	MessageNew  string `json:"message_new,omitempty"`
}

// IsMessage reports whether f holds messages.
func (f *Field) IsMessage() bool {
	return f.MessageType != ""
}

// IsRepeated reports whether f is a repeated field.
func (f *Field) IsRepeated() bool {
	return f.Label == schema.Repeated
}

// Exported reports whether the storage of f is an exported struct field.
// Only singular message fields are unexported, so that every assignment
// goes through the setter and ownership is transferred correctly.
func (f *Field) Exported() bool {
	return f.Storage == f.GoName
}

// Enum is a generated integer type with named constants.
type Enum struct {
	GoName   string       `json:"go_name"`
	FullName string       `json:"full_name"`
	Doc      string       `json:"doc,omitempty"`
	Table    string       `json:"table"`     // Name of the EnumTable variable.
	NameMap  string       `json:"name_map"`  // Name of the number-to-name map.
	ValueMap string       `json:"value_map"` // Name of the name-to-number map.
	Values   []*EnumValue `json:"values"`
}

// EnumValue is one named constant.
type EnumValue struct {
	Name   string `json:"name"`
	GoName string `json:"go_name"`
	Number int32  `json:"number"`
	Doc    string `json:"doc,omitempty"`
}
