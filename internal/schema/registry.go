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

package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

var (
	// ErrDuplicate is returned when a file or a type is added twice.
	ErrDuplicate = errors.New("duplicate declaration")
	// ErrUnresolved is returned by [Registry.Resolve] for type names that
	// do not name any known message or enum.
	ErrUnresolved = errors.New("unresolved type name")
)

// Field numbers within DescriptorProto and friends, used to build
// SourceCodeInfo paths.
const (
	fileMessages = 4
	fileEnums    = 5
	fileSyntax   = 12
	msgFields    = 2
	msgNested    = 3
	msgEnums     = 4
	enumValues   = 2
)

// Registry indexes a set of files and the types they declare.
type Registry struct {
	files    []*File
	byPath   map[string]*File
	messages map[string]*Message
	enums    map[string]*Enum
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPath:   make(map[string]*File),
		messages: make(map[string]*Message),
		enums:    make(map[string]*Enum),
	}
}

// Files returns every file added so far, in the order they were added.
func (r *Registry) Files() []*File {
	return r.files
}

// File returns the file with the given path, or nil.
func (r *Registry) File(path string) *File {
	return r.byPath[path]
}

// Message returns the message with the given full name, or nil.
func (r *Registry) Message(name string) *Message {
	return r.messages[strings.TrimPrefix(name, ".")]
}

// Enum returns the enum with the given full name, or nil.
func (r *Registry) Enum(name string) *Enum {
	return r.enums[strings.TrimPrefix(name, ".")]
}

// AddFile converts fd into the model and indexes it.
//
// Type references are not bound until [Registry.Resolve] is called, so files
// may be added in any order.
func (r *Registry) AddFile(fd *descriptorpb.FileDescriptorProto) (*File, error) {
	if _, ok := r.byPath[fd.GetName()]; ok {
		return nil, fmt.Errorf("schema: file %q: %w", fd.GetName(), ErrDuplicate)
	}

	b := builder{
		r:        r,
		comments: comments(fd.GetSourceCodeInfo()),
	}
	f := &File{
		Name:      fd.GetName(),
		Package:   fd.GetPackage(),
		Syntax:    syntax(fd),
		GoPackage: fd.GetOptions().GetGoPackage(),
		Deps:      fd.GetDependency(),
		Doc:       b.doc(path{fileSyntax}),
	}
	b.file = f

	for _, ext := range fd.GetExtension() {
		f.Extensions = append(f.Extensions, join(f.Package, ext.GetName()))
	}
	for i, ed := range fd.GetEnumType() {
		e, err := b.enum(ed, nil, path{fileEnums, int32(i)})
		if err != nil {
			return nil, err
		}
		f.Enums = append(f.Enums, e)
	}
	for i, md := range fd.GetMessageType() {
		m, err := b.message(md, nil, path{fileMessages, int32(i)})
		if err != nil {
			return nil, err
		}
		f.Messages = append(f.Messages, m)
	}

	// Only index once the whole file converted cleanly.
	for name, m := range b.messages {
		r.messages[name] = m
	}
	for name, e := range b.enums {
		r.enums[name] = e
	}
	r.files = append(r.files, f)
	r.byPath[f.Name] = f
	return f, nil
}

// Resolve binds the Message and Enum of every field that names a type.
//
// Fields whose type cannot be found are left unbound, and reported together
// in the returned error; every other field is still resolved.
func (r *Registry) Resolve() error {
	var errs []error
	for _, f := range r.files {
		f.Walk(func(m *Message) bool {
			for _, fld := range m.Fields {
				switch fld.Kind {
				case MessageKind, GroupKind:
					fld.Message = r.messages[fld.TypeName]
					if fld.Message == nil {
						errs = append(errs, fmt.Errorf("schema: %s: %w %q", fld.FullName(), ErrUnresolved, fld.TypeName))
					}
				case EnumKind:
					fld.Enum = r.enums[fld.TypeName]
					if fld.Enum == nil {
						errs = append(errs, fmt.Errorf("schema: %s: %w %q", fld.FullName(), ErrUnresolved, fld.TypeName))
					}
				}
			}
			return true
		})
	}
	return errors.Join(errs...)
}

// Build is a convenience for building a registry out of a whole request.
func Build(fds []*descriptorpb.FileDescriptorProto) (*Registry, error) {
	r := NewRegistry()
	for _, fd := range fds {
		if _, err := r.AddFile(fd); err != nil {
			return nil, err
		}
	}
	return r, r.Resolve()
}

type builder struct {
	r        *Registry
	file     *File
	comments map[string]string

	// Pending index entries for the file being built.
	messages map[string]*Message
	enums    map[string]*Enum
}

func (b *builder) message(md *descriptorpb.DescriptorProto, parent *Message, p path) (*Message, error) {
	m := &Message{
		Name:     md.GetName(),
		FullName: b.fullName(parent, md.GetName()),
		Parent:   parent,
		File:     b.file,
		Doc:      b.doc(p),
		MapEntry: md.GetOptions().GetMapEntry(),
	}
	if err := b.declare(m.FullName); err != nil {
		return nil, err
	}
	if b.messages == nil {
		b.messages = make(map[string]*Message)
	}
	b.messages[m.FullName] = m

	for _, od := range md.GetOneofDecl() {
		m.Oneofs = append(m.Oneofs, od.GetName())
	}
	for _, ext := range md.GetExtension() {
		m.Extensions = append(m.Extensions, m.FullName+"."+ext.GetName())
	}

	for i, fd := range md.GetField() {
		f := &Field{
			Name:           fd.GetName(),
			JSONName:       fd.GetJsonName(),
			Number:         fd.GetNumber(),
			Kind:           Kind(fd.GetType()),
			TypeName:       strings.TrimPrefix(fd.GetTypeName(), "."),
			Default:        fd.GetDefaultValue(),
			HasDefault:     fd.DefaultValue != nil,
			Proto3Optional: fd.GetProto3Optional(),
			Doc:            b.doc(p.with(msgFields, i)),
			Parent:         m,
		}
		if fd.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED {
			f.Label = Repeated
		}
		if fd.OneofIndex != nil {
			if i := int(fd.GetOneofIndex()); i >= 0 && i < len(m.Oneofs) {
				f.Oneof = m.Oneofs[i]
			}
		}
		m.Fields = append(m.Fields, f)
	}

	for i, ed := range md.GetEnumType() {
		e, err := b.enum(ed, m, p.with(msgEnums, i))
		if err != nil {
			return nil, err
		}
		m.Enums = append(m.Enums, e)
	}
	for i, nd := range md.GetNestedType() {
		n, err := b.message(nd, m, p.with(msgNested, i))
		if err != nil {
			return nil, err
		}
		m.Messages = append(m.Messages, n)
	}
	return m, nil
}

func (b *builder) enum(ed *descriptorpb.EnumDescriptorProto, parent *Message, p path) (*Enum, error) {
	e := &Enum{
		Name:     ed.GetName(),
		FullName: b.fullName(parent, ed.GetName()),
		Parent:   parent,
		File:     b.file,
		Doc:      b.doc(p),
	}
	if err := b.declare(e.FullName); err != nil {
		return nil, err
	}
	if b.enums == nil {
		b.enums = make(map[string]*Enum)
	}
	b.enums[e.FullName] = e

	for i, vd := range ed.GetValue() {
		e.Values = append(e.Values, &EnumValue{
			Name:   vd.GetName(),
			Number: vd.GetNumber(),
			Doc:    b.doc(p.with(enumValues, i)),
		})
	}
	return e, nil
}

func (b *builder) declare(name string) error {
	_, m1 := b.r.messages[name]
	_, e1 := b.r.enums[name]
	_, m2 := b.messages[name]
	_, e2 := b.enums[name]
	if m1 || e1 || m2 || e2 {
		return fmt.Errorf("schema: %s: type %q: %w", b.file.Name, name, ErrDuplicate)
	}
	return nil
}

func (b *builder) fullName(parent *Message, name string) string {
	if parent != nil {
		return parent.FullName + "." + name
	}
	return join(b.file.Package, name)
}

func (b *builder) doc(p path) string {
	return b.comments[p.key()]
}

func join(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func syntax(fd *descriptorpb.FileDescriptorProto) string {
	switch fd.GetSyntax() {
	case "", "proto2":
		return "proto2"
	default:
		return fd.GetSyntax()
	}
}

// path is a SourceCodeInfo location path.
type path []int32

func (p path) with(field int32, index int) path {
	return append(p[:len(p):len(p)], field, int32(index))
}

func (p path) key() string {
	var sb strings.Builder
	for i, n := range p {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(n)))
	}
	return sb.String()
}

// comments indexes the leading comments of sci by path. The trailing newline
// that protoc leaves on every comment is removed.
func comments(sci *descriptorpb.SourceCodeInfo) map[string]string {
	out := make(map[string]string)
	for _, loc := range sci.GetLocation() {
		if loc.LeadingComments == nil {
			continue
		}
		key := path(loc.GetPath()).key()
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = strings.TrimSuffix(loc.GetLeadingComments(), "\n")
	}
	return out
}
