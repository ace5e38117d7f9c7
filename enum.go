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

package protolite

import (
	"maps"
	"slices"
	"strconv"
)

// EnumValue is a single declared enum constant.
type EnumValue struct {
	Name   string
	Number int32
}

// EnumTable is the bidirectional name/number mapping for a generated enum.
//
// Every declared constant is kept, including aliases that share a number
// with an earlier constant. Looking up a number yields the first declared
// name for it.
type EnumTable struct {
	name     string
	values   []EnumValue
	byNumber map[int32]string
	byName   map[string]int32
}

// NewEnumTable builds an enum table. values must be in declaration order.
func NewEnumTable(name string, values ...EnumValue) *EnumTable {
	t := &EnumTable{
		name:     name,
		values:   slices.Clone(values),
		byNumber: make(map[int32]string, len(values)),
		byName:   make(map[string]int32, len(values)),
	}
	for _, v := range values {
		if _, ok := t.byNumber[v.Number]; !ok {
			t.byNumber[v.Number] = v.Name
		}
		t.byName[v.Name] = v.Number
	}
	return t
}

// FullName returns the fully-qualified schema name of the enum.
func (t *EnumTable) FullName() string {
	return t.name
}

// Values returns every declared constant, in declaration order.
//
// The returned slice must not be modified.
func (t *EnumTable) Values() []EnumValue {
	return t.values
}

// Default returns the default constant: the first one declared with the
// number zero. Returns false if there is none, which the generator rejects.
func (t *EnumTable) Default() (EnumValue, bool) {
	name, ok := t.byNumber[0]
	return EnumValue{Name: name}, ok
}

// Name returns the first declared name for n.
func (t *EnumTable) Name(n int32) (string, bool) {
	name, ok := t.byNumber[n]
	return name, ok
}

// Number returns the number for the constant with the given name.
func (t *EnumTable) Number(name string) (int32, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// IsKnown reports whether n is the number of some declared constant.
//
// Enums are open: a field may hold any number, and unknown ones survive a
// decode/encode round trip unchanged.
func (t *EnumTable) IsKnown(n int32) bool {
	_, ok := t.byNumber[n]
	return ok
}

// Format returns the name for n, or n in decimal if it is unknown.
func (t *EnumTable) Format(n int32) string {
	if name, ok := t.byNumber[n]; ok {
		return name
	}
	return strconv.Itoa(int(n))
}

// NameMap returns a fresh number-to-name map.
func (t *EnumTable) NameMap() map[int32]string {
	return maps.Clone(t.byNumber)
}

// ValueMap returns a fresh name-to-number map, which includes aliases.
func (t *EnumTable) ValueMap() map[string]int32 {
	return maps.Clone(t.byName)
}
