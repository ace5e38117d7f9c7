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

// Equal reports whether a and b are messages of the same type with equal
// field values. Nested messages are compared deeply.
//
// Float fields compare as Go values do, so a NaN is never equal to
// anything.
func Equal(a, b Message) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.MessageInfo() != b.MessageInfo() {
		return false
	}
	return equal(a, b)
}

func equal(a, b Message) bool {
	fields := a.MessageInfo().fields
	for i := range fields {
		if !fields[i].ops.equal(a, b) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m, which must not be nil. The copy owns all
// of its nested messages and shares no storage with m.
func Clone[M Message](m M) M {
	c := m.MessageInfo().New().(M)
	copyMessage(c, m)
	return c
}

// copyMessage deep-copies the present fields of src into dst, which must be
// in the all-defaults state.
func copyMessage(dst, src Message) {
	fields := src.MessageInfo().fields
	for i := range fields {
		if fields[i].ops.present(src) {
			fields[i].ops.copy(dst, src)
		}
	}
}
