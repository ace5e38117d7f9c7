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

// Package protolite is the runtime library for code generated by
// protoc-gen-protolite.
//
// Generated message types are plain Go structs. Each one carries a
// [MessageInfo], a table with one [Field] per schema field, and all of the
// wire-format logic lives in this package and is driven by that table:
// generated code only supplies accessors for its own storage slots.
//
// # Message lifecycle
//
// A message is created in the all-defaults state by its generated NewX
// function (or [MessageInfo.New]). It is mutated through setters or by
// decoding, and it is returned to the all-defaults state by Clear.
//
// A message exclusively owns every nested message it holds. Replacing or
// clearing a message-typed field detaches the previous value and clears it,
// transitively; callers must not keep using a value after handing it to a
// setter.
//
// # Presence
//
// Singular scalar fields have implicit presence: a field is absent exactly
// when it holds its default value, and absent fields are never written to
// the wire. Message fields are present when set. Repeated fields are present
// when non-empty.
//
// # Decoding merges
//
// [Unmarshal] and [Decode] merge into the existing state of a message:
// scalars are overwritten, repeated fields are appended to, and singular
// message fields are replaced by a newly decoded value. To replace the
// contents of a message instead, call Clear first.
//
// Unknown fields are skipped. A decode error leaves the message in an
// unspecified, partially merged state; it should be discarded.
//
// # Concurrency
//
// Messages are not safe for concurrent mutation, exactly like any other Go
// struct. Encoding a message that is not being mutated concurrently is safe.
package protolite
