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
	"errors"
	"fmt"

	"buf.build/go/protolite/internal/typemap"
)

// Errors that a [GenerationError] may wrap.
var (
	ErrFieldNumberConflict = errors.New("field number used more than once")
	ErrInvalidFieldNumber  = errors.New("field number out of range")
	ErrNameCollision       = errors.New("generated name collides with another declaration")
	ErrMissingEnumDefault  = errors.New("enum has no zero value")
	ErrMalformedDefault    = typemap.ErrMalformedDefault
	ErrUnresolvedType      = errors.New("unresolved type")
	ErrUnsupported         = errors.New("unsupported construct")
)

// GenerationError is returned when a file cannot be represented as Go code.
// It names the schema element at fault.
type GenerationError struct {
	File    string
	Element string // Full name of the offending declaration, if any.
	Err     error
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Error implements [error].
func (e *GenerationError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.File, e.Element, e.Err)
}
