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
	"fmt"
	"math"
	"strconv"
	"strings"

	"buf.build/go/protolite/internal/dbg"
	"buf.build/go/protolite/internal/zigzag"
)

// Format renders m in a compact, single-line text form, for logging and
// debugging:
//
//	id: 300 name: "hello" child: {flag: true} tags: "a" tags: "b"
//
// Only present fields are printed, in field number order; a repeated field
// is printed once per element. The output is not stable and must not be
// parsed.
func Format(m Message) string {
	if m == nil {
		return "<nil>"
	}
	p := new(printer)
	p.fields(m)
	return p.String()
}

// printer accumulates the output of [Format].
type printer struct {
	strings.Builder
	started bool
}

func (p *printer) fields(m Message) {
	fields := m.MessageInfo().fields
	for i := range fields {
		if fields[i].ops.present(m) {
			fields[i].ops.format(p, &fields[i], m)
		}
	}
}

func (p *printer) key(f *Field) {
	if p.started {
		p.WriteByte(' ')
	}
	p.started = true
	p.WriteString(f.Name)
	p.WriteString(": ")
}

// scalar prints the raw wire value of a varint or fixed-width field.
func (p *printer) scalar(f *Field, bits uint64) {
	p.key(f)

	var s string
	switch f.Kind {
	case BoolKind:
		s = strconv.FormatBool(bits != 0)
	case EnumKind:
		if f.Enum != nil {
			s = f.Enum.Format(int32(bits))
		} else {
			s = strconv.Itoa(int(int32(bits)))
		}
	case Int32Kind, Sfixed32Kind:
		s = strconv.FormatInt(int64(int32(bits)), 10)
	case Sint32Kind:
		s = strconv.FormatInt(int64(zigzag.Decode[int32](bits)), 10)
	case Uint32Kind, Fixed32Kind:
		s = strconv.FormatUint(uint64(uint32(bits)), 10)
	case Int64Kind, Sfixed64Kind:
		s = strconv.FormatInt(int64(bits), 10)
	case Sint64Kind:
		s = strconv.FormatInt(zigzag.Decode[int64](bits), 10)
	case Uint64Kind, Fixed64Kind:
		s = strconv.FormatUint(bits, 10)
	case FloatKind:
		s = strconv.FormatFloat(float64(math.Float32frombits(uint32(bits))), 'g', -1, 32)
	case DoubleKind:
		s = strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64)
	default:
		s = fmt.Sprintf("%#x", bits)
	}
	p.WriteString(s)
}

func (p *printer) string(f *Field, v string) {
	p.key(f)
	p.WriteString(strconv.Quote(v))
}

func (p *printer) bytes(f *Field, v []byte) {
	p.key(f)
	p.WriteString(strconv.Quote(string(v)))
}

func (p *printer) message(f *Field, m Message) {
	p.key(f)
	p.WriteByte('{')
	if m != nil {
		p.started = false
		p.fields(m)
	}
	p.WriteByte('}')
	p.started = true
}

// Format implements [fmt.Formatter]. It is only intended for debugging.
func (f *Field) Format(s fmt.State, verb rune) {
	var enum any
	if f.Enum != nil {
		enum = f.Enum.FullName()
	}
	dbg.Dict(
		dbg.Fprintf("%s#%d", f.fullName, f.Number),
		"kind", f.Kind,
		"repeated", f.Repeated,
		"packed", f.Packed,
		"enum", enum,
	).Format(s, verb)
}

// Format implements [fmt.Formatter]. The %v verb prints the name; %+v
// prints the whole field table.
func (mi *MessageInfo) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		fmt.Fprint(s, mi.name)
		return
	}
	fmt.Fprintf(s, "%s{", mi.name)
	for i := range mi.fields {
		if i > 0 {
			fmt.Fprint(s, ", ")
		}
		fmt.Fprintf(s, "%v", &mi.fields[i])
	}
	fmt.Fprint(s, "}")
}
