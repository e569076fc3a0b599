// This file is part of n64cic.
//
// n64cic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cic.  If not, see <https://www.gnu.org/licenses/>.

package pif

import (
	"fmt"
	"strings"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// Direction of a transfer on the bus.
type Direction int

// List of valid Direction values.
const (
	ToCIC Direction = iota
	FromCIC
)

func (d Direction) String() string {
	if d == ToCIC {
		return "pif->cic"
	}
	return "cic->pif"
}

// Field is a named group of bits in a session. Bits are recorded as they are
// transferred so a Field that is only partially complete is possible.
type Field struct {
	Label string
	Dir   Direction

	// bits as seen on the bus
	Bits []bool

	// the bits that the CIC should send. only used when Dir is FromCIC
	Expected []bool

	// number of bits planned for the field
	Planned int

	// the field is made up of nibbles rather than individual bits
	Nibbled bool
}

// Nibbles returns the bits of the field as nibbles, most significant bit
// first. Incomplete nibbles are ignored.
func (f Field) Nibbles() []scratch.Nibble {
	return bitsToNibbles(f.Bits)
}

// Match returns true if every bit received so far is the expected bit.
func (f Field) Match() bool {
	if f.Dir != FromCIC {
		return true
	}
	for i, b := range f.Bits {
		if i >= len(f.Expected) || b != f.Expected[i] {
			return false
		}
	}
	return true
}

// Complete returns true if all planned bits of the field have been
// transferred.
func (f Field) Complete() bool {
	return len(f.Bits) == f.Planned
}

// Value returns the transferred bits as a string. Fields made up of nibbles
// are shown in hex, otherwise each bit is shown as 0 or 1.
func (f Field) Value() string {
	return formatBits(f.Bits, f.Nibbled)
}

// ExpectedValue is like Value() but for the expected bits.
func (f Field) ExpectedValue() string {
	return formatBits(f.Expected, f.Nibbled)
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s %s", f.Dir, f.Label, f.Value())
}

func formatBits(b []bool, nibbled bool) string {
	if nibbled {
		return scratch.FormatNibbles(bitsToNibbles(b))
	}
	s := strings.Builder{}
	for _, v := range b {
		if v {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

func nibbleToBits(n scratch.Nibble) []bool {
	return []bool{n&0x08 == 0x08, n&0x04 == 0x04, n&0x02 == 0x02, n&0x01 == 0x01}
}

func nibblesToBits(n []scratch.Nibble) []bool {
	b := make([]bool, 0, len(n)*4)
	for _, v := range n {
		b = append(b, nibbleToBits(v)...)
	}
	return b
}

func bitsToNibbles(b []bool) []scratch.Nibble {
	n := make([]scratch.Nibble, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		var v scratch.Nibble
		for _, x := range b[i : i+4] {
			v <<= 1
			if x {
				v |= 0x01
			}
		}
		n = append(n, v)
	}
	return n
}
