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

package scratch

import (
	"fmt"
	"strings"
)

// Nibble is a 4-bit value stored in an 8-bit cell.
type Nibble uint8

// NibbleMask is applied to the result of all nibble arithmetic.
const NibbleMask = 0x0f

// Complement returns the 4-bit NOT of the nibble.
func (n Nibble) Complement() Nibble {
	return NibbleMask - (n & NibbleMask)
}

// Add returns the sum of two nibbles, modulo 16.
func (n Nibble) Add(m Nibble) Nibble {
	return (n + m) & NibbleMask
}

// Bit returns true if bit i (0 is least significant) of the nibble is set.
func (n Nibble) Bit(i int) bool {
	return (n>>i)&0x01 == 0x01
}

func (n Nibble) String() string {
	return fmt.Sprintf("%x", uint8(n&NibbleMask))
}

// ParseNibbles converts a string of hexadecimal digits into a slice of nibbles.
// Each digit is one nibble. Spaces, commas and underscores are allowed between
// digits to help readability.
func ParseNibbles(s string) ([]Nibble, error) {
	n := make([]Nibble, 0, len(s))
	for i, r := range strings.ToLower(s) {
		switch {
		case r >= '0' && r <= '9':
			n = append(n, Nibble(r-'0'))
		case r >= 'a' && r <= 'f':
			n = append(n, Nibble(r-'a'+10))
		case r == ' ' || r == ',' || r == '_':
		default:
			return nil, fmt.Errorf("scratch: not a hex digit %q at position %d", r, i)
		}
	}
	return n, nil
}

// FormatNibbles is the inverse of ParseNibbles(). It produces a string of
// lowercase hexadecimal digits with no separators.
func FormatNibbles(n []Nibble) string {
	s := strings.Builder{}
	for _, v := range n {
		s.WriteString(v.String())
	}
	return s.String()
}
