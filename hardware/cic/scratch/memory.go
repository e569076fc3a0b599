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

import "fmt"

// Sizes of the scratch memories and of the blocks the primary memory is
// divided into.
const (
	PrimarySize   = 32
	SecondarySize = 30
	BlockSize     = 16
)

// Primary is the main scratch memory of the CIC.
type Primary [PrimarySize]Nibble

func (p *Primary) check(idx int) {
	if idx < 0 || idx >= PrimarySize {
		panic(fmt.Sprintf("scratch: primary index out of range (%#02x)", idx))
	}
}

// Read the nibble at index.
func (p *Primary) Read(idx int) Nibble {
	p.check(idx)
	return p[idx]
}

// Write a nibble to index. The value is masked to 4 bits.
func (p *Primary) Write(idx int, v Nibble) {
	p.check(idx)
	p[idx] = v & NibbleMask
}

// Low returns the low half of memory (0x00 to 0x0f). The returned slice
// shares storage with the memory.
func (p *Primary) Low() []Nibble {
	return p[:BlockSize]
}

// High returns the high half of memory (0x10 to 0x1f). The returned slice
// shares storage with the memory.
func (p *Primary) High() []Nibble {
	return p[BlockSize:]
}

// Load the entire memory from a table. The table must be exactly PrimarySize
// nibbles long.
func (p *Primary) Load(table []Nibble) {
	if len(table) != PrimarySize {
		panic(fmt.Sprintf("scratch: table is %d nibbles, wanted %d", len(table), PrimarySize))
	}
	for i, v := range table {
		p[i] = v & NibbleMask
	}
}

// Reset memory to zero.
func (p *Primary) Reset() {
	*p = Primary{}
}

func (p *Primary) String() string {
	return fmt.Sprintf("%s %s", FormatNibbles(p.Low()), FormatNibbles(p.High()))
}

// Secondary is the scratch memory used by the variant-2 challenge.
type Secondary [SecondarySize]Nibble

func (s *Secondary) check(idx int) {
	if idx < 0 || idx >= SecondarySize {
		panic(fmt.Sprintf("scratch: secondary index out of range (%#02x)", idx))
	}
}

// Read the nibble at index.
func (s *Secondary) Read(idx int) Nibble {
	s.check(idx)
	return s[idx]
}

// Write a nibble to index. The value is masked to 4 bits.
func (s *Secondary) Write(idx int, v Nibble) {
	s.check(idx)
	s[idx] = v & NibbleMask
}

// Reset memory to zero.
func (s *Secondary) Reset() {
	*s = Secondary{}
}

func (s *Secondary) String() string {
	return FormatNibbles(s[:])
}
