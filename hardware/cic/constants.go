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

package cic

import (
	"fmt"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// ChecksumSize is the number of nibbles in the checksum.
const ChecksumSize = 12

// Constants are the secret values of a particular CIC. They are fixed when the
// firmware is built.
type Constants struct {
	Seed     uint8
	Checksum []scratch.Nibble
	NTSC     []scratch.Nibble
	PAL      []scratch.Nibble
}

var cic6102Checksum = []scratch.Nibble{
	0xa, 0x5, 0x3, 0x6, 0xc, 0x0, 0xf, 0x1, 0xd, 0x8, 0x5, 0x9,
}

var ramInitNTSC = []scratch.Nibble{
	0xe, 0x0, 0x9, 0xa, 0x1, 0x8, 0x5, 0xa, 0x1, 0x3, 0xe, 0x1, 0x0, 0xd, 0xe, 0xc,
	0x0, 0xb, 0x1, 0x4, 0xf, 0x8, 0xb, 0x5, 0x7, 0xc, 0xd, 0x6, 0x1, 0xe, 0x9, 0x8,
}

var ramInitPAL = []scratch.Nibble{
	0xe, 0x0, 0x4, 0xf, 0x5, 0x1, 0x2, 0x1, 0x7, 0x1, 0x9, 0x8, 0x5, 0x7, 0x5, 0xa,
	0x0, 0xb, 0x1, 0x2, 0x3, 0xf, 0x8, 0x2, 0x7, 0x1, 0x9, 0x8, 0x1, 0x1, 0x5, 0xc,
}

// CIC6102 returns the constants for the CIC-NUS-6102 and its PAL equivalent,
// the CIC-NUS-7101. These are the chips found in most cartridges.
func CIC6102() Constants {
	return Constants{
		Seed:     0x3f,
		Checksum: append([]scratch.Nibble{}, cic6102Checksum...),
		NTSC:     append([]scratch.Nibble{}, ramInitNTSC...),
		PAL:      append([]scratch.Nibble{}, ramInitPAL...),
	}
}

// Table returns the memory initialisation table for the region.
func (k Constants) Table(r Region) []scratch.Nibble {
	if r == PAL {
		return k.PAL
	}
	return k.NTSC
}

// Validate checks that the size of every table is correct and that every
// entry is a nibble.
func (k Constants) Validate() error {
	check := func(name string, t []scratch.Nibble, size int) error {
		if len(t) != size {
			return fmt.Errorf("cic: %s table is %d nibbles, wanted %d", name, len(t), size)
		}
		for i, v := range t {
			if v > scratch.NibbleMask {
				return fmt.Errorf("cic: %s table entry %d is not a nibble (%#02x)", name, i, uint8(v))
			}
		}
		return nil
	}

	if err := check("checksum", k.Checksum, ChecksumSize); err != nil {
		return err
	}
	if err := check("NTSC", k.NTSC, scratch.PrimarySize); err != nil {
		return err
	}
	if err := check("PAL", k.PAL, scratch.PrimarySize); err != nil {
		return err
	}

	return nil
}
