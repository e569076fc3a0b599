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

package rounds

import (
	"fmt"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// Compare applies one pass of the compare challenge algorithm to a block of 16
// nibbles. The compare challenge applies this three times to the high half of
// primary memory before responding to the PIF.
//
// The order of additions, exchanges and complements is significant. Changing
// the order changes the response and the PIF will reject the cartridge.
func Compare(m []scratch.Nibble) {
	if len(m) != scratch.BlockSize {
		panic(fmt.Sprintf("rounds: compare block is %d nibbles, wanted %d", len(m), scratch.BlockSize))
	}

	// the accumulator is a full byte. it is only masked when it is stored or
	// where the wider value is not consulted
	var a uint8

	// the outer loop counts down from the last nibble in the block and stops
	// when it wraps back round to 15
	x := m[15] & scratch.NibbleMask
	a = uint8(x)

	for {
		b := 1

		a = (a + uint8(m[b]) + 1) & scratch.NibbleMask
		m[b] = scratch.Nibble(a)
		b++

		a = (a + uint8(m[b]) + 1) & scratch.NibbleMask
		a, m[b] = uint8(m[b]), scratch.Nibble(a)
		m[b] = m[b].Complement()
		b++

		// the exchange only happens if the unmasked sum fits in four bits
		a += uint8(m[b]) + 1
		if a < 16 {
			a, m[b] = uint8(m[b]), scratch.Nibble(a)
			b++
		}

		a = (a + uint8(m[b])) & scratch.NibbleMask
		m[b] = scratch.Nibble(a)
		b++

		a = (a + uint8(m[b])) & scratch.NibbleMask
		a, m[b] = uint8(m[b]), scratch.Nibble(a)
		b++

		a += 8
		if a < 16 {
			a += uint8(m[b])
		}
		a &= scratch.NibbleMask
		a, m[b] = uint8(m[b]), scratch.Nibble(a)
		b++

		// b is never zero at this point so the wrap loop always touches at
		// least one nibble
		for ; b != 0; b = (b + 1) & 0x0f {
			a = (a + uint8(m[b]) + 1) & scratch.NibbleMask
			m[b] = scratch.Nibble(a)
		}

		x = (x + 0x0f) & scratch.NibbleMask
		a = uint8(x)
		if x == 0x0f {
			break
		}
	}
}
