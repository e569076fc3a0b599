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

import "github.com/ecpkart64/n64cic/hardware/cic/scratch"

// Variant2 applies the variant-2 challenge algorithm to the secondary memory.
// The algorithm behaves like a multi-precision add with a carry flag that
// propagates from one nibble to the next. The result stored in each nibble is
// the complement of the accumulator, which also becomes the accumulator for
// the next nibble.
func Variant2(mem *scratch.Secondary) {
	a := uint8(5)
	carry := uint8(1)

	for i := 0; i < scratch.SecondarySize; i++ {
		v := uint8(mem.Read(i))
		if v&0x01 == 0 {
			a += 8
		}
		if a&0x02 == 0 {
			a += 4
		}
		a = (a + v) & scratch.NibbleMask

		// the intermediate accumulator replaces the input nibble and is used
		// for the remainder of the step
		v = a

		if carry == 0 {
			a += 7
		}
		a = (a + v) & scratch.NibbleMask
		a = a + v + carry
		if a >= 0x10 {
			carry = 1
			a -= 0x10
		} else {
			carry = 0
		}

		a = uint8(scratch.Nibble(a).Complement())
		mem.Write(i, scratch.Nibble(a))
	}
}
