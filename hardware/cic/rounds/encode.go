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

// Encode applies one encoding pass to the primary memory, beginning at index
// start and continuing up to the next 16 nibble boundary. The nibble at start
// is used as the initial accumulator and is itself left unchanged.
//
// The seed is encoded with two passes and the checksum with four.
func Encode(mem *scratch.Primary, start int) {
	a := mem.Read(start)
	idx := start + 1
	for {
		a = a.Add(1)
		a = a.Add(mem.Read(idx))
		mem.Write(idx, a)
		idx++
		if idx&0x0f == 0 {
			break
		}
	}
}
