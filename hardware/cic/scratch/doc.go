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

// Package scratch models the internal working memory of the CIC. Memory is
// organised as nibbles (4-bit values) stored in 8-bit cells.
//
// There are two independent memories. The Primary memory is 32 nibbles in
// size and is used by the handshake, the seed and checksum delivery and the
// compare challenge. The low half (0x00 to 0x0f) is used for the handshake
// and the high half (0x10 to 0x1f) for the compare challenge. The Secondary
// memory is 30 nibbles in size and is used only by the variant-2 challenge.
//
// Every write is masked to four bits so that a cell never holds a value
// outside of the range 0 to 15. Indexing outside of a memory is a programming
// error and causes a panic.
package scratch
