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

package wire

import (
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// Transport sends and receives bits and nibbles over a Bus.
type Transport struct {
	bus Bus
}

// NewTransport is the preferred method of initialisation for the Transport type.
func NewTransport(bus Bus) *Transport {
	return &Transport{bus: bus}
}

// RecvBit waits for the clock to go low, samples the data line and then waits
// for the clock to go high.
func (t *Transport) RecvBit() bool {
	t.bus.WaitClockLow()
	b := t.bus.Sample()
	t.bus.WaitClockHigh()
	return b
}

// SendBit waits for the clock to go low and drives the data line low if the
// bit is zero. The line is released once the clock has returned high.
func (t *Transport) SendBit(b bool) {
	t.bus.WaitClockLow()
	if !b {
		t.bus.DriveLow()
	}
	t.bus.WaitClockHigh()
	t.bus.Release()
}

// RecvNibble receives four bits, most significant bit first.
func (t *Transport) RecvNibble() scratch.Nibble {
	var n scratch.Nibble
	for i := 0; i < 4; i++ {
		n <<= 1
		if t.RecvBit() {
			n |= 0x01
		}
	}
	return n
}

// SendNibble sends four bits, most significant bit first.
func (t *Transport) SendNibble(n scratch.Nibble) {
	t.SendBit(n&0x08 == 0x08)
	t.SendBit(n&0x04 == 0x04)
	t.SendBit(n&0x02 == 0x02)
	t.SendBit(n&0x01 == 0x01)
}

// SendBlock sends nibbles from primary memory, beginning at idx and stopping
// when the index reaches the next 16 nibble boundary. At least one nibble is
// always sent. Returns the number of nibbles sent.
func (t *Transport) SendBlock(mem *scratch.Primary, idx int) int {
	n := 0
	for {
		t.SendNibble(mem.Read(idx))
		n++
		idx++
		if idx&0x0f == 0 {
			break
		}
	}
	return n
}
