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

// Bus is the capability interface to the clock and data signals.
type Bus interface {
	// WaitClockLow blocks until the clock signal is low
	WaitClockLow()

	// WaitClockHigh blocks until the clock signal is high
	WaitClockHigh()

	// Sample returns the current level of the data line. true indicates a
	// high level
	Sample() bool

	// DriveLow asserts the data line output. The line remains low until
	// Release() is called
	DriveLow()

	// Release puts the data line output into a high impedence state
	Release()
}

// Registers is the memory mapped register interface of the CIC peripheral in
// the gateware. Only bit zero of each register is significant.
type Registers interface {
	ClockIn() uint8
	DataIn() uint8
	DataOut(v uint8)
	OutputEnable(v uint8)
}

type registerBus struct {
	regs Registers
}

// NewRegisterBus creates a Bus that busy-polls the supplied registers.
func NewRegisterBus(regs Registers) Bus {
	return &registerBus{regs: regs}
}

func (b *registerBus) WaitClockLow() {
	for b.regs.ClockIn()&0x01 == 0x01 {
	}
}

func (b *registerBus) WaitClockHigh() {
	for b.regs.ClockIn()&0x01 == 0x00 {
	}
}

func (b *registerBus) Sample() bool {
	return b.regs.DataIn()&0x01 == 0x01
}

func (b *registerBus) DriveLow() {
	b.regs.DataOut(0)
	b.regs.OutputEnable(1)
}

func (b *registerBus) Release() {
	b.regs.OutputEnable(0)
}
