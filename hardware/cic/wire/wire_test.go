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

package wire_test

import (
	"testing"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/hardware/cic/wire"
	"github.com/ecpkart64/n64cic/test"
)

// fakeRegs simulates the gateware registers. the clock is high for three reads
// of the clock register and then low for three reads
type fakeRegs struct {
	reads int

	// bits presented by the peer, one per clock cycle. a cycle with no entry
	// sees the pulled-up line
	in []bool

	out    uint8
	driven map[int]bool
}

func newFakeRegs(in ...bool) *fakeRegs {
	return &fakeRegs{
		in:     in,
		out:    1,
		driven: make(map[int]bool),
	}
}

func (r *fakeRegs) cycle() int {
	return r.reads / 6
}

func (r *fakeRegs) ClockIn() uint8 {
	phase := r.reads % 6
	r.reads++
	if phase < 3 {
		return 1
	}
	return 0
}

func (r *fakeRegs) DataIn() uint8 {
	c := r.cycle()
	if c < len(r.in) && !r.in[c] {
		return 0
	}
	return 1
}

func (r *fakeRegs) DataOut(v uint8) {
	r.out = v
}

func (r *fakeRegs) OutputEnable(v uint8) {
	if v&0x01 == 0x01 && r.out&0x01 == 0x00 {
		r.driven[r.cycle()] = true
	}
}

func TestSendNibble(t *testing.T) {
	regs := newFakeRegs()
	tr := wire.NewTransport(wire.NewRegisterBus(regs))

	tr.SendNibble(0xa)

	test.ExpectEquality(t, len(regs.driven), 2)
	test.ExpectEquality(t, regs.driven[0], false)
	test.ExpectEquality(t, regs.driven[1], true)
	test.ExpectEquality(t, regs.driven[2], false)
	test.ExpectEquality(t, regs.driven[3], true)
}

func TestRecvNibble(t *testing.T) {
	regs := newFakeRegs(true, false, false, true, false, true, true, true)
	tr := wire.NewTransport(wire.NewRegisterBus(regs))

	test.ExpectEquality(t, tr.RecvNibble(), 0x9)
	test.ExpectEquality(t, tr.RecvNibble(), 0x7)

	// nothing was driven while receiving
	test.ExpectEquality(t, len(regs.driven), 0)
}

func TestSendBlock(t *testing.T) {
	var mem scratch.Primary
	for i := 0; i < scratch.PrimarySize; i++ {
		mem.Write(i, scratch.Nibble(i))
	}

	regs := newFakeRegs()
	tr := wire.NewTransport(wire.NewRegisterBus(regs))
	test.ExpectEquality(t, tr.SendBlock(&mem, 0x0a), 6)

	regs = newFakeRegs()
	tr = wire.NewTransport(wire.NewRegisterBus(regs))
	test.ExpectEquality(t, tr.SendBlock(&mem, 0x00), 16)

	// the final nibble of a block always begins a new block
	regs = newFakeRegs()
	tr = wire.NewTransport(wire.NewRegisterBus(regs))
	test.ExpectEquality(t, tr.SendBlock(&mem, 0x1f), 1)

	// 0x1f is all ones so nothing is driven
	test.ExpectEquality(t, len(regs.driven), 0)
}

func TestMonitor(t *testing.T) {
	regs := newFakeRegs(true, true)
	mon := wire.NewMonitor(wire.NewRegisterBus(regs), 0)
	tr := wire.NewTransport(mon)

	tr.SendBit(false)
	test.ExpectEquality(t, tr.RecvBit(), true)

	test.ExpectEquality(t, mon.Cycles, 2)
	test.ExpectSlice(t, mon.History(), []wire.Level{
		{Clock: false, Data: true},
		{Clock: true, Data: false},
		{Clock: false, Data: true},
		{Clock: true, Data: true},
	})

	test.ExpectEquality(t, mon.Clock.Rising(), true)
	test.ExpectEquality(t, mon.Data.Hi(), true)
}

func TestMonitorLimit(t *testing.T) {
	regs := newFakeRegs()
	mon := wire.NewMonitor(wire.NewRegisterBus(regs), 4)
	tr := wire.NewTransport(mon)

	tr.SendNibble(0x0)
	test.ExpectEquality(t, mon.Cycles, 4)
	test.ExpectEquality(t, len(mon.History()), 4)
}

func TestTrace(t *testing.T) {
	tr := wire.NewTrace("CLK")
	test.ExpectEquality(t, tr.Hi(), true)
	test.ExpectEquality(t, tr.Changed(), false)

	tr.Tick(false)
	test.ExpectEquality(t, tr.Falling(), true)
	test.ExpectEquality(t, tr.Lo(), true)

	tr.Tick(true)
	test.ExpectEquality(t, tr.Rising(), true)
	test.ExpectEquality(t, tr.Activity[len(tr.Activity)-1], true)
	test.ExpectEquality(t, tr.Activity[len(tr.Activity)-2], false)
}
