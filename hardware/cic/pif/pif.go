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

package pif

import (
	"errors"
	"fmt"

	"github.com/ecpkart64/n64cic/hardware/cic"
	"github.com/ecpkart64/n64cic/hardware/cic/rounds"
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/logger"
)

// Session describes the requests the PIF makes of the CIC.
type Session struct {
	// the two nibbles sent to the CIC after the checksum
	Initial [2]scratch.Nibble

	// commands are issued in order. planning stops after a CmdReset or a
	// CmdDie because nothing further will happen on the bus
	Commands []cic.Command

	// the challenge for each CmdVariant2 command, in order. a missing
	// challenge is sent as all zeroes
	Variant2 [][]scratch.Nibble
}

// ErrIncomplete is returned by Verify() if the session has not run to the end
// of the plan.
var ErrIncomplete = errors.New("pif: session incomplete")

type cycle struct {
	field int
	dir   Direction

	// the bit driven by the PIF in ToCIC cycles
	bit bool
}

// PIF is a simulated peripheral interface controller. It implements the
// wire.Bus interface.
type PIF struct {
	fields []Field
	cycles []cycle

	// index of the current cycle
	current int

	// clock is currently low
	low bool

	// the CIC is driving the data line low
	cicLow bool

	// number of cycles in which both sides drove the data line
	Contention int

	// called when the plan is exhausted and the clock stops. the bus
	// blocks forever after OnStall returns
	OnStall func()
}

// NewPIF is the preferred method of initialisation for the PIF type. The
// configuration should be the same as the CIC's configuration. If it is not
// then the session will fail verification, which is sometimes what is wanted.
func NewPIF(cfg cic.Config, sess Session) (*PIF, error) {
	if err := cfg.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("pif: %w", err)
	}

	for i, v := range sess.Variant2 {
		if len(v) != scratch.SecondarySize {
			return nil, fmt.Errorf("pif: variant-2 challenge %d is %d nibbles, wanted %d", i, len(v), scratch.SecondarySize)
		}
	}

	p := &PIF{}
	p.plan(cfg, sess)

	logger.Logf(logger.Allow, "pif", "%s session planned: %d fields, %d cycles", cfg.Region, len(p.fields), len(p.cycles))

	return p, nil
}

// addField appends a field to the plan. For FromCIC fields the expected bits
// are also the planned bits. For ToCIC fields the bits are those the PIF will
// send.
func (p *PIF) addField(label string, dir Direction, bits []bool, nibbled bool) int {
	f := Field{
		Label:   label,
		Dir:     dir,
		Planned: len(bits),
		Nibbled: nibbled,
	}
	if dir == FromCIC {
		f.Expected = bits
	}
	p.fields = append(p.fields, f)
	idx := len(p.fields) - 1

	for _, b := range bits {
		p.cycles = append(p.cycles, cycle{field: idx, dir: dir, bit: b})
	}

	return idx
}

func (p *PIF) plan(cfg cic.Config, sess Session) {
	var mem scratch.Primary

	p.addField("hello", FromCIC, nibbleToBits(cfg.Region.Hello()), true)

	// seed
	seed := cfg.Constants.Seed
	mem.Write(0x0a, 0xb)
	mem.Write(0x0b, 0x5)
	mem.Write(0x0c, scratch.Nibble(seed>>4))
	mem.Write(0x0d, scratch.Nibble(seed))
	mem.Write(0x0e, scratch.Nibble(seed>>4))
	mem.Write(0x0f, scratch.Nibble(seed))
	rounds.Encode(&mem, 0x0a)
	rounds.Encode(&mem, 0x0a)
	p.addField("seed", FromCIC, nibblesToBits(mem.Low()[0x0a:]), true)

	// checksum
	for i, v := range cfg.Constants.Checksum {
		mem.Write(0x04+i, v)
	}
	for i := 0; i < 4; i++ {
		rounds.Encode(&mem, 0x00)
	}
	p.addField("checksum ready", FromCIC, []bool{false}, false)
	p.addField("checksum", FromCIC, nibblesToBits(mem.Low()), true)

	// initial values
	mem.Load(cfg.Constants.Table(cfg.Region))
	mem.Write(0x01, sess.Initial[0])
	mem.Write(0x11, sess.Initial[1])
	p.addField("initial", ToCIC, nibblesToBits(sess.Initial[:]), true)

	v2 := 0
	for i, cmd := range sess.Commands {
		p.addField(fmt.Sprintf("command %d", i), ToCIC, []bool{cmd&0b10 == 0b10, cmd&0b01 == 0b01}, false)

		switch cmd {
		case cic.CmdCompare:
			for j := 0; j < 3; j++ {
				rounds.Compare(mem.High())
			}
			ptr := int(mem.Read(0x17))
			if ptr == 0 {
				ptr = 1
			}
			ptr |= 0x10

			var expected []bool
			for {
				expected = append(expected, mem.Read(ptr).Bit(0))
				ptr += cfg.Region.ScanStep()
				if ptr&0x0f == 0 {
					break
				}
			}

			// the PIF clocks one bit in before every bit it wants out
			clk := p.addField(fmt.Sprintf("compare %d clock", i), ToCIC, nil, false)
			resp := p.addField(fmt.Sprintf("compare %d", i), FromCIC, nil, false)
			for _, b := range expected {
				p.cycles = append(p.cycles, cycle{field: clk, dir: ToCIC, bit: false})
				p.cycles = append(p.cycles, cycle{field: resp, dir: FromCIC})
				p.fields[resp].Expected = append(p.fields[resp].Expected, b)
			}
			p.fields[clk].Planned = len(expected)
			p.fields[resp].Planned = len(expected)

		case cic.CmdVariant2:
			challenge := make([]scratch.Nibble, scratch.SecondarySize)
			if v2 < len(sess.Variant2) {
				copy(challenge, sess.Variant2[v2])
			}
			v2++

			var mem2 scratch.Secondary
			for j, v := range challenge {
				mem2.Write(j, v)
			}
			rounds.Variant2(&mem2)

			p.addField(fmt.Sprintf("variant2 %d hello", i), FromCIC, nibblesToBits([]scratch.Nibble{0xa, 0xa}), true)
			p.addField(fmt.Sprintf("variant2 %d challenge", i), ToCIC, nibblesToBits(challenge), true)
			p.addField(fmt.Sprintf("variant2 %d ready", i), FromCIC, []bool{false}, false)
			p.addField(fmt.Sprintf("variant2 %d response", i), FromCIC, nibblesToBits(mem2[:]), true)

		case cic.CmdReset:
			p.addField("reset", FromCIC, []bool{false}, false)
			return

		default:
			// the CIC locks up and there will be no more bus activity
			return
		}
	}
}

// WaitClockLow implements the wire.Bus interface.
func (p *PIF) WaitClockLow() {
	if p.low {
		return
	}
	if p.current >= len(p.cycles) {
		p.stall()
	}
	p.low = true
}

// WaitClockHigh implements the wire.Bus interface.
func (p *PIF) WaitClockHigh() {
	if !p.low {
		return
	}

	c := p.cycles[p.current]
	f := &p.fields[c.field]

	switch c.dir {
	case ToCIC:
		f.Bits = append(f.Bits, c.bit)
		if !c.bit && p.cicLow {
			p.Contention++
		}
	case FromCIC:
		f.Bits = append(f.Bits, !p.cicLow)
	}

	p.low = false
	p.current++
}

// Sample implements the wire.Bus interface.
func (p *PIF) Sample() bool {
	if p.cicLow {
		return false
	}
	if p.low {
		c := p.cycles[p.current]
		if c.dir == ToCIC {
			return c.bit
		}
	}
	return true
}

// DriveLow implements the wire.Bus interface.
func (p *PIF) DriveLow() {
	p.cicLow = true
}

// Release implements the wire.Bus interface.
func (p *PIF) Release() {
	p.cicLow = false
}

func (p *PIF) stall() {
	logger.Log(logger.Allow, "pif", "clock stopped")
	if p.OnStall != nil {
		p.OnStall()
	}
	select {}
}

// Cycles returns the number of completed clock cycles and the number of
// cycles in the plan.
func (p *PIF) Cycles() (int, int) {
	return p.current, len(p.cycles)
}

// Complete returns true if every planned cycle has happened.
func (p *PIF) Complete() bool {
	return p.current == len(p.cycles)
}

// Fields returns a copy of the session fields in the order they are
// transferred.
func (p *PIF) Fields() []Field {
	f := make([]Field, len(p.fields))
	copy(f, p.fields)
	return f
}

// Field returns the named field.
func (p *PIF) Field(label string) (Field, bool) {
	for _, f := range p.fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// Verify checks that every bit received from the CIC so far is correct. If
// all bits are correct but the session is not complete then ErrIncomplete is
// returned.
//
// The expected responses are produced by the same round functions that the
// CIC uses. Verify therefore confirms the transport, the sequencing and the
// memory handling of a session but not the round algorithms themselves,
// which are checked against fixed vectors in their own tests.
func (p *PIF) Verify() error {
	for _, f := range p.fields {
		if !f.Match() {
			return fmt.Errorf("pif: %s: unexpected response: %s", f.Label, f.String())
		}
	}
	if p.Contention > 0 {
		return fmt.Errorf("pif: bus contention in %d cycles", p.Contention)
	}
	if !p.Complete() {
		return ErrIncomplete
	}
	return nil
}
