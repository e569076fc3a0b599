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

package cic_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/ecpkart64/n64cic/hardware/cic"
	"github.com/ecpkart64/n64cic/hardware/cic/pif"
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/hardware/cic/wire"
	"github.com/ecpkart64/n64cic/test"
)

func bits(s string) []bool {
	b := make([]bool, 0, len(s))
	for _, r := range s {
		b = append(b, r == '1')
	}
	return b
}

// session runs a complete session against the simulated PIF. the session
// must end with a reset or an abort
func session(t *testing.T, cfg cic.Config, sess pif.Session, abort cic.AbortQuery) (*cic.CIC, *pif.PIF, []cic.Marker) {
	t.Helper()

	p, err := pif.NewPIF(cfg, sess)
	test.DemandSuccess(t, err)

	c, err := cic.NewCIC(cfg, p, abort)
	test.DemandSuccess(t, err)

	var markers []cic.Marker
	c.SetMarkerHook(func(m cic.Marker) {
		markers = append(markers, m)
	})

	st, err := c.Run()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st, c.State())

	return c, p, markers
}

func field(t *testing.T, p *pif.PIF, label string) pif.Field {
	t.Helper()
	f, ok := p.Field(label)
	if !ok {
		t.Fatalf("no field labelled %s", label)
	}
	return f
}

func TestHandshakePAL(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	_, p, _ := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0x3, 0x5},
		Commands: []cic.Command{cic.CmdReset},
	}, nil)
	test.ExpectSuccess(t, p.Verify())

	fields := p.Fields()
	test.DemandEquality(t, fields[0].Label, "hello")

	// the first nibble identifies the chip and the region
	test.ExpectSlice(t, fields[0].Nibbles(), []scratch.Nibble{0x5})

	test.ExpectEquality(t, scratch.FormatNibbles(field(t, p, "seed").Nibbles()), "bd393d")
	test.ExpectSlice(t, field(t, p, "checksum ready").Bits, []bool{false})
	test.ExpectEquality(t, scratch.FormatNibbles(field(t, p, "checksum").Nibbles()), "04e2fac5210fce2f")

	// count everything sent by the CIC before it first receives
	var sent int
	for _, f := range fields {
		if f.Dir == pif.ToCIC {
			break
		}
		sent += len(f.Bits)
	}
	test.ExpectEquality(t, sent, (1+6+16)*4+1)
}

func TestHandshakeNTSC(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	_, p, _ := session(t, cfg, pif.Session{
		Commands: []cic.Command{cic.CmdReset},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectSlice(t, field(t, p, "hello").Nibbles(), []scratch.Nibble{0x1})

	// the seed and checksum do not depend on the region
	test.ExpectEquality(t, scratch.FormatNibbles(field(t, p, "seed").Nibbles()), "bd393d")
	test.ExpectEquality(t, scratch.FormatNibbles(field(t, p, "checksum").Nibbles()), "04e2fac5210fce2f")
}

func TestInitialNibbles(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	c, p, _ := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0xc, 0x6},
		Commands: []cic.Command{cic.CmdReset},
	}, nil)
	test.ExpectSuccess(t, p.Verify())

	mem := c.Primary()
	test.ExpectEquality(t, mem.Read(0x01), 0xc)
	test.ExpectEquality(t, mem.Read(0x11), 0x6)

	// everything else is the region table
	test.ExpectEquality(t, mem.Read(0x00), 0xe)
	test.ExpectEquality(t, mem.Read(0x1f), 0x8)
}

func TestCompareNTSC(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	c, p, _ := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0x3, 0x5},
		Commands: []cic.Command{cic.CmdCompare, cic.CmdCompare, cic.CmdReset},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.Compares(), 2)

	test.ExpectSlice(t, field(t, p, "compare 0").Bits, bits("00110001010000"))
	test.ExpectSlice(t, field(t, p, "compare 1").Bits, bits("100110"))
}

func TestComparePAL(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	c, p, _ := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0x3, 0x5},
		Commands: []cic.Command{cic.CmdCompare, cic.CmdCompare, cic.CmdReset},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.Compares(), 2)

	test.ExpectSlice(t, field(t, p, "compare 0").Bits, bits("001010011101110"))
	test.ExpectSlice(t, field(t, p, "compare 1").Bits, bits("11101101010"))
}

func TestCompareTableValue(t *testing.T) {
	// initial values that match both region tables
	for _, tc := range []struct {
		region cic.Region
		bits   string
	}{
		{region: cic.NTSC, bits: "01111111"},
		{region: cic.PAL, bits: "001011010"},
	} {
		cfg := cic.DefaultConfig(tc.region)
		cfg.Quiet = true

		_, p, _ := session(t, cfg, pif.Session{
			Initial:  [2]scratch.Nibble{0x0, 0xb},
			Commands: []cic.Command{cic.CmdCompare, cic.CmdReset},
		}, nil)
		test.ExpectSuccess(t, p.Verify(), tc.region)
		test.ExpectSlice(t, field(t, p, "compare 0").Bits, bits(tc.bits), tc.region)
	}
}

func TestVariant2(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	challenge, err := scratch.ParseNibbles("0123456789abcdef0123456789abcd")
	test.DemandSuccess(t, err)

	c, p, markers := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0x3, 0x5},
		Commands: []cic.Command{cic.CmdVariant2, cic.CmdReset},
		Variant2: [][]scratch.Nibble{challenge},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.Variant2s(), 1)

	test.ExpectSlice(t, field(t, p, "variant2 0 hello").Nibbles(), []scratch.Nibble{0xa, 0xa})
	test.ExpectSlice(t, field(t, p, "variant2 0 ready").Bits, []bool{false})
	test.ExpectEquality(t, scratch.FormatNibbles(field(t, p, "variant2 0 response").Nibbles()), "b48b98ab7e8338255a29dc41f60b18")

	sec := c.Secondary()
	test.ExpectEquality(t, sec.String(), "b48b98ab7e8338255a29dc41f60b18")

	test.ExpectSlice(t, markers, []cic.Marker{
		cic.MarkerStart, cic.MarkerHello, cic.MarkerChecksum, cic.MarkerInitial,
		cic.MarkerVariant2, cic.MarkerStep, cic.MarkerVariant2, cic.MarkerStep,
		cic.MarkerReset,
	})
}

func TestMixedSession(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	challenge, err := scratch.ParseNibbles("0123456789abcdef0123456789abcd")
	test.DemandSuccess(t, err)

	// the variant-2 challenge does not disturb primary memory so the compare
	// challenges are the same as in TestComparePAL
	_, p, _ := session(t, cfg, pif.Session{
		Initial:  [2]scratch.Nibble{0x3, 0x5},
		Commands: []cic.Command{cic.CmdCompare, cic.CmdVariant2, cic.CmdCompare, cic.CmdReset},
		Variant2: [][]scratch.Nibble{challenge},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectSlice(t, field(t, p, "compare 0").Bits, bits("001010011101110"))
	test.ExpectSlice(t, field(t, p, "compare 2").Bits, bits("11101101010"))
}

func TestReset(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	c, p, markers := session(t, cfg, pif.Session{
		Commands: []cic.Command{cic.CmdReset, cic.CmdCompare},
	}, nil)
	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.State(), cic.Finished)
	test.ExpectSlice(t, field(t, p, "reset").Bits, []bool{false})
	test.ExpectEquality(t, markers[len(markers)-1], cic.MarkerReset)

	// nothing happens after the reset
	test.ExpectEquality(t, c.Compares(), 0)
}

type abortAfter struct {
	polls int
	after int
}

func (a *abortAfter) AbortRequested() bool {
	a.polls++
	return a.polls > a.after
}

func TestAbort(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	abort := &abortAfter{after: 1}
	c, p, _ := session(t, cfg, pif.Session{
		Commands: []cic.Command{cic.CmdCompare, cic.CmdCompare, cic.CmdReset},
	}, abort)

	test.ExpectEquality(t, c.State(), cic.Aborted)
	test.ExpectEquality(t, c.Compares(), 1)
	test.ExpectEquality(t, abort.polls, 2)

	// the responses so far are correct but the PIF never got to the end of
	// the session
	test.ExpectEquality(t, p.Verify(), pif.ErrIncomplete)
	test.ExpectEquality(t, p.Complete(), false)
}

func TestAbortImmediately(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	c, p, _ := session(t, cfg, pif.Session{
		Commands: []cic.Command{cic.CmdReset},
	}, &abortAfter{after: 0})
	test.ExpectEquality(t, c.State(), cic.Aborted)

	// the handshake always completes before an abort is possible
	f := field(t, p, "initial")
	test.ExpectEquality(t, f.Complete(), true)
	f = field(t, p, "command 0")
	test.ExpectEquality(t, len(f.Bits), 0)
}

func TestLockup(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	p, err := pif.NewPIF(cfg, pif.Session{
		Commands: []cic.Command{cic.CmdDie},
	})
	test.DemandSuccess(t, err)

	c, err := cic.NewCIC(cfg, p, nil)
	test.DemandSuccess(t, err)

	const enough = 1000
	lockups := 0
	locked := make(chan bool)
	c.SetMarkerHook(func(m cic.Marker) {
		if m == cic.MarkerLockup {
			lockups++
			if lockups == enough {
				// the only way out of a lockup is to end the goroutine
				close(locked)
				runtime.Goexit()
			}
		}
	})

	returned := make(chan bool, 1)
	go func() {
		_, _ = c.Run()
		returned <- true
	}()

	select {
	case <-locked:
	case <-time.After(5 * time.Second):
		t.Fatalf("CIC did not lock up")
	}

	select {
	case <-returned:
		t.Errorf("Run() returned from lockup")
	case <-time.After(50 * time.Millisecond):
	}

	// no bus activity after the command
	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.State(), cic.Lockup)
}

func TestStall(t *testing.T) {
	cfg := cic.DefaultConfig(cic.PAL)
	cfg.Quiet = true

	// no reset at the end of the session so the PIF stops the clock while
	// the CIC waits for the next command
	p, err := pif.NewPIF(cfg, pif.Session{
		Commands: []cic.Command{cic.CmdCompare},
	})
	test.DemandSuccess(t, err)

	stalled := make(chan bool)
	p.OnStall = func() {
		close(stalled)
		runtime.Goexit()
	}

	c, err := cic.NewCIC(cfg, p, nil)
	test.DemandSuccess(t, err)

	go func() {
		_, _ = c.Run()
	}()

	select {
	case <-stalled:
	case <-time.After(5 * time.Second):
		t.Fatalf("PIF did not stall")
	}

	test.ExpectSuccess(t, p.Verify())
	test.ExpectEquality(t, c.Compares(), 1)
}

func TestRunOnce(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	c, _, _ := session(t, cfg, pif.Session{
		Commands: []cic.Command{cic.CmdReset},
	}, nil)

	st, err := c.Run()
	test.ExpectEquality(t, err, cic.ErrSessionStarted)
	test.ExpectEquality(t, st, cic.Finished)
}

func TestBadConstants(t *testing.T) {
	p, err := pif.NewPIF(cic.DefaultConfig(cic.NTSC), pif.Session{})
	test.DemandSuccess(t, err)

	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Constants.Checksum = cfg.Constants.Checksum[:11]
	_, err = cic.NewCIC(cfg, p, nil)
	test.ExpectFailure(t, err)

	cfg = cic.DefaultConfig(cic.NTSC)
	cfg.Constants.PAL = append(cfg.Constants.PAL, 0x0)
	_, err = cic.NewCIC(cfg, p, nil)
	test.ExpectFailure(t, err)

	cfg = cic.DefaultConfig(cic.NTSC)
	cfg.Constants.NTSC[3] = 0x10
	_, err = cic.NewCIC(cfg, p, nil)
	test.ExpectFailure(t, err)

	cfg = cic.DefaultConfig(cic.Region(2))
	_, err = cic.NewCIC(cfg, p, nil)
	test.ExpectFailure(t, err)

	_, err = cic.NewCIC(cic.DefaultConfig(cic.NTSC), nil, nil)
	test.ExpectFailure(t, err)
}

func TestWrongRegion(t *testing.T) {
	// a PIF expecting a PAL chip will not accept an NTSC chip
	p, err := pif.NewPIF(cic.DefaultConfig(cic.PAL), pif.Session{
		Commands: []cic.Command{cic.CmdReset},
	})
	test.DemandSuccess(t, err)

	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true
	c, err := cic.NewCIC(cfg, p, nil)
	test.DemandSuccess(t, err)

	_, err = c.Run()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Verify())
}

func TestMonitoredSession(t *testing.T) {
	cfg := cic.DefaultConfig(cic.NTSC)
	cfg.Quiet = true

	p, err := pif.NewPIF(cfg, pif.Session{
		Commands: []cic.Command{cic.CmdCompare, cic.CmdReset},
	})
	test.DemandSuccess(t, err)

	mon := wire.NewMonitor(p, 0)
	c, err := cic.NewCIC(cfg, mon, nil)
	test.DemandSuccess(t, err)

	_, err = c.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Verify())

	done, planned := p.Cycles()
	test.ExpectEquality(t, done, planned)
	test.ExpectEquality(t, mon.Cycles, planned)
	test.ExpectEquality(t, len(mon.History()), planned*2)
}
