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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ecpkart64/n64cic/hardware/cic/rounds"
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/hardware/cic/wire"
	"github.com/ecpkart64/n64cic/logger"
)

// offsets into primary memory used by the protocol.
const (
	seedOffset     = 0x0a
	checksumOffset = 0x04
	initialLow     = 0x01
	initialHigh    = 0x11
	compareStart   = 0x17
)

// the sub-handshake sent at the start of a variant-2 challenge.
const variant2Hello = scratch.Nibble(0xa)

// number of compare passes applied before every compare challenge.
const comparePasses = 3

// ErrSessionStarted is returned by Run() if it is called more than once.
var ErrSessionStarted = errors.New("cic: session already started")

// Config for a CIC session.
type Config struct {
	Region    Region
	Constants Constants

	// suppress log entries from the CIC
	Quiet bool
}

// DefaultConfig returns a configuration for a CIC-NUS-6102 in the specified
// region.
func DefaultConfig(region Region) Config {
	return Config{
		Region:    region,
		Constants: CIC6102(),
	}
}

// CIC is a single session of the authentication chip.
type CIC struct {
	cfg   Config
	tr    *wire.Transport
	abort AbortQuery
	hook  MarkerHook

	mem  scratch.Primary
	mem2 scratch.Secondary

	state   State
	started atomic.Bool

	// the most recent command read from the PIF
	cmd Command

	// number of completed challenges of each type
	compares  int
	variant2s int
}

// NewCIC is the preferred method of initialisation for the CIC type. The
// constants in the configuration are checked and an error returned if they
// are not usable.
//
// The abort argument can be nil, in which case the session can only end with
// a ResetAck.
func NewCIC(cfg Config, bus wire.Bus, abort AbortQuery) (*CIC, error) {
	if bus == nil {
		return nil, fmt.Errorf("cic: no bus")
	}

	if cfg.Region != NTSC && cfg.Region != PAL {
		return nil, fmt.Errorf("cic: %v", cfg.Region)
	}

	if err := cfg.Constants.Validate(); err != nil {
		return nil, err
	}

	if abort == nil {
		abort = NeverAbort
	}

	c := &CIC{
		cfg:   cfg,
		tr:    wire.NewTransport(bus),
		abort: abort,
		state: Idle,
	}

	logger.Logf(c, "cic", "%s attached (seed %#02x)", cfg.Region, cfg.Constants.Seed)

	return c, nil
}

// AllowLogging implements the logger.Permission interface.
func (c *CIC) AllowLogging() bool {
	return !c.cfg.Quiet
}

// SetMarkerHook installs a function to be called on every Marker. Must be
// called before Run().
func (c *CIC) SetMarkerHook(hook MarkerHook) {
	c.hook = hook
}

// State returns the current state of the session. Should not be called while
// Run() is in progress in another goroutine.
func (c *CIC) State() State {
	return c.state
}

// Compares returns the number of completed compare challenges. Should not be
// called while Run() is in progress in another goroutine.
func (c *CIC) Compares() int {
	return c.compares
}

// Variant2s returns the number of completed variant-2 challenges. Should not
// be called while Run() is in progress in another goroutine.
func (c *CIC) Variant2s() int {
	return c.variant2s
}

// Region returns the configured region.
func (c *CIC) Region() Region {
	return c.cfg.Region
}

// Primary returns a copy of the primary scratch memory.
func (c *CIC) Primary() scratch.Primary {
	return c.mem
}

// Secondary returns a copy of the secondary scratch memory.
func (c *CIC) Secondary() scratch.Secondary {
	return c.mem2
}

func (c *CIC) mark(m Marker) {
	if c.hook != nil {
		c.hook(m)
	}
}

// Run the session to completion. Returns Finished once the PIF has asked for
// a reset, or Aborted if the AbortQuery requested an abort. If the PIF sends
// an unrecognised command Run() will never return.
//
// A CIC can only be run once. Subsequent calls return ErrSessionStarted.
func (c *CIC) Run() (State, error) {
	if !c.started.CompareAndSwap(false, true) {
		return c.state, ErrSessionStarted
	}

	c.mark(MarkerStart)
	c.state = next(c.state)

	for {
		switch c.state {
		case Handshake:
			c.handshake()
		case SeedDelivery:
			c.deliverSeed()
		case ChecksumDelivery:
			c.deliverChecksum()
		case RegionInit:
			c.initRegion()
		case AwaitInitialNibbles:
			c.awaitInitial()

		case CommandDispatch:
			if c.abort.AbortRequested() {
				logger.Log(c, "cic", "session aborted")
				c.state = Aborted
				return c.state, nil
			}
			c.cmd = c.readCommand()
			logger.Logf(c, "cic", "command %02b (%s)", uint8(c.cmd), c.cmd)
			c.state = dispatch(c.cmd)
			continue

		case CompareChallenge:
			c.compareChallenge()
		case Variant2Challenge:
			c.variant2Challenge()

		case ResetAck:
			c.resetAck()
			c.state = Finished
			return c.state, nil

		case Lockup:
			c.lockup()

		default:
			panic(fmt.Sprintf("cic: unexpected state in session: %s", c.state))
		}

		c.state = next(c.state)
	}
}

func (c *CIC) handshake() {
	hello := c.cfg.Region.Hello()
	c.tr.SendNibble(hello)
	logger.Logf(c, "cic", "hello %#x", uint8(hello))
	c.mark(MarkerHello)
}

func (c *CIC) deliverSeed() {
	seed := c.cfg.Constants.Seed
	hi := scratch.Nibble(seed >> 4)
	lo := scratch.Nibble(seed)

	c.mem.Write(seedOffset, 0xb)
	c.mem.Write(seedOffset+1, 0x5)
	c.mem.Write(seedOffset+2, hi)
	c.mem.Write(seedOffset+3, lo)
	c.mem.Write(seedOffset+4, hi)
	c.mem.Write(seedOffset+5, lo)

	rounds.Encode(&c.mem, seedOffset)
	rounds.Encode(&c.mem, seedOffset)

	n := c.tr.SendBlock(&c.mem, seedOffset)
	logger.Logf(c, "cic", "seed sent (%d nibbles)", n)
}

func (c *CIC) deliverChecksum() {
	for i, v := range c.cfg.Constants.Checksum {
		c.mem.Write(checksumOffset+i, v)
	}

	// the first four nibbles of memory are the encryption key. their value
	// doesn't matter to the PIF
	for i := 0; i < 4; i++ {
		rounds.Encode(&c.mem, 0x00)
	}

	// signal to the PIF that the checksum is ready
	c.tr.SendBit(false)

	n := c.tr.SendBlock(&c.mem, 0x00)
	logger.Logf(c, "cic", "checksum sent (%d nibbles)", n)
	c.mark(MarkerChecksum)
}

func (c *CIC) initRegion() {
	c.mem.Load(c.cfg.Constants.Table(c.cfg.Region))
}

func (c *CIC) awaitInitial() {
	c.mem.Write(initialLow, c.tr.RecvNibble())
	c.mem.Write(initialHigh, c.tr.RecvNibble())
	logger.Logf(c, "cic", "initial values %v %v", c.mem.Read(initialLow), c.mem.Read(initialHigh))
	c.mark(MarkerInitial)
}

func (c *CIC) readCommand() Command {
	var cmd Command
	if c.tr.RecvBit() {
		cmd |= 0b10
	}
	if c.tr.RecvBit() {
		cmd |= 0b01
	}
	return cmd
}

func (c *CIC) compareChallenge() {
	c.mark(MarkerCompare)

	// only the high half of memory is checked by the PIF
	for i := 0; i < comparePasses; i++ {
		rounds.Compare(c.mem.High())
	}
	c.mark(MarkerStep)

	// the start index is never zero
	ptr := int(c.mem.Read(compareStart))
	if ptr == 0 {
		ptr = 1
	}
	ptr |= 0x10
	start := ptr

	n := 0
	for {
		// only the timing of the PIF's bit matters, not its value
		c.tr.RecvBit()
		c.tr.SendBit(c.mem.Read(ptr).Bit(0))
		n++

		ptr += c.cfg.Region.ScanStep()
		if ptr&0x0f == 0 {
			break
		}
	}

	c.compares++
	logger.Logf(c, "cic", "compare challenge: %d bits from %#02x", n, start)
}

func (c *CIC) variant2Challenge() {
	c.mark(MarkerVariant2)

	c.tr.SendNibble(variant2Hello)
	c.tr.SendNibble(variant2Hello)

	for i := 0; i < scratch.SecondarySize; i++ {
		c.mem2.Write(i, c.tr.RecvNibble())
	}

	c.mark(MarkerStep)
	rounds.Variant2(&c.mem2)
	c.mark(MarkerVariant2)

	c.tr.SendBit(false)
	for i := 0; i < scratch.SecondarySize; i++ {
		c.tr.SendNibble(c.mem2.Read(i))
	}
	c.mark(MarkerStep)

	c.variant2s++
	logger.Logf(c, "cic", "variant-2 challenge: %s", c.mem2.String())
}

func (c *CIC) resetAck() {
	c.mark(MarkerReset)
	c.tr.SendBit(false)
	logger.Log(c, "cic", "reset")
}

// lockup never returns and never touches the bus again.
func (c *CIC) lockup() {
	logger.Log(c, "cic", "locked up")
	for {
		c.mark(MarkerLockup)
		c.mark(MarkerStep)
	}
}
