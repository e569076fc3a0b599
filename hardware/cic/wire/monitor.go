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

// Level is the state of both bus signals after a clock edge. The Data level
// recorded alongside a rising clock edge is the level of the line during the
// preceding low phase, which is when the bit was transferred.
type Level struct {
	Clock bool
	Data  bool
}

// Monitor is a Bus that records the activity of another Bus. It is used for
// diagnostics and for capturing a session to a file.
type Monitor struct {
	bus Bus

	Clock Trace
	Data  Trace

	// whether the CIC is currently driving the data line
	driving bool

	// the most recently sampled data level in the current low phase
	sampled bool
	sample  bool

	// number of completed clock cycles
	Cycles int

	history []Level
	limit   int
}

// NewMonitor wraps a Bus. The limit argument caps the number of levels kept in
// the history. A limit of zero means the history is never trimmed.
func NewMonitor(bus Bus, limit int) *Monitor {
	return &Monitor{
		bus:     bus,
		Clock:   NewTrace("CLK"),
		Data:    NewTrace("DIO"),
		history: make([]Level, 0, 1024),
		limit:   limit,
	}
}

func (m *Monitor) tick(clk bool) {
	data := true
	if m.driving {
		data = false
	} else if m.sampled {
		data = m.sample
	}

	m.Clock.Tick(clk)
	m.Data.Tick(data)

	m.history = append(m.history, Level{Clock: clk, Data: data})
	if m.limit > 0 && len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}

	if clk && m.Clock.Rising() {
		m.Cycles++
	}
}

// WaitClockLow implements the Bus interface.
func (m *Monitor) WaitClockLow() {
	m.bus.WaitClockLow()
	m.sampled = false
	m.tick(false)
}

// WaitClockHigh implements the Bus interface.
func (m *Monitor) WaitClockHigh() {
	m.bus.WaitClockHigh()
	m.tick(true)
}

// Sample implements the Bus interface.
func (m *Monitor) Sample() bool {
	m.sample = m.bus.Sample()
	m.sampled = true
	return m.sample
}

// DriveLow implements the Bus interface.
func (m *Monitor) DriveLow() {
	m.bus.DriveLow()
	m.driving = true
}

// Release implements the Bus interface.
func (m *Monitor) Release() {
	m.bus.Release()
	m.driving = false
}

// History returns a copy of the recorded levels, oldest first.
func (m *Monitor) History() []Level {
	h := make([]Level, len(m.history))
	copy(h, m.history)
	return h
}
