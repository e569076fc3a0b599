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

// Package wire implements the bit transport between the CIC and the PIF. The
// bus has two signals: a clock driven by the PIF and a bidirectional data line.
//
// The data line is pulled up. Either side transmits a zero bit by driving the
// line low while the clock is low. A one bit is transmitted by leaving the line
// alone. The CIC samples or drives the data line while the clock is low and
// must have finished doing so before the clock returns high.
//
// Access to the signals is through the Bus interface. NewRegisterBus() creates
// a Bus from memory mapped registers in the same way as the softcore firmware.
// The pif package provides a simulated Bus.
//
// There are no timeouts anywhere in the transport. A PIF that stops toggling
// the clock will cause the transport to wait forever, which is how a genuine
// CIC behaves.
package wire
