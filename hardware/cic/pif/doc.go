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

// Package pif simulates the peripheral interface controller of the console,
// the other party on the CIC bus. The simulated PIF implements the wire.Bus
// interface and so can be handed directly to cic.NewCIC().
//
// The PIF and the CIC run in lockstep. Every call to WaitClockLow() from the
// CIC begins a new clock cycle and every call to WaitClockHigh() completes it.
// What happens in each cycle is planned in advance from a Session, which lists
// the values the PIF sends and the commands it issues. Like the real PIF, the
// simulation keeps its own model of the CIC's memory so that it knows what
// the CIC should send back and how long each exchange lasts.
//
// Once the plan is exhausted the PIF stops the clock. A CIC waiting for the
// clock will wait forever.
package pif
