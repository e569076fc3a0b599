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

// Package cic emulates the cartridge authentication chip of the Nintendo 64.
// The PIF in the console drives a two-wire serial bus and will not boot the
// cartridge unless the CIC answers its challenges exactly as a genuine chip
// would.
//
// A session with the PIF proceeds through a fixed series of states:
//
//	Handshake -> SeedDelivery -> ChecksumDelivery -> RegionInit ->
//	AwaitInitialNibbles -> CommandDispatch
//
// CommandDispatch reads a two bit command from the PIF and moves to one of
// CompareChallenge, Variant2Challenge, ResetAck or Lockup. The two challenges
// return to CommandDispatch when they are complete. ResetAck ends the session.
// Lockup never ends; this is how a genuine chip responds to a PIF that it
// does not trust.
//
// The only way to leave a session early is through the AbortQuery, which is
// consulted every time CommandDispatch is entered. Once a command has been
// read the resulting exchange cannot be interrupted.
//
// All bus activity goes through the wire package. A CIC can be attached to
// real hardware registers with wire.NewRegisterBus() or to a simulated PIF
// with the pif package.
package cic
