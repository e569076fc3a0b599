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

import "fmt"

// Marker values are emitted at significant points in a session. They are the
// same values that the softcore firmware writes to its debug console.
type Marker uint8

// List of valid Marker values.
const (
	MarkerStep     Marker = 0x00
	MarkerStart    Marker = 0x01
	MarkerHello    Marker = 0x03
	MarkerChecksum Marker = 0x07
	MarkerInitial  Marker = 0x0f
	MarkerReset    Marker = 0x10
	MarkerLockup   Marker = 0x20
	MarkerCompare  Marker = 0x40
	MarkerVariant2 Marker = 0x80
)

func (m Marker) String() string {
	return fmt.Sprintf("%02X", uint8(m))
}

// MarkerHook is called for every Marker emitted by the CIC. It is called from
// the same goroutine as Run() and so should return quickly.
type MarkerHook func(Marker)
