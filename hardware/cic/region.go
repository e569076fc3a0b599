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
	"fmt"
	"strings"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// Region is the video region of the console the CIC is attached to.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	switch r {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return fmt.Sprintf("unknown region (%d)", int(r))
}

// ParseRegion converts a region name into a Region value. The comparison is
// case insensitive.
func ParseRegion(s string) (Region, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NTSC":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return NTSC, fmt.Errorf("cic: unrecognised region: %s", s)
}

// the identifier bit is always set in the hello nibble. PAL chips also set
// the region bit
const (
	helloID  = 0x01
	helloPAL = 0x04
)

// Hello returns the first nibble sent by the CIC in a session.
func (r Region) Hello() scratch.Nibble {
	if r == PAL {
		return helloID | helloPAL
	}
	return helloID
}

// ScanStep returns the direction in which the compare challenge walks through
// memory.
func (r Region) ScanStep() int {
	if r == PAL {
		return -1
	}
	return 1
}
