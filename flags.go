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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecpkart64/n64cic/hardware/cic"
	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
	"github.com/ecpkart64/n64cic/random"
)

// regionFlag implements the flag.Value interface.
type regionFlag struct {
	region cic.Region
}

func (f *regionFlag) String() string {
	return f.region.String()
}

func (f *regionFlag) Set(s string) error {
	r, err := cic.ParseRegion(s)
	if err != nil {
		return err
	}
	f.region = r
	return nil
}

// byteFlag accepts decimal, hex (0x prefix) or octal values that fit in a
// byte.
type byteFlag struct {
	v uint8
}

func (f *byteFlag) String() string {
	return fmt.Sprintf("%#02x", f.v)
}

func (f *byteFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return fmt.Errorf("not a byte value: %s", s)
	}
	f.v = uint8(v)
	return nil
}

// nibblesFlag is a fixed length list of nibbles. The value "random" asks for
// new random nibbles every time values() is called.
type nibblesFlag struct {
	n      []scratch.Nibble
	size   int
	random bool
}

func newNibblesFlag(n []scratch.Nibble) *nibblesFlag {
	return &nibblesFlag{
		n:    append([]scratch.Nibble{}, n...),
		size: len(n),
	}
}

func (f *nibblesFlag) String() string {
	if f.random {
		return "random"
	}
	return scratch.FormatNibbles(f.n)
}

func (f *nibblesFlag) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "random") {
		f.random = true
		return nil
	}
	f.random = false

	n, err := scratch.ParseNibbles(s)
	if err != nil {
		return err
	}
	if len(n) != f.size {
		return fmt.Errorf("%d nibbles required, got %d", f.size, len(n))
	}
	f.n = n
	return nil
}

func (f *nibblesFlag) values(rnd *random.Random) []scratch.Nibble {
	if f.random {
		return rnd.Nibbles(f.size)
	}
	return f.n
}

// commandsFlag is a comma separated list of commands.
type commandsFlag struct {
	cmds []cic.Command
}

func (f *commandsFlag) String() string {
	s := make([]string, 0, len(f.cmds))
	for _, c := range f.cmds {
		s = append(s, c.String())
	}
	return strings.Join(s, ",")
}

func (f *commandsFlag) Set(s string) error {
	cmds, err := cic.ParseCommands(s)
	if err != nil {
		return err
	}
	f.cmds = cmds
	return nil
}
