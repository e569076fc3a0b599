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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Open watches the file for the trigger key. If the file is a terminal it is
// put into raw mode. The terminal is restored by Close().
func Open(f *os.File, trigger byte) (*Console, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Watch(f, trigger), nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	con := Watch(f, trigger)
	con.restore = func() error {
		return term.Restore(fd, state)
	}

	return con, nil
}
