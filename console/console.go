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

package console

import (
	"bufio"
	"errors"
	"io"
	"sync/atomic"

	"github.com/ecpkart64/n64cic/logger"
)

// DefaultTrigger is the key that requests an abort.
const DefaultTrigger = 'A'

// Console is the source of abort requests.
type Console struct {
	trigger byte
	abort   atomic.Bool

	// closed when the reader has been exhausted
	done chan bool

	// restores the terminal to the state it was in before Open(). will be
	// nil if the console was not created by Open()
	restore func() error
}

// Watch reads from r until the trigger byte is seen or the reader is
// exhausted. Reading happens in its own goroutine.
func Watch(r io.Reader, trigger byte) *Console {
	con := &Console{
		trigger: trigger,
		done:    make(chan bool),
	}

	go func() {
		defer close(con.done)

		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Logf(logger.Allow, "console", "%v", err)
				}
				return
			}
			if b == con.trigger {
				logger.Logf(logger.Allow, "console", "abort requested (%q)", rune(b))
				con.abort.Store(true)
				return
			}
		}
	}()

	return con
}

// AbortRequested implements the cic.AbortQuery interface. Once an abort has
// been requested it remains requested.
func (con *Console) AbortRequested() bool {
	return con.abort.Load()
}

// Done returns a channel that is closed when the console stops reading.
func (con *Console) Done() <-chan bool {
	return con.done
}

// Close restores the terminal if necessary. It does not stop the reading
// goroutine, which ends when the input is closed.
func (con *Console) Close() error {
	if con.restore == nil {
		return nil
	}
	err := con.restore()
	con.restore = nil
	return err
}
