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

package logger_test

import (
	"strings"
	"testing"

	"github.com/ecpkart64/n64cic/logger"
	"github.com/ecpkart64/n64cic/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.CompareWriter buffer before continuing, makes
	// comparisons easier to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	for i := 0; i < 3; i++ {
		logger.Log(logger.Allow, "cic", "lockup")
	}
	logger.Logf(logger.Allow, "cic", "marker %#02x", 0x20)
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "cic: lockup (repeat x3)\ncic: marker 0x20\n")
}

func TestPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(deny{}, "test", "should not appear")
	logger.Logf(deny{}, "test", "nor should %s", "this")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "a", "one")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.String(), "a: one\n")

	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.String(), "")

	logger.Log(logger.Allow, "b", "two")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.String(), "b: two\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "wire", "bit")
	logger.Log(logger.Allow, "wire", "bit")
	test.ExpectEquality(t, tw.String(), "wire: bit\nwire: bit (repeat x2)\n")
}

func TestBorrowLog(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "cic", "hello")

	var tags []string
	logger.BorrowLog(func(e []logger.Entry) {
		for _, l := range e {
			tags = append(tags, l.Tag)
		}
	})
	test.ExpectEquality(t, strings.Join(tags, ","), "cic")
}
