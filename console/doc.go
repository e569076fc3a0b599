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

// Package console watches an input stream for the abort trigger. A Console
// implements the cic.AbortQuery interface.
//
// The terminal functions put the terminal into a mode where single key
// presses are delivered without waiting for the return key. The Watch()
// function can be used with any io.Reader.
package console
