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

// Package logger is the central logging facility for n64cic. Entries are
// tagged with the name of the component that made them and are kept in memory
// until they are written out with Write(), Tail() or WriteRecent().
//
// Adjacent entries with identical tag and detail are collapsed into a single
// entry with a repeat count. This keeps the log readable when a component
// spins in a tight loop, as the CIC does when it locks up.
//
// Every log request is accompanied by a Permission. Components that should be
// silenced in some situations implement the Permission interface themselves;
// everything else can use logger.Allow.
package logger
