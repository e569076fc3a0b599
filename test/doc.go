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

// Package test bundles a number of helper functions that remove common
// boilerplate from test functions. They are intended to be used in
// conjunction with the standard go test harness.
//
// The Expect functions report a failed test with t.Errorf() and allow the test
// to continue. The Demand functions report with t.Fatalf() and so stop the
// test immediately. Demand functions should be used when the result of the
// check is required for the remainder of the test to make sense.
//
// The nil value is considered a success by ExpectSuccess() and a failure by
// ExpectFailure(). This is because of how errors usually work, nil to indicate
// no error.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
package test
