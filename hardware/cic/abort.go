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

// AbortQuery is polled by the CIC every time it enters the CommandDispatch
// state. It must not block.
type AbortQuery interface {
	AbortRequested() bool
}

type never struct{}

func (never) AbortRequested() bool {
	return false
}

// NeverAbort is an AbortQuery that never requests an abort.
var NeverAbort AbortQuery = never{}
