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

// Package random provides the values a real PIF would choose at random: the
// initial nibbles sent after the checksum and the variant-2 challenges.
//
// A Random created with a non-zero seed always produces the same sequence of
// nibbles, which is useful for reproducing a session. A zero seed is replaced
// with a seed based on the time of creation.
package random
