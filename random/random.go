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

package random

import (
	"math/rand"
	"time"

	"github.com/ecpkart64/n64cic/hardware/cic/scratch"
)

// Random is a source of random nibbles.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed used by the generator. Passing the value to
// NewRandom() will reproduce the sequence.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Nibble returns a single random nibble.
func (rnd *Random) Nibble() scratch.Nibble {
	return scratch.Nibble(rnd.rnd.Intn(int(scratch.NibbleMask) + 1))
}

// Nibbles returns n random nibbles.
func (rnd *Random) Nibbles(n int) []scratch.Nibble {
	v := make([]scratch.Nibble, n)
	for i := range v {
		v[i] = rnd.Nibble()
	}
	return v
}
