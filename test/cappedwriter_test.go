// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"testing"

	"github.com/jetsetilly/armthumb/test"
)

// CappedWriter is used by callers (such as a fixed-size diagnostic capture
// buffer) that want the earliest entries kept and everything past capacity
// discarded, as opposed to RingWriter's keep-the-latest behaviour.
func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(10)
	test.Equate(t, err, nil)

	// starts off empty
	test.Equate(t, c.String(), "")

	// first log tag
	c.Write([]byte("c"))
	test.Equate(t, c.String(), "c")

	// rest of the first entry's body
	c.Write([]byte("pu: "))
	test.Equate(t, c.String(), "cpu: ")

	// fills the capacity exactly
	c.Write([]byte("undef"))
	test.Equate(t, c.String(), "cpu: undef")

	// a second entry arriving after capacity is reached is dropped entirely
	c.Write([]byte("ined\n"))
	test.Equate(t, c.String(), "cpu: undef")

	// reset and confirm it drains back to empty
	c.Reset()
	test.Equate(t, c.String(), "")

	// writing exactly the capacity in one call
	c.Write([]byte("cpu: undef"))
	test.Equate(t, c.String(), "cpu: undef")

	c.Reset()
	test.Equate(t, c.String(), "")

	// writing more than the capacity in one call truncates to the first
	// capacity bytes, same as the entry-by-entry case above
	c.Write([]byte("cpu: undefined instruction\n"))
	test.Equate(t, c.String(), "cpu: undef")
}
