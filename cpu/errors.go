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

package cpu

import "fmt"

// UndefinedInstruction is returned by Execute when the fetched opcode does
// not match any of the nineteen Thumb formats. Unlike the interpreter this
// package is adapted from, which silently panics on an unrecognised opcode,
// this is a reportable error: production callers need to distinguish "ran
// off the end of a program into unformatted data" from a real bus fault.
type UndefinedInstruction struct {
	Addr   uint32
	Opcode uint16
}

func (e *UndefinedInstruction) Error() string {
	return fmt.Sprintf("cpu: undefined instruction %#04x at %#08x", e.Opcode, e.Addr)
}
