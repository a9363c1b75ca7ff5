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

// Package cpu emulates the ARM7TDMI processor as used in the Game Boy
// Advance, restricted to the Thumb instruction set: sixteen general
// registers, the banked register/mode model, the barrel shifter and ALU,
// the 19-format Thumb decoder and executor, and the exception entry/exit
// a SWI triggers.
//
// References used throughout this package and its tests:
//
//   - "ARM7TDMI-S Technical Reference Manual", ARM DDI 0210
//   - "ARM7TDMI Data Sheet", Advanced RISC Machines Ltd
//   - "ARM Architecture Reference Manual" ("the ARM ARM")
package cpu
