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

// register names, following the convention used throughout the ARM7TDMI
// documentation and the reference Thumb interpreter this package is modelled
// on.
const (
	rSP = 13
	rLR = 14
	rPC = 15

	numRegisters = 16
)

// Exported aliases for rSP/rLR/rPC, so a caller outside this package (eg.
// the debug package) can address the stack pointer, link register, and
// program counter by name with CPU.Register/SetRegister without
// rediscovering their register numbers.
const (
	RegisterSP = rSP
	RegisterLR = rLR
	RegisterPC = rPC
)

// mode is the 5-bit CPSR mode field. Only the modes an ARM7TDMI running pure
// Thumb code can reach from this package's scope are used operationally
// (User and Supervisor, via reset and SWI); the others exist so that banked
// storage and mode switching are modelled completely rather than stubbed.
type mode uint32

const (
	modeUSR mode = 0b10000
	modeFIQ mode = 0b10001
	modeIRQ mode = 0b10010
	modeSVC mode = 0b10011
	modeABT mode = 0b10111
	modeUND mode = 0b11011
	modeSYS mode = 0b11111
)

// privileged modes index into bankedSP/bankedLR/bankedSPSR. User and System
// share the same bank (neither has an SPSR), so they are excluded from this
// table and handled as the "no banking" case.
var bankIndex = map[mode]int{
	modeFIQ: 0,
	modeIRQ: 1,
	modeSVC: 2,
	modeABT: 3,
	modeUND: 4,
}

const numBanks = 5

// registers holds the sixteen general registers in their "active view" plus
// the mode-banked storage they're swapped against at mode switches. Per the
// banked-register design this package follows: R0-R7, R15 are never banked;
// R8-R12 are banked only for FIQ; R13-R14 are banked per privileged mode.
type registers struct {
	r [numRegisters]uint32

	bankedSP   [numBanks]uint32
	bankedLR   [numBanks]uint32
	bankedSPSR [numBanks]uint32

	fiqR8_12 [5]uint32
	usrR8_12 [5]uint32

	current mode
}

func (rs *registers) reset() {
	for i := range rs.r {
		rs.r[i] = 0
	}
	for i := range rs.bankedSP {
		rs.bankedSP[i] = 0
		rs.bankedLR[i] = 0
		rs.bankedSPSR[i] = 0
	}
	for i := range rs.fiqR8_12 {
		rs.fiqR8_12[i] = 0
		rs.usrR8_12[i] = 0
	}
	rs.current = modeSVC
}

// get reads register i from the active view.
func (rs *registers) get(i int) uint32 {
	return rs.r[i]
}

// set writes register i in the active view.
func (rs *registers) set(i int, v uint32) {
	rs.r[i] = v
}

// switchMode banks out R13/R14 (and R8-R12 if leaving/entering FIQ) of the
// current mode and banks in the target mode's copies, leaving R0-R7 and R15
// untouched. SPSR of the target mode is not touched here; callers that enter
// an exception write it explicitly (see swi.go).
func (rs *registers) switchMode(target mode) {
	if target == rs.current {
		return
	}

	if idx, ok := bankIndex[rs.current]; ok {
		rs.bankedSP[idx] = rs.r[rSP]
		rs.bankedLR[idx] = rs.r[rLR]
	}
	if rs.current == modeFIQ {
		copy(rs.fiqR8_12[:], rs.r[8:13])
	} else {
		copy(rs.usrR8_12[:], rs.r[8:13])
	}

	if idx, ok := bankIndex[target]; ok {
		rs.r[rSP] = rs.bankedSP[idx]
		rs.r[rLR] = rs.bankedLR[idx]
	} else {
		// target is USR or SYS: both share the same (non-banked) SP/LR,
		// which is whichever of those two modes last held them. Since USR
		// and SYS never themselves appear in bankIndex, their SP/LR simply
		// stayed in rs.r across the switch away and back.
	}
	if target == modeFIQ {
		copy(rs.r[8:13], rs.fiqR8_12[:])
	} else {
		copy(rs.r[8:13], rs.usrR8_12[:])
	}

	rs.current = target
}

// spsr returns the saved status register banked for the current mode, and
// false if the current mode has none (User/System).
func (rs *registers) spsr() (uint32, bool) {
	idx, ok := bankIndex[rs.current]
	if !ok {
		return 0, false
	}
	return rs.bankedSPSR[idx], true
}

// setSPSR writes the saved status register banked for the current mode. It
// is a no-op in User/System mode, which has no SPSR.
func (rs *registers) setSPSR(v uint32) {
	if idx, ok := bankIndex[rs.current]; ok {
		rs.bankedSPSR[idx] = v
	}
}
