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

// format identifies which of the nineteen Thumb instruction formats an
// opcode belongs to. The executor dispatches on it with a switch whose
// default case returns UndefinedInstruction; Go does not check the switch
// for exhaustiveness, so a format with no case there is reported at run
// time as an undefined instruction, not rejected at compile time.
type format int

const (
	formatUndefined format = iota
	formatMoveShiftedRegister
	formatAddSubtract
	formatMovCmpAddSubImm
	formatALUOperation
	formatHiRegisterOps
	formatPCRelativeLoad
	formatLoadStoreRegisterOffset
	formatLoadStoreSignExtended
	formatLoadStoreImmOffset
	formatLoadStoreHalfword
	formatSPRelativeLoadStore
	formatLoadAddress
	formatAddOffsetToSP
	formatPushPopRegisters
	formatMultipleLoadStore
	formatConditionalBranch
	formatSoftwareInterrupt
	formatUnconditionalBranch
	formatLongBranchWithLink
)

// decode classifies a 16-bit Thumb opcode by its leading bits, following the
// format table in the architecture reference (§4.5 of the internal
// specification this package implements): each format is identified by a
// fixed-width prefix, tested from Format 19 down to Format 1 in an order
// where every prefix that nests inside a shorter one is tested first
// (Format 2 before Format 1; SWI and the undefined 0xDE page before
// Format 16).
func decode(opcode uint16) format {
	switch {
	case opcode&0xf800 == 0xf000, opcode&0xf800 == 0xf800:
		return formatLongBranchWithLink
	case opcode&0xff00 == 0xdf00:
		return formatSoftwareInterrupt
	case opcode&0xff00 == 0xde00:
		return formatUndefined
	case opcode&0xf000 == 0xd000:
		return formatConditionalBranch
	case opcode&0xf800 == 0xe000:
		return formatUnconditionalBranch
	case opcode&0xf000 == 0xc000:
		return formatMultipleLoadStore
	case opcode&0xf600 == 0xb400:
		return formatPushPopRegisters
	case opcode&0xff00 == 0xb000:
		return formatAddOffsetToSP
	case opcode&0xf000 == 0xa000:
		return formatLoadAddress
	case opcode&0xf000 == 0x9000:
		return formatSPRelativeLoadStore
	case opcode&0xf000 == 0x8000:
		return formatLoadStoreHalfword
	case opcode&0xe000 == 0x6000:
		return formatLoadStoreImmOffset
	case opcode&0xf200 == 0x5200:
		return formatLoadStoreSignExtended
	case opcode&0xf200 == 0x5000:
		return formatLoadStoreRegisterOffset
	case opcode&0xf800 == 0x4800:
		return formatPCRelativeLoad
	case opcode&0xfc00 == 0x4400:
		return formatHiRegisterOps
	case opcode&0xfc00 == 0x4000:
		return formatALUOperation
	case opcode&0xe000 == 0x2000:
		return formatMovCmpAddSubImm
	case opcode&0xf800 == 0x1800:
		return formatAddSubtract
	case opcode&0xe000 == 0x0000:
		return formatMoveShiftedRegister
	}
	return formatUndefined
}
