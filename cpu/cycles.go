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

// baseCycles gives the documented cycle cost of each Thumb format, ignoring
// bus contention and wait states: one Sequential cycle per instruction word
// fetched, plus the additional cycles a taken branch or a memory access
// costs. This is deliberately coarser than the reference interpreter's
// MAM-latched N/S/I cycle accounting, which models flash wait states this
// package's scope (a bare CPU core plus a test-mode flat RAM) has no use
// for; the constants below are reference-manual instruction timings, not a
// bus model.
var baseCycles = map[format]uint32{
	formatMoveShiftedRegister:     1,
	formatAddSubtract:             1,
	formatMovCmpAddSubImm:         1,
	formatALUOperation:            1,
	formatHiRegisterOps:           1,
	formatPCRelativeLoad:          3,
	formatLoadStoreRegisterOffset: 3,
	formatLoadStoreSignExtended:   3,
	formatLoadStoreImmOffset:      3,
	formatLoadStoreHalfword:       3,
	formatSPRelativeLoadStore:     3,
	formatLoadAddress:             1,
	formatAddOffsetToSP:           1,
	formatPushPopRegisters:        1, // plus 1 per register transferred
	formatMultipleLoadStore:       1, // plus 1 per register transferred
	formatConditionalBranch:       1, // plus 2 if taken
	formatSoftwareInterrupt:       3,
	formatUnconditionalBranch:     3,
	formatLongBranchWithLink:      2, // 4 across both halfwords
}

// branchPenalty is added to baseCycles when a format flushes the pipeline:
// a taken conditional branch, and any instruction that writes R15 outside of
// the formats that already cost for it above (unconditional branch, BL).
const branchPenalty = 2
