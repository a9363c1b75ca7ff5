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

import (
	"errors"

	"github.com/jetsetilly/armthumb/logger"
	"github.com/jetsetilly/armthumb/memory"
)

// ErrARMMode is returned by Execute if the processor has left Thumb state
// (the only way that happens in this package's scope is BX or a completed
// SWI entry). Decoding and executing the 32-bit ARM instruction set is
// outside this package's scope; a caller that needs to model what happens
// next owns a collaborator that takes over from here.
var ErrARMMode = errors.New("cpu: processor left Thumb state; ARM decoding is out of scope")

// CPU is an ARM7TDMI core restricted to the Thumb instruction set: sixteen
// registers (with mode-banked SP/LR/SPSR and FIQ-banked R8-R12), the CPSR,
// and the fetch/decode/execute loop over the nineteen Thumb formats.
type CPU struct {
	regs registers
	sr   status
	mem  memory.Memory

	// executingPC is the address of the instruction currently being
	// executed, recorded by the fetch loop before R15 is advanced. It is
	// the address reported by UndefinedInstruction and by the diagnostic log
	// entries; pcOperand derives its value from R15, not from this field.
	executingPC uint32
}

// New returns a CPU wired to the given memory, in its post-Reset state.
func New(mem memory.Memory) *CPU {
	c := &CPU{mem: mem}
	c.Reset()
	return c
}

// Reset puts every register to zero except PC, which takes the reset vector
// from memory, and sets CPSR to Supervisor mode with IRQ and FIQ disabled.
// The Thumb bit follows the reset vector's own low bit, per the ARM7TDMI
// reset vector convention: a GBA BIOS reset vector always targets Thumb.
func (c *CPU) Reset() {
	c.regs.reset()
	c.sr.reset()

	vector, err := c.mem.Read32(0)
	if err != nil {
		logger.Logf("cpu", "reset: could not read reset vector: %v", err)
		vector = 0
	}
	c.sr.thumb = vector&1 == 1
	c.regs.set(rPC, vector&^1)
}

// pcOperand is the value an instruction sees when it reads R15: the address
// of the instruction itself, plus the architectural two-instruction
// pipeline-fill offset (4 bytes in Thumb state). At the point any format
// function runs, regs.get(rPC) has already been advanced by the fetch loop
// to executingPC+2, so only one more +2 is needed here.
func (c *CPU) pcOperand() uint32 {
	return c.regs.get(rPC) + 2
}

// Register returns the current value of Ri, 0-15. Reading R15 returns the
// raw program counter (address of the next instruction to fetch), not the
// pipeline-offset value an executing instruction would see; see §4.4.
func (c *CPU) Register(i int) uint32 {
	return c.regs.get(i)
}

// SetRegister writes Ri, 0-15.
func (c *CPU) SetRegister(i int, v uint32) {
	c.regs.set(i, v)
}

// CPSR returns the packed current program status register.
func (c *CPU) CPSR() uint32 {
	return c.sr.pack()
}

// SetCPSR unpacks v into the live status and register-bank state,
// performing a mode switch (and the associated register banking) if the
// mode field changed.
func (c *CPU) SetCPSR(v uint32) {
	var unpacked status
	unpacked.unpack(v)
	if unpacked.mode != c.regs.current {
		c.regs.switchMode(unpacked.mode)
	}
	c.sr = unpacked
}

// Flag reports whether the given CPSR bit position (bitN, bitZ, ...) is set.
func (c *CPU) Flag(bit int) bool {
	return c.sr.pack()&(1<<uint(bit)) != 0
}

// Execute runs exactly steps Thumb instructions (fewer if a fault or an
// undefined opcode cuts execution short) and returns the number of cycles
// consumed. A *memory.Fault or *UndefinedInstruction halts execution at the
// instruction that raised it, and is recorded in the diagnostic log; the
// cycle count returned reflects only the instructions that completed.
func (c *CPU) Execute(steps uint32) (uint32, error) {
	var cycles uint32
	for i := uint32(0); i < steps; i++ {
		if !c.sr.thumb {
			return cycles, ErrARMMode
		}

		pc := c.regs.get(rPC)
		opcode, err := c.mem.Read16(pc)
		if err != nil {
			logger.Log("cpu", err)
			return cycles, err
		}

		c.executingPC = pc
		c.regs.set(rPC, pc+2)

		n, err := c.step(opcode)
		cycles += n
		if err != nil {
			logger.Log("cpu", err)
			return cycles, err
		}
	}
	return cycles, nil
}

// step decodes and executes a single already-fetched opcode.
func (c *CPU) step(opcode uint16) (uint32, error) {
	f := decode(opcode)
	switch f {
	case formatMoveShiftedRegister:
		return c.executeMoveShiftedRegister(opcode)
	case formatAddSubtract:
		return c.executeAddSubtract(opcode)
	case formatMovCmpAddSubImm:
		return c.executeMovCmpAddSubImm(opcode)
	case formatALUOperation:
		return c.executeALUOperation(opcode)
	case formatHiRegisterOps:
		return c.executeHiRegisterOps(opcode)
	case formatPCRelativeLoad:
		return c.executePCRelativeLoad(opcode)
	case formatLoadStoreRegisterOffset:
		return c.executeLoadStoreRegisterOffset(opcode)
	case formatLoadStoreSignExtended:
		return c.executeLoadStoreSignExtended(opcode)
	case formatLoadStoreImmOffset:
		return c.executeLoadStoreImmOffset(opcode)
	case formatLoadStoreHalfword:
		return c.executeLoadStoreHalfword(opcode)
	case formatSPRelativeLoadStore:
		return c.executeSPRelativeLoadStore(opcode)
	case formatLoadAddress:
		return c.executeLoadAddress(opcode)
	case formatAddOffsetToSP:
		return c.executeAddOffsetToSP(opcode)
	case formatPushPopRegisters:
		return c.executePushPopRegisters(opcode)
	case formatMultipleLoadStore:
		return c.executeMultipleLoadStore(opcode)
	case formatConditionalBranch:
		return c.executeConditionalBranch(opcode)
	case formatSoftwareInterrupt:
		return c.executeSoftwareInterrupt(opcode)
	case formatUnconditionalBranch:
		return c.executeUnconditionalBranch(opcode)
	case formatLongBranchWithLink:
		return c.executeLongBranchWithLink(opcode)
	default:
		return 0, &UndefinedInstruction{Addr: c.executingPC, Opcode: opcode}
	}
}
