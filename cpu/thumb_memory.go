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

import "math/bits"

// Formats 7 through 15: the load/store family (register offset, sign
// extended, immediate offset, halfword, SP-relative, LEA, SP adjust, and the
// two register-list transfers).

func (c *CPU) executeLoadStoreRegisterOffset(opcode uint16) (uint32, error) {
	load := (opcode>>11)&1 == 1
	byteWide := (opcode>>10)&1 == 1
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)
	addr := c.regs.get(rb) + c.regs.get(ro)

	switch {
	case load && byteWide: // LDRB
		v, err := c.mem.Read8(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(v))
	case load: // LDR
		v, err := c.mem.Read32(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, v)
	case byteWide: // STRB
		if err := c.mem.Write8(addr, uint8(c.regs.get(rd))); err != nil {
			return 0, err
		}
	default: // STR
		if err := c.mem.Write32(addr, c.regs.get(rd)); err != nil {
			return 0, err
		}
	}
	return baseCycles[formatLoadStoreRegisterOffset], nil
}

func (c *CPU) executeLoadStoreSignExtended(opcode uint16) (uint32, error) {
	h := (opcode>>11)&1 == 1
	s := (opcode>>10)&1 == 1
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)
	addr := c.regs.get(rb) + c.regs.get(ro)

	switch {
	case !s && !h: // STRH
		if err := c.mem.Write16(addr, uint16(c.regs.get(rd))); err != nil {
			return 0, err
		}
	case !s && h: // LDRH, zero extended
		v, err := c.mem.Read16(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(v))
	case s && !h: // LDSB, sign extended
		v, err := c.mem.Read8(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(int32(int8(v))))
	default: // LDSH, sign extended
		v, err := c.mem.Read16(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(int32(int16(v))))
	}
	return baseCycles[formatLoadStoreSignExtended], nil
}

func (c *CPU) executeLoadStoreImmOffset(opcode uint16) (uint32, error) {
	byteWide := (opcode>>12)&1 == 1
	load := (opcode>>11)&1 == 1
	imm5 := uint32((opcode >> 6) & 0x1f)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	var addr uint32
	if byteWide {
		addr = c.regs.get(rb) + imm5
	} else {
		addr = c.regs.get(rb) + (imm5 << 2)
	}

	switch {
	case load && byteWide: // LDRB
		v, err := c.mem.Read8(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(v))
	case load: // LDR
		v, err := c.mem.Read32(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, v)
	case byteWide: // STRB
		if err := c.mem.Write8(addr, uint8(c.regs.get(rd))); err != nil {
			return 0, err
		}
	default: // STR
		if err := c.mem.Write32(addr, c.regs.get(rd)); err != nil {
			return 0, err
		}
	}
	return baseCycles[formatLoadStoreImmOffset], nil
}

func (c *CPU) executeLoadStoreHalfword(opcode uint16) (uint32, error) {
	load := (opcode>>11)&1 == 1
	imm5 := uint32((opcode >> 6) & 0x1f)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)
	addr := c.regs.get(rb) + (imm5 << 1)

	if load {
		v, err := c.mem.Read16(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, uint32(v))
	} else {
		if err := c.mem.Write16(addr, uint16(c.regs.get(rd))); err != nil {
			return 0, err
		}
	}
	return baseCycles[formatLoadStoreHalfword], nil
}

func (c *CPU) executeSPRelativeLoadStore(opcode uint16) (uint32, error) {
	load := (opcode>>11)&1 == 1
	rd := int((opcode >> 8) & 0x7)
	imm := uint32(opcode&0xff) << 2
	addr := c.regs.get(rSP) + imm

	if load {
		v, err := c.mem.Read32(addr)
		if err != nil {
			return 0, err
		}
		c.regs.set(rd, v)
	} else {
		if err := c.mem.Write32(addr, c.regs.get(rd)); err != nil {
			return 0, err
		}
	}
	return baseCycles[formatSPRelativeLoadStore], nil
}

// executeLoadAddress implements Format 12: ADD Rd, SP/PC, #imm8*4. The PC
// source uses the full pipeline-fill pcOperand() base (inst_addr+4)&~3, same
// as Format 6's PC-relative load, per the general R15-read rule.
func (c *CPU) executeLoadAddress(opcode uint16) (uint32, error) {
	sp := (opcode>>11)&1 == 1
	rd := int((opcode >> 8) & 0x7)
	imm := uint32(opcode&0xff) << 2

	var base uint32
	if sp {
		base = c.regs.get(rSP)
	} else {
		base = c.pcOperand() &^ 3
	}
	c.regs.set(rd, base+imm)
	return baseCycles[formatLoadAddress], nil
}

func (c *CPU) executeAddOffsetToSP(opcode uint16) (uint32, error) {
	negative := (opcode>>7)&1 == 1
	imm := uint32(opcode&0x7f) << 2

	if negative {
		c.regs.set(rSP, c.regs.get(rSP)-imm)
	} else {
		c.regs.set(rSP, c.regs.get(rSP)+imm)
	}
	return baseCycles[formatAddOffsetToSP], nil
}

// executePushPopRegisters implements Format 14: PUSH/POP {Rlist{,LR|PC}},
// a full-descending stack where the lowest-numbered register always ends up
// at the lowest address.
func (c *CPU) executePushPopRegisters(opcode uint16) (uint32, error) {
	load := (opcode>>11)&1 == 1
	withLinkOrPC := (opcode>>8)&1 == 1
	rlist := uint8(opcode & 0xff)
	count := uint32(bits.OnesCount8(rlist))
	cycles := baseCycles[formatPushPopRegisters] + count

	if load {
		addr := c.regs.get(rSP)
		for i := 0; i < 8; i++ {
			if rlist&(1<<uint(i)) != 0 {
				v, err := c.mem.Read32(addr)
				if err != nil {
					return 0, err
				}
				c.regs.set(i, v)
				addr += 4
			}
		}
		if withLinkOrPC {
			v, err := c.mem.Read32(addr)
			if err != nil {
				return 0, err
			}
			addr += 4
			// Thumb-mode POP{...,PC} does not change processor state: T
			// stays set. Only BX (Format 5) and SWI entry switch to ARM state.
			c.regs.set(rPC, v&^uint32(1))
			cycles += branchPenalty + 1
		}
		c.regs.set(rSP, addr)
		return cycles, nil
	}

	size := count * 4
	if withLinkOrPC {
		size += 4
	}
	base := c.regs.get(rSP) - size
	addr := base
	for i := 0; i < 8; i++ {
		if rlist&(1<<uint(i)) != 0 {
			if err := c.mem.Write32(addr, c.regs.get(i)); err != nil {
				return 0, err
			}
			addr += 4
		}
	}
	if withLinkOrPC {
		if err := c.mem.Write32(addr, c.regs.get(rLR)); err != nil {
			return 0, err
		}
		cycles++
	}
	c.regs.set(rSP, base)
	return cycles, nil
}

// executeMultipleLoadStore implements Format 15: STMIA/LDMIA Rb!, {Rlist}.
// LDMIA where Rb also appears in Rlist leaves the loaded value in Rb rather
// than overwriting it with the incremented base address; STMIA has no
// equivalent special case because the base is read once, before any store,
// so a store of Rb itself always writes its pre-instruction value.
func (c *CPU) executeMultipleLoadStore(opcode uint16) (uint32, error) {
	load := (opcode>>11)&1 == 1
	rb := int((opcode >> 8) & 0x7)
	rlist := uint8(opcode & 0xff)
	count := uint32(bits.OnesCount8(rlist))
	cycles := baseCycles[formatMultipleLoadStore] + count

	addr := c.regs.get(rb)
	updateBase := rlist&(1<<uint(rb)) == 0

	if load {
		for i := 0; i < 8; i++ {
			if rlist&(1<<uint(i)) != 0 {
				v, err := c.mem.Read32(addr)
				if err != nil {
					return 0, err
				}
				c.regs.set(i, v)
				addr += 4
			}
		}
	} else {
		for i := 0; i < 8; i++ {
			if rlist&(1<<uint(i)) != 0 {
				if err := c.mem.Write32(addr, c.regs.get(i)); err != nil {
					return 0, err
				}
				addr += 4
			}
		}
		updateBase = true
	}

	if updateBase {
		c.regs.set(rb, addr)
	}
	return cycles, nil
}
