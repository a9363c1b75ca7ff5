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

import "github.com/jetsetilly/armthumb/logger"

// executeSoftwareInterrupt implements Format 17: SWI comment8. This is a
// full architectural exception entry, not merely a PC change: it banks the
// current CPSR into SPSR_svc, saves the return address in LR_svc, and moves
// the processor into ARM state in Supervisor mode at the SWI vector. A
// caller driving the CPU step by step sees T clear and mode become SVC
// immediately after this call; nothing in this package's scope executes the
// exception handler itself.
func (c *CPU) executeSoftwareInterrupt(opcode uint16) (uint32, error) {
	returnAddr := c.regs.get(rPC)
	logger.Logf("cpu", "swi %#02x at %#08x: entering supervisor mode", opcode&0xff, c.executingPC)

	savedCPSR := c.sr.pack()
	c.regs.switchMode(modeSVC)
	c.sr.mode = modeSVC
	c.regs.setSPSR(savedCPSR)
	c.regs.set(rLR, returnAddr)

	c.sr.irqDisable = true
	c.sr.thumb = false
	c.regs.set(rPC, 0x00000008)

	return baseCycles[formatSoftwareInterrupt], nil
}
