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

package debug_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/armthumb/cpu"
	"github.com/jetsetilly/armthumb/debug"
	"github.com/jetsetilly/armthumb/memory"
	"github.com/jetsetilly/armthumb/scheduler"
	"github.com/jetsetilly/armthumb/test"
)

func putThumb(m *memory.Flat, addr uint32, opcode uint16) {
	m.Bytes()[addr] = uint8(opcode)
	m.Bytes()[addr+1] = uint8(opcode >> 8)
}

func TestSessionStepAdvancesScheduler(t *testing.T) {
	m := memory.NewFlat(16)
	c := cpu.New(m)
	c.SetCPSR(1 << cpu.BitT)
	c.SetRegister(15, 0)
	putThumb(m, 0, 0x2001) // MOV R0, #1

	sched := scheduler.NewScheduler()
	fired := false
	sched.Schedule(1, func() { fired = true })

	sess := debug.NewSession(c, sched)
	cycles, err := sess.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, uint32(1), cycles)
	test.ExpectEquality(t, true, fired)
	test.ExpectEquality(t, uint32(1), c.Register(0))
}

func TestSessionRunStopsAtBreakpoint(t *testing.T) {
	m := memory.NewFlat(16)
	c := cpu.New(m)
	c.SetCPSR(1 << cpu.BitT)
	c.SetRegister(15, 0)
	putThumb(m, 0, 0x2001) // MOV R0, #1
	putThumb(m, 2, 0x2102) // MOV R1, #2
	putThumb(m, 4, 0x2203) // MOV R2, #3

	sess := debug.NewSession(c, nil)
	sess.SetBreakpoint(4)

	steps, _, err := sess.Run(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, uint32(2), steps)
	test.ExpectEquality(t, uint32(1), c.Register(0))
	test.ExpectEquality(t, uint32(2), c.Register(1))
	test.ExpectEquality(t, uint32(0), c.Register(2))
}

func TestSessionRegisters(t *testing.T) {
	m := memory.NewFlat(16)
	c := cpu.New(m)
	c.SetRegister(3, 0xdeadbeef)
	sess := debug.NewSession(c, nil)
	regs := sess.Registers()
	test.ExpectEquality(t, uint32(0xdeadbeef), regs[3])
}

func TestSessionExportGraph(t *testing.T) {
	m := memory.NewFlat(16)
	c := cpu.New(m)
	sched := scheduler.NewScheduler()
	sess := debug.NewSession(c, sched)

	var w test.Writer
	err := sess.ExportGraph(&w)
	test.ExpectSuccess(t, err)
	if !strings.Contains(w.String(), "digraph") {
		t.Errorf("expected graphviz digraph output, got %q", w.String())
	}
}
