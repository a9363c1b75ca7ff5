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

package debug

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/armthumb/cpu"
	"github.com/jetsetilly/armthumb/logger"
	"github.com/jetsetilly/armthumb/scheduler"
)

// Session ties a CPU and Scheduler to a breakpoint-by-PC set, for driving
// both from the thumbdbg REPL one keystroke at a time. It never decodes or
// executes an opcode itself; every instruction effect comes from cpu.CPU's
// own Execute.
type Session struct {
	CPU       *cpu.CPU
	Scheduler *scheduler.Scheduler

	breakpoints map[uint32]bool
}

// NewSession wires a debugger session to an already-constructed CPU and
// Scheduler. Both are the caller's; Session only ever calls their public
// surface.
func NewSession(c *cpu.CPU, s *scheduler.Scheduler) *Session {
	return &Session{
		CPU:         c,
		Scheduler:   s,
		breakpoints: make(map[uint32]bool),
	}
}

// Step executes exactly one Thumb instruction and reports the cycles it
// consumed, same as a single-instruction cpu.CPU.Execute, and advances the
// scheduler to the CPU's new cycle count so any pending peripheral callback
// that falls due fires before the next step.
func (s *Session) Step() (uint32, error) {
	cycles, err := s.CPU.Execute(1)
	if s.Scheduler != nil {
		s.Scheduler.RunUntil(s.Scheduler.CurrentCycle() + uint64(cycles))
	}
	return cycles, err
}

// SetBreakpoint arms a breakpoint at the given PC value.
func (s *Session) SetBreakpoint(pc uint32) {
	s.breakpoints[pc] = true
}

// ClearBreakpoint disarms a breakpoint at the given PC value.
func (s *Session) ClearBreakpoint(pc uint32) {
	delete(s.breakpoints, pc)
}

// AtBreakpoint reports whether the CPU's current R15 is an armed breakpoint.
func (s *Session) AtBreakpoint() bool {
	return s.breakpoints[s.CPU.Register(15)]
}

// Run executes instructions until an armed breakpoint is hit, maxSteps is
// reached, or an error halts execution, whichever comes first. It logs the
// breakpoint hit through the package logger (see Format 17's own informal
// logging convention) so a caller draining logger.Tail sees why Run
// returned.
func (s *Session) Run(maxSteps uint32) (steps uint32, cycles uint32, err error) {
	for steps = 0; steps < maxSteps; steps++ {
		if steps > 0 && s.AtBreakpoint() {
			logger.Logf("thumbdbg", "breakpoint hit at %#08x", s.CPU.Register(15))
			return steps, cycles, nil
		}
		var n uint32
		n, err = s.Step()
		cycles += n
		if err != nil {
			return steps + 1, cycles, err
		}
	}
	return steps, cycles, nil
}

// Registers returns a snapshot of R0-R15.
func (s *Session) Registers() [16]uint32 {
	var r [16]uint32
	for i := range r {
		r[i] = s.CPU.Register(i)
	}
	return r
}

// graphSnapshot is the single value handed to memviz.Map: it, not the
// session itself, is what gets walked and rendered, so extra caller-supplied
// values can be added to the export without changing Session's own shape.
type graphSnapshot struct {
	CPU       *cpu.CPU
	Scheduler *scheduler.Scheduler
	Extra     []interface{}
}

// ExportGraph dumps the session's CPU and Scheduler, plus any extra values,
// as a graphviz dot-format state graph, for inspecting live struct state
// outside of register-by-register printf debugging. This adapts the
// reference debugger's one-off test use of memviz.Map (dumping a parsed
// command-line grammar to "memviz.dot") into a first-class debugger command
// over live emulator state instead of a static parse tree.
func (s *Session) ExportGraph(w io.Writer, extra ...interface{}) error {
	memviz.Map(w, &graphSnapshot{CPU: s.CPU, Scheduler: s.Scheduler, Extra: extra})
	return nil
}
