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

// Package debug implements the interactive terminal debugger that drives a
// cpu.CPU and scheduler.Scheduler from raw keystrokes: single-step, register
// and flag dump, breakpoint-by-PC, and a graphviz state-graph export. It is
// a consumer of the public cpu/scheduler surface only; it never reaches into
// either package's unexported decode/execute path.
package debug

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal puts the controlling terminal into cbreak mode for single
// keystroke reads, and restores canonical mode on CleanUp. It is adapted
// from the reference debugger's easyterm wrapper around
// "github.com/pkg/term/termios": the geometry-tracking/SIGWINCH handler that
// package layers on top is dropped here since thumbdbg never lays out
// anything wider than a single status line.
type Terminal struct {
	in  *os.File
	out *os.File

	canonAttr  syscall.Termios
	cbreakAttr syscall.Termios
}

// Initialise records in/out and captures the terminal's canonical attributes
// so CleanUp can restore them. It does not itself enter cbreak mode; call
// CBreakMode when ready to read single keystrokes.
func (t *Terminal) Initialise(in, out *os.File) error {
	if in == nil || out == nil {
		return fmt.Errorf("debug: terminal requires non-nil input and output files")
	}
	t.in = in
	t.out = out

	if err := termios.Tcgetattr(t.in.Fd(), &t.canonAttr); err != nil {
		return fmt.Errorf("debug: reading terminal attributes: %w", err)
	}
	t.cbreakAttr = t.canonAttr
	termios.Cfmakecbreak(&t.cbreakAttr)
	return nil
}

// CBreakMode switches the terminal into cbreak mode: input is available a
// character at a time, without the line editing and signal-generation a
// canonical terminal provides.
func (t *Terminal) CBreakMode() error {
	return termios.Tcsetattr(t.in.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

// CanonicalMode restores the terminal to whatever mode it was in when
// Initialise ran.
func (t *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(t.in.Fd(), termios.TCIFLUSH, &t.canonAttr)
}

// CleanUp restores canonical mode. Safe to call even if CBreakMode was never
// entered.
func (t *Terminal) CleanUp() {
	_ = t.CanonicalMode()
}

// ReadKey blocks for a single keystroke from the terminal's input file.
func (t *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	if _, err := t.in.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Printf writes a formatted status line to the terminal's output file.
func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}
