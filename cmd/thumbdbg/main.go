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

// thumbdbg is a terminal debugger over a flat test-mode memory image: it
// loads a raw binary at address zero, resets the CPU into it, and drives a
// cbreak-mode REPL that steps instructions one keystroke at a time.
//
// Keys:
//
//	s  step one instruction
//	r  run until the armed breakpoint or 10000 steps, whichever first
//	b  arm a breakpoint at the current PC
//	g  export the current CPU/scheduler state to thumbdbg.dot
//	l  print the last 20 diagnostic log entries
//	q  quit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/armthumb/cpu"
	"github.com/jetsetilly/armthumb/debug"
	"github.com/jetsetilly/armthumb/logger"
	"github.com/jetsetilly/armthumb/memory"
	"github.com/jetsetilly/armthumb/scheduler"
)

func main() {
	ramSize := flag.Int("ramsize", 0x2000, "size in bytes of the flat test-mode RAM region")
	dotPath := flag.String("dot", "thumbdbg.dot", "path written by the 'g' state-graph export command")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: thumbdbg [flags] <binary image>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *ramSize, *dotPath); err != nil {
		fmt.Fprintln(os.Stderr, "thumbdbg:", err)
		os.Exit(1)
	}
}

func run(imagePath string, ramSize int, dotPath string) error {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	mem := memory.NewFlat(ramSize)
	if len(image) > mem.Len() {
		return fmt.Errorf("image (%d bytes) does not fit in a %d byte RAM region", len(image), mem.Len())
	}
	copy(mem.Bytes(), image)

	c := cpu.New(mem)
	sched := scheduler.NewScheduler()
	sess := debug.NewSession(c, sched)

	var term debug.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	if err := term.CBreakMode(); err != nil {
		return err
	}

	term.Printf("thumbdbg: loaded %d bytes; [s]tep [r]un [b]reakpoint [g]raph [l]og [q]uit\r\n", len(image))
	for {
		printState(&term, sess)

		key, err := term.ReadKey()
		if err != nil {
			return err
		}

		switch key {
		case 'q', 'Q':
			return nil
		case 's', 'S':
			if _, err := sess.Step(); err != nil {
				term.Printf("\r\nstep error: %v\r\n", err)
			}
		case 'r', 'R':
			steps, _, err := sess.Run(10000)
			term.Printf("\r\nran %d instructions", steps)
			if err != nil {
				term.Printf(": %v", err)
			}
			term.Printf("\r\n")
		case 'b', 'B':
			pc := sess.CPU.Register(cpu.RegisterPC)
			sess.SetBreakpoint(pc)
			term.Printf("\r\nbreakpoint armed at %#08x\r\n", pc)
		case 'g', 'G':
			if err := exportGraph(sess, dotPath); err != nil {
				term.Printf("\r\ngraph export error: %v\r\n", err)
			} else {
				term.Printf("\r\nstate graph written to %s\r\n", dotPath)
			}
		case 'l', 'L':
			term.Printf("\r\n")
			logger.Tail(os.Stdout, 20)
		}
	}
}

func exportGraph(sess *debug.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return sess.ExportGraph(f)
}

func printState(term *debug.Terminal, sess *debug.Session) {
	regs := sess.Registers()
	term.Printf("\rPC=%08x LR=%08x SP=%08x CPSR=%08x  ", regs[cpu.RegisterPC], regs[cpu.RegisterLR], regs[cpu.RegisterSP], sess.CPU.CPSR())
}
