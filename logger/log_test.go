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

package logger_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/armthumb/cpu"
	"github.com/jetsetilly/armthumb/logger"
	"github.com/jetsetilly/armthumb/memory"
	"github.com/jetsetilly/armthumb/test"
)

// an independent Logger records the same shape of entry the CPU's own
// diagnostic calls produce, without needing a CPU in the loop.
func TestLoggerWriteAndTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	undef := &cpu.UndefinedInstruction{Addr: 0x100, Opcode: 0xde00}
	log.Log(logger.Allow, "cpu", undef)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: "+undef.Error()+"\n")

	w.Reset()

	log.Log(logger.Allow, "scheduler", "breakpoint armed at 0x00000100")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: "+undef.Error()+"\nscheduler: breakpoint armed at 0x00000100\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "cpu: "+undef.Error()+"\nscheduler: breakpoint armed at 0x00000100\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "cpu: "+undef.Error()+"\nscheduler: breakpoint armed at 0x00000100\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "scheduler: breakpoint armed at 0x00000100\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// recordingSession models the kind of Permission thumbdbg's debugger would
// supply: logging is only wanted while a recording session is active, the
// same condition logger.Permission's doc comment describes.
type recordingSession struct {
	active int
}

func (r recordingSession) AllowLogging() bool {
	return r.active > 50
}

func TestPermissionGatesRecordingSession(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p recordingSession

	for i := 0; i < 100; i++ {
		p.active = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "thumbdbg", "breakpoint hit at 0x00000200")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "thumbdbg: breakpoint hit at 0x00000200\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// Log explicitly handles error types by using the Error() result, the same
// path a real memory.Fault or cpu.UndefinedInstruction travels in production.
func TestErrorLoggingUsesErrorMethod(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	fault := &memory.Fault{Addr: 0x1000, Write: true, Size: 4, Msg: "out of range"}

	log.Log(logger.Allow, "memory", fault)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: "+fault.Error()+"\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "memory", "aborting load: %v", fault)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: aborting load: "+fault.Error()+"\n")
}

// breakpointHit is a Stringer, exercising Log's explicit fmt.Stringer branch
// the way a debugger event type would.
type breakpointHit struct {
	addr uint32
}

func (b breakpointHit) String() string {
	return "breakpoint hit"
}

func TestStringerLoggingUsesStringMethod(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "thumbdbg", breakpointHit{addr: 0x200})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "thumbdbg: breakpoint hit\n")
}

// for explicitly unsupported types, Log falls back to the %v verb - here a
// raw cycle count, the kind of value the scheduler might log before a typed
// wrapper exists for it.
func TestUnsupportedTypeLoggingFallsBackToFormatVerb(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "scheduler", uint64(1024))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "scheduler: 1024\n")
}
