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

// Package memory defines the abstract byte/halfword/word memory interface
// the CPU fetches and loads/stores through, plus a flat RAM implementation of
// it for use in test mode. Production address-space routing (ROM, VRAM, IO
// registers) lives outside this module; the CPU only ever sees this
// interface.
package memory

import "fmt"

// Fault is returned by a Memory implementation when an access falls outside
// any mapped region, hits a forbidden region, or violates an alignment
// requirement. The CPU stops execution and returns it from cpu.CPU.Execute.
type Fault struct {
	Addr  uint32
	Write bool
	Size  int
	Msg   string
}

func (f *Fault) Error() string {
	dir := "read"
	if f.Write {
		dir = "write"
	}
	return fmt.Sprintf("memory: %s%d %s at %#08x: %s", dir, f.Size*8, dir, f.Addr, f.Msg)
}

// Memory is the collaborator interface consumed by the CPU. All accesses are
// little-endian. read16/write16 require addr%2==0; read32/write32 require
// addr%4==0. An out-of-range or misaligned access returns a *Fault.
type Memory interface {
	Read8(addr uint32) (uint8, error)
	Read16(addr uint32) (uint16, error)
	Read32(addr uint32) (uint32, error)
	Write8(addr uint32, v uint8) error
	Write16(addr uint32, v uint16) error
	Write32(addr uint32, v uint32) error
}

// Flat is a flat byte-slice RAM region starting at address 0, sized to
// capacity. It is the "test mode" memory described by the specification: no
// address-space routing, no peripherals, every address in range is plain
// RAM and every address outside it is a Fault.
type Flat struct {
	ram []byte
}

// NewFlat allocates a Flat region of the given size in bytes.
func NewFlat(size int) *Flat {
	return &Flat{ram: make([]byte, size)}
}

// Len returns the size of the backing RAM in bytes.
func (m *Flat) Len() int {
	return len(m.ram)
}

// Bytes exposes the backing store directly, for test setup convenience (eg.
// seeding a program image before reset).
func (m *Flat) Bytes() []byte {
	return m.ram
}

func (m *Flat) checkRange(addr uint32, size int) error {
	if int(addr)+size > len(m.ram) || int(addr) < 0 {
		return &Fault{Addr: addr, Size: size, Msg: "out of range"}
	}
	return nil
}

// Read8 implements Memory.
func (m *Flat) Read8(addr uint32) (uint8, error) {
	if err := m.checkRange(addr, 1); err != nil {
		return 0, err
	}
	return m.ram[addr], nil
}

// Write8 implements Memory.
func (m *Flat) Write8(addr uint32, v uint8) error {
	if err := m.checkRange(addr, 1); err != nil {
		return err
	}
	m.ram[addr] = v
	return nil
}

// Read16 implements Memory.
func (m *Flat) Read16(addr uint32) (uint16, error) {
	if addr&0x01 != 0 {
		return 0, &Fault{Addr: addr, Size: 2, Msg: "misaligned 16 bit access"}
	}
	if err := m.checkRange(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m.ram[addr]) | uint16(m.ram[addr+1])<<8, nil
}

// Write16 implements Memory.
func (m *Flat) Write16(addr uint32, v uint16) error {
	if addr&0x01 != 0 {
		return &Fault{Addr: addr, Write: true, Size: 2, Msg: "misaligned 16 bit access"}
	}
	if err := m.checkRange(addr, 2); err != nil {
		return err
	}
	m.ram[addr] = uint8(v)
	m.ram[addr+1] = uint8(v >> 8)
	return nil
}

// Read32 implements Memory.
func (m *Flat) Read32(addr uint32) (uint32, error) {
	if addr&0x03 != 0 {
		return 0, &Fault{Addr: addr, Size: 4, Msg: "misaligned 32 bit access"}
	}
	if err := m.checkRange(addr, 4); err != nil {
		return 0, err
	}
	return uint32(m.ram[addr]) | uint32(m.ram[addr+1])<<8 | uint32(m.ram[addr+2])<<16 | uint32(m.ram[addr+3])<<24, nil
}

// Write32 implements Memory.
func (m *Flat) Write32(addr uint32, v uint32) error {
	if addr&0x03 != 0 {
		return &Fault{Addr: addr, Write: true, Size: 4, Msg: "misaligned 32 bit access"}
	}
	if err := m.checkRange(addr, 4); err != nil {
		return err
	}
	m.ram[addr] = uint8(v)
	m.ram[addr+1] = uint8(v >> 8)
	m.ram[addr+2] = uint8(v >> 16)
	m.ram[addr+3] = uint8(v >> 24)
	return nil
}
