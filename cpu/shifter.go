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

// The barrel shifter and ALU primitives below are pure functions returning
// (result, carry_out) or (result, carry_out, overflow) rather than mutating
// flag state as a side effect; the format executors assign the returned
// flags to status themselves. Returning the
// carry explicitly keeps it a first-class value at the point each shift
// amount's edge case is decided, which is easier to get right for the
// amount-0/32/>32 boundary cases every caller has to handle.
//
// lslShift, lsrShift, asrShift and rorShift all treat amount==0 as a no-op
// (result unchanged, carryOut==carryIn): that is correct for the register
// forms (Format 4), where Rs&0xFF==0 really is a no-op. Callers implementing
// the immediate-shift encodings (Format 1) must translate their own amount==0
// special cases (LSR #0 means LSR #32; ASR #0 means ASR #32; ROR #0 is RRX)
// before calling in.

func lslShift(value, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return value, carryIn
	case amount < 32:
		carryOut := value&(1<<(32-amount)) != 0
		return value << amount, carryOut
	case amount == 32:
		return 0, value&1 != 0
	default:
		return 0, false
	}
}

func lsrShift(value, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return value, carryIn
	case amount < 32:
		carryOut := value&(1<<(amount-1)) != 0
		return value >> amount, carryOut
	case amount == 32:
		return 0, value&0x80000000 != 0
	default:
		return 0, false
	}
}

func asrShift(value, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return value, carryIn
	case amount < 32:
		carryOut := value&(1<<(amount-1)) != 0
		result := value >> amount
		if value&0x80000000 != 0 {
			result |= 0xffffffff << (32 - amount)
		}
		return result, carryOut
	default:
		carryOut := value&0x80000000 != 0
		if carryOut {
			return 0xffffffff, true
		}
		return 0, false
	}
}

func rorShift(value, amount uint32, carryIn bool) (uint32, bool) {
	if amount == 0 {
		return value, carryIn
	}
	n := amount % 32
	if n == 0 {
		return value, value&0x80000000 != 0
	}
	carryOut := value&(1<<(n-1)) != 0
	return bits.RotateLeft32(value, -int(n)), carryOut
}

// rrx implements ROR #0 in the immediate encoding: a 33-bit rotate-right-
// through-carry by one position.
func rrx(value uint32, carryIn bool) (uint32, bool) {
	var c uint32
	if carryIn {
		c = 1
	}
	result := (c << 31) | (value >> 1)
	carryOut := value&1 != 0
	return result, carryOut
}

// addWithCarry computes a+b+carryIn modulo 2^32, returning the unsigned
// carry-out and the signed overflow flag.
func addWithCarry(a, b uint32, carryIn bool) (result uint32, carryOut bool, overflow bool) {
	var cin uint64
	if carryIn {
		cin = 1
	}
	sum := uint64(a) + uint64(b) + cin
	result = uint32(sum)
	carryOut = sum > 0xffffffff
	overflow = (a^b)&0x80000000 == 0 && (a^result)&0x80000000 != 0
	return
}

// subWithCarry computes a-b-(1-carryIn), ie SBC, by reusing addWithCarry with
// b inverted (SUB(a,b) ≡ ADD(a, ¬b, 1); SBC(a,b,Cin) ≡ ADC(a, ¬b, Cin)).
func subWithCarry(a, b uint32, carryIn bool) (result uint32, carryOut bool, overflow bool) {
	return addWithCarry(a, ^b, carryIn)
}
