// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package collaborators

import (
	"fmt"
)

// Bus is the part of the CPU bus used by IdleCPU.
type Bus interface {
	ReadCPU(addr uint16) (uint8, bool)
}

// the address of the reset vector.
const resetVector = 0xfffc

// the number of cycles consumed by every instruction. two cycles is the
// duration of the shortest 6502 instructions.
const cyclesPerStep = 2

// IdleCPU fetches opcodes from the CPU bus but does not decode or execute
// them.
type IdleCPU struct {
	bus Bus

	PC uint16

	// the value of the last fetch. unmapped addresses leave the previous
	// value on the data bus
	LastFetch uint8

	// number of cycles since the last reset
	Cycles int
}

// NewIdleCPU is the preferred method of initialisation for the IdleCPU type.
func NewIdleCPU(bus Bus) *IdleCPU {
	return &IdleCPU{bus: bus}
}

func (cpu *IdleCPU) String() string {
	return fmt.Sprintf("PC=%04x fetch=%02x cycles=%d", cpu.PC, cpu.LastFetch, cpu.Cycles)
}

func (cpu *IdleCPU) read(addr uint16) uint8 {
	if v, ok := cpu.bus.ReadCPU(addr); ok {
		cpu.LastFetch = v
	}
	return cpu.LastFetch
}

// Reset loads the program counter from the reset vector.
func (cpu *IdleCPU) Reset() {
	cpu.Cycles = 0
	lo := cpu.read(resetVector)
	hi := cpu.read(resetVector + 1)
	cpu.PC = (uint16(hi) << 8) | uint16(lo)
}

// Step fetches the next opcode and returns the number of cycles consumed.
func (cpu *IdleCPU) Step() int {
	cpu.read(cpu.PC)
	cpu.PC++
	cpu.Cycles += cyclesPerStep
	return cyclesPerStep
}
