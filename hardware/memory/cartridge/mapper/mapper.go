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

// Package mapper defines the interface that every cartridge mapper
// implements, along with optional interfaces for the features that only some
// mappers have.
//
// The CPU and the PPU never access cartridge memory directly. Every access is
// routed through a CartMapper, which decides which physical memory (if any)
// the address refers to. Address decoding is total: every address returns a
// value and an ok flag, and a false ok flag means nothing in the cartridge
// responds to the address.
package mapper

import (
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
)

// CartMapper implementations hold the memory of the loaded cartridge and keep
// track of which banks are mapped to individual addresses.
type CartMapper interface {
	// ID returns a short identifier for the mapper. For example, "NROM"
	ID() string

	// summary of the currently mapped banks
	String() string

	// reset the mapper registers. cartridge RAM is not changed
	Reset()

	// access the CPU address space. the address is the full 16 bit address.
	// returns false if the cartridge does not respond to the address
	ReadCPU(addr uint16) (uint8, bool)

	// writes to ROM are discarded or interpreted as register writes
	WriteCPU(addr uint16, data uint8)

	// access the PPU address space. the address is the full 14 bit address
	ReadPPU(addr uint16) (uint8, bool)
	WritePPU(addr uint16, data uint8)

	// the current nametable mirroring
	Mirroring() mirroring.Mode

	// expansion audio channels. empty for most mappers
	Channels() []channel.Channel

	// returns true if the cartridge has battery backed RAM
	HasSRAM() bool
}

// SRAM is implemented by mappers that can have battery backed RAM. The test
// for whether a cartridge has battery backed RAM should use the HasSRAM()
// function of the CartMapper interface as well as a type assertion.
type SRAM interface {
	// a copy of the battery backed RAM
	SRAM() []uint8

	// restore battery backed RAM. data that doesn't fill the RAM is not an
	// error
	LoadSRAM(data []uint8) error
}

// Banked is implemented by mappers that report bank information.
type Banked interface {
	NumBanks() int
	GetBank(addr uint16) BankInfo
}
