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

package hardware

// address ranges of the CPU bus.
const (
	memtopRAM    = 0x1fff
	originPPU    = 0x2000
	memtopPPU    = 0x3fff
	originAPU    = 0x4000
	memtopAPU    = 0x4017
	originCart   = 0x4020
	apuStatus    = 0x4015
	apuFrameCtrl = 0x4017
)

// ReadCPU reads from the CPU address space. Returns false if nothing responds
// to the address, in which case the CPU should use the open bus value.
//
// PPU registers and the controller ports are not emulated and are never
// mapped.
func (nes *NES) ReadCPU(addr uint16) (uint8, bool) {
	switch {
	case addr <= memtopRAM:
		return nes.RAM.Read(int(addr))
	case addr >= originPPU && addr <= memtopPPU:
		return 0, false
	case addr == apuStatus:
		return nes.APU.Read(addr)
	case addr >= originCart:
		return nes.Cart.ReadCPU(addr)
	}
	return 0, false
}

// WriteCPU writes to the CPU address space. Writes to unmapped addresses are
// ignored.
func (nes *NES) WriteCPU(addr uint16, data uint8) {
	switch {
	case addr <= memtopRAM:
		nes.RAM.Write(int(addr), data)
	case addr >= originAPU && addr <= memtopAPU:
		nes.APU.Write(addr, data)
	case addr >= originCart:
		nes.Cart.WriteCPU(addr, data)
	}
}

// ReadPPU reads from the PPU address space.
func (nes *NES) ReadPPU(addr uint16) (uint8, bool) {
	return nes.Cart.ReadPPU(addr)
}

// WritePPU writes to the PPU address space.
func (nes *NES) WritePPU(addr uint16, data uint8) {
	nes.Cart.WritePPU(addr, data)
}
