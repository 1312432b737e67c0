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

package cartridge

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// NROM (mapper 0) has no bank switching. 16KiB of PRG-ROM is mirrored into
// both halves of the 32KiB PRG space. Some boards (Family Basic) have PRG-RAM.
//
// cartridges:
//   - Super Mario Bros.
//   - Donkey Kong
type nrom struct {
	board
}

func newNROM(img image.Image) (mapper.CartMapper, error) {
	b, err := newBoard("NROM", img)
	if err != nil {
		return nil, err
	}

	if b.prgRAM.Size() > 0x2000 {
		return nil, curated.Errorf(IncompatiblePRGRAM, b.id, "no more than 8KiB supported")
	}
	if b.prgROM.Size() > 0x8000 {
		return nil, curated.Errorf(IncompatiblePRG, b.id, "no more than 32KiB supported")
	}

	return &nrom{board: b}, nil
}

func (cart *nrom) String() string {
	return "Bank: 0"
}

// Reset implements the mapper.CartMapper interface.
func (cart *nrom) Reset() {
}

// ReadCPU implements the mapper.CartMapper interface.
func (cart *nrom) ReadCPU(addr uint16) (uint8, bool) {
	switch {
	case addr >= originPRGROM:
		return cart.prgROM.Read(int(addr - originPRGROM))
	case addr >= originPRGRAM:
		return cart.readPRGRAM(addr)
	}
	return 0, false
}

// WriteCPU implements the mapper.CartMapper interface.
func (cart *nrom) WriteCPU(addr uint16, data uint8) {
	if addr >= originPRGRAM && addr <= memtopPRGRAM {
		cart.writePRGRAM(addr, data)
	}
}

// NumBanks implements the mapper.Banked interface.
func (cart *nrom) NumBanks() int {
	return 1
}

// GetBank implements the mapper.Banked interface.
func (cart *nrom) GetBank(addr uint16) mapper.BankInfo {
	switch {
	case addr >= originPRGROM:
		return mapper.BankInfo{Number: 0}
	case addr >= originPRGRAM:
		return mapper.BankInfo{Number: 0, IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}
