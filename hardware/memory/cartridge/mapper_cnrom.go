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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// CNROM (mapper 3) has fixed PRG-ROM, like NROM, but switches 8KiB of CHR-ROM.
// A write to anywhere in PRG-ROM space selects the CHR bank.
//
// cartridges:
//   - Arkanoid
//   - Paperboy
type cnrom struct {
	board

	chrBankSize int
	numCHRBanks int
	chrBank     int
}

func newCNROM(img image.Image) (mapper.CartMapper, error) {
	b, err := newBoard("CNROM", img)
	if err != nil {
		return nil, err
	}

	cart := &cnrom{
		board:       b,
		chrBankSize: 0x2000,
	}

	if b.chrIsRAM {
		return nil, curated.Errorf(IncompatibleCHR, b.id, "CHR-RAM not supported")
	}
	if b.chr.Size()%cart.chrBankSize != 0 {
		return nil, curated.Errorf(IncompatibleCHR, b.id, "size must be a multiple of 8KiB")
	}
	if b.prgROM.Size() > 0x8000 {
		return nil, curated.Errorf(IncompatiblePRG, b.id, "no more than 32KiB supported")
	}
	if b.prgRAM.Size() > 0 {
		return nil, curated.Errorf(IncompatiblePRGRAM, b.id, "PRG-RAM not supported")
	}

	cart.numCHRBanks = b.chr.Size() / cart.chrBankSize

	return cart, nil
}

func (cart *cnrom) String() string {
	return fmt.Sprintf("Bank: 0 CHR: %d", cart.chrBank)
}

// Reset implements the mapper.CartMapper interface.
func (cart *cnrom) Reset() {
	cart.setCHRBank(0)
}

func (cart *cnrom) setCHRBank(bank int) {
	cart.chrBank = bank % cart.numCHRBanks
	cart.chrOffset = cart.chrBank * cart.chrBankSize
}

// ReadCPU implements the mapper.CartMapper interface.
func (cart *cnrom) ReadCPU(addr uint16) (uint8, bool) {
	if addr >= originPRGROM {
		return cart.prgROM.Read(int(addr - originPRGROM))
	}
	return 0, false
}

// WriteCPU implements the mapper.CartMapper interface.
func (cart *cnrom) WriteCPU(addr uint16, data uint8) {
	if addr >= originPRGROM {
		cart.setCHRBank(int(data))
	}
}

// NumBanks implements the mapper.Banked interface.
func (cart *cnrom) NumBanks() int {
	return 1
}

// GetBank implements the mapper.Banked interface.
func (cart *cnrom) GetBank(addr uint16) mapper.BankInfo {
	if addr >= originPRGROM {
		return mapper.BankInfo{Number: 0}
	}
	return mapper.BankInfo{NonCart: true}
}
