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

// UxROM (mapper 2) switches 16KiB of PRG-ROM into the range $8000 to $BFFF.
// The range $C000 to $FFFF is fixed to the last bank. A write to anywhere in
// PRG-ROM space selects the bank. CHR is usually RAM.
//
// cartridges:
//   - Mega Man
//   - Castlevania
//   - Duck Tales
type uxrom struct {
	board

	bankSize int
	numBanks int

	// the bank mapped into the first segment
	bank int
}

func newUxROM(img image.Image) (mapper.CartMapper, error) {
	b, err := newBoard("UxROM", img)
	if err != nil {
		return nil, err
	}

	cart := &uxrom{
		board:    b,
		bankSize: 0x4000,
	}

	if b.prgROM.Size()%cart.bankSize != 0 {
		return nil, curated.Errorf(IncompatiblePRG, b.id, "size must be a multiple of 16KiB")
	}
	cart.numBanks = b.prgROM.Size() / cart.bankSize

	return cart, nil
}

func (cart *uxrom) String() string {
	return fmt.Sprintf("Banks: %d %d", cart.bank, cart.numBanks-1)
}

// Reset implements the mapper.CartMapper interface.
func (cart *uxrom) Reset() {
	cart.bank = 0
}

// ReadCPU implements the mapper.CartMapper interface.
func (cart *uxrom) ReadCPU(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0xc000:
		return cart.prgROM.Read((cart.numBanks-1)*cart.bankSize + int(addr&0x3fff))
	case addr >= originPRGROM:
		return cart.prgROM.Read(cart.bank*cart.bankSize + int(addr&0x3fff))
	case addr >= originPRGRAM:
		return cart.readPRGRAM(addr)
	}
	return 0, false
}

// WriteCPU implements the mapper.CartMapper interface.
func (cart *uxrom) WriteCPU(addr uint16, data uint8) {
	switch {
	case addr >= originPRGROM:
		cart.bank = int(data) % cart.numBanks
	case addr >= originPRGRAM:
		cart.writePRGRAM(addr, data)
	}
}

// NumBanks implements the mapper.Banked interface.
func (cart *uxrom) NumBanks() int {
	return cart.numBanks
}

// GetBank implements the mapper.Banked interface.
func (cart *uxrom) GetBank(addr uint16) mapper.BankInfo {
	switch {
	case addr >= 0xc000:
		return mapper.BankInfo{Number: cart.numBanks - 1, Segment: 1}
	case addr >= originPRGROM:
		return mapper.BankInfo{Number: cart.bank, Segment: 0}
	case addr >= originPRGRAM:
		return mapper.BankInfo{Number: 0, IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}
