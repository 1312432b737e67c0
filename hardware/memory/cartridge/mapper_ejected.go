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
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
)

// ejected implements the mapper.CartMapper interface. It is the mapper used
// when no cartridge is inserted and responds to no address.
type ejected struct {
}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) String() string {
	return "ejected"
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
}

// ReadCPU implements the mapper.CartMapper interface.
func (cart *ejected) ReadCPU(_ uint16) (uint8, bool) {
	return 0, false
}

// WriteCPU implements the mapper.CartMapper interface.
func (cart *ejected) WriteCPU(_ uint16, _ uint8) {
}

// ReadPPU implements the mapper.CartMapper interface.
func (cart *ejected) ReadPPU(_ uint16) (uint8, bool) {
	return 0, false
}

// WritePPU implements the mapper.CartMapper interface.
func (cart *ejected) WritePPU(_ uint16, _ uint8) {
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *ejected) Mirroring() mirroring.Mode {
	return mirroring.Horizontal
}

// Channels implements the mapper.CartMapper interface.
func (cart *ejected) Channels() []channel.Channel {
	return nil
}

// HasSRAM implements the mapper.CartMapper interface.
func (cart *ejected) HasSRAM() bool {
	return false
}

// NumBanks implements the mapper.Banked interface.
func (cart *ejected) NumBanks() int {
	return 0
}

// GetBank implements the mapper.Banked interface.
func (cart *ejected) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: true}
}
