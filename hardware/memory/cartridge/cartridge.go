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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
	"github.com/jetsetilly/gophernes/logger"
)

// NewMapper creates the mapper.CartMapper for the image. The mapper number in
// the image selects the implementation.
func NewMapper(img image.Image) (mapper.CartMapper, error) {
	switch img.MapperID {
	case 0:
		return newNROM(img)
	case 2:
		return newUxROM(img)
	case 3:
		return newCNROM(img)
	}
	return nil, curated.Errorf(UnsupportedMapper, img.MapperID)
}

// name and hash used for an ejected cartridge
const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	env *environment.Environment

	Name string
	Hash string

	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is ejected until Attach() is called.
func NewCartridge(env *environment.Environment) *Cartridge {
	cart := &Cartridge{env: env}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s) %s", cart.Name, cart.mapper.ID(), cart.mapper)
}

// Summary returns information about the cartridge and its memory.
func (cart *Cartridge) Summary() string {
	if b, ok := cart.mapper.(interface{ memory() string }); ok {
		return fmt.Sprintf("%s\n%s", cart, b.memory())
	}
	return cart.String()
}

// ID returns the mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// GetMapper returns the current mapper.
func (cart *Cartridge) GetMapper() mapper.CartMapper {
	return cart.mapper
}

// Eject removes the cartridge. The ejected cartridge responds to no address.
func (cart *Cartridge) Eject() {
	cart.Name = ejectedName
	cart.Hash = ejectedHash
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge image. If the image cannot be supported the cartridge
// is left ejected and the error returned.
func (cart *Cartridge) Attach(img image.Image) error {
	cart.Eject()

	m, err := NewMapper(img)
	if err != nil {
		return err
	}

	cart.Name = img.Name
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(img.PRGROM))
	cart.mapper = m

	logger.Logf(cart.env, "cartridge", "attached %s (%s)", cart.Name, cart.mapper.ID())

	return nil
}

// Reset the mapper registers.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// ReadCPU forwards the read to the mapper.
func (cart *Cartridge) ReadCPU(addr uint16) (uint8, bool) {
	return cart.mapper.ReadCPU(addr)
}

// WriteCPU forwards the write to the mapper.
func (cart *Cartridge) WriteCPU(addr uint16, data uint8) {
	cart.mapper.WriteCPU(addr, data)
}

// ReadPPU forwards the read to the mapper.
func (cart *Cartridge) ReadPPU(addr uint16) (uint8, bool) {
	return cart.mapper.ReadPPU(addr)
}

// WritePPU forwards the write to the mapper.
func (cart *Cartridge) WritePPU(addr uint16, data uint8) {
	cart.mapper.WritePPU(addr, data)
}

// Mirroring returns the current mirroring mode of the mapper.
func (cart *Cartridge) Mirroring() mirroring.Mode {
	return cart.mapper.Mirroring()
}

// Channels returns the expansion audio channels of the mapper.
func (cart *Cartridge) Channels() []channel.Channel {
	return cart.mapper.Channels()
}

// HasSRAM returns true if the cartridge has battery backed RAM.
func (cart *Cartridge) HasSRAM() bool {
	return cart.mapper.HasSRAM()
}

// SRAM returns a copy of the battery backed RAM. Returns nil if the cartridge
// has no battery backed RAM.
func (cart *Cartridge) SRAM() []uint8 {
	if !cart.mapper.HasSRAM() {
		return nil
	}
	if s, ok := cart.mapper.(mapper.SRAM); ok {
		return s.SRAM()
	}
	return nil
}

// LoadSRAM restores the battery backed RAM.
func (cart *Cartridge) LoadSRAM(data []uint8) error {
	if cart.IsEjected() {
		return curated.Errorf(Ejected)
	}
	s, ok := cart.mapper.(mapper.SRAM)
	if !ok || !cart.mapper.HasSRAM() {
		return curated.Errorf(IncompatibleSRAM, cart.mapper.ID(), "no battery backed RAM")
	}
	return s.LoadSRAM(data)
}

// SRAMFilename is the name of the file used to store the battery backed RAM.
func (cart *Cartridge) SRAMFilename() string {
	return cart.Name + ".sav"
}
