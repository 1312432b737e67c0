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

import (
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/collaborators"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/hardware/memory/memoryblock"
	"github.com/jetsetilly/gophernes/logger"
)

// CPU is the interface to the CPU collaborator.
type CPU interface {
	Reset()

	// execute one instruction and return the number of CPU cycles consumed
	Step() int
}

// PPU is the interface to the PPU collaborator.
type PPU interface {
	Reset()

	// advance one dot. returns true if the dot ended the scanline
	Step() bool

	Scanline() int
	Frame() int
}

// size of the internal RAM. it is mirrored across $0000 to $1fff
const internalRAMSize = 0x0800

// NES is the root of the emulated console.
type NES struct {
	Env *environment.Environment

	RAM  *memoryblock.Block
	APU  *apu.APU
	Cart *cartridge.Cartridge

	CPU CPU
	PPU PPU
}

// NewNES creates a new NES and everything associated with the hardware. The
// CPU and PPU collaborators are the stand-ins from the collaborators package.
// They can be replaced with SetCollaborators().
func NewNES(env *environment.Environment) *NES {
	nes := &NES{
		Env:  env,
		RAM:  memoryblock.NewBlock(internalRAMSize),
		Cart: cartridge.NewCartridge(env),
	}

	nes.APU = apu.NewAPU(env, nes)
	nes.CPU = collaborators.NewIdleCPU(nes)
	nes.PPU = collaborators.NewDotPPU()

	return nes
}

// SetCollaborators replaces the CPU and PPU. The console is reset.
func (nes *NES) SetCollaborators(cpu CPU, ppu PPU) {
	nes.CPU = cpu
	nes.PPU = ppu
	nes.Reset()
}

// AttachCartridge creates the cartridge mapper from the image and resets the
// console. The battery backed RAM is restored from sram if it is not nil.
//
// If the image can't be attached the console is left with no cartridge.
func (nes *NES) AttachCartridge(img image.Image, sram []uint8) error {
	err := nes.Cart.Attach(img)
	if err != nil {
		nes.APU.SetExpansion(nil)
		nes.Reset()
		return err
	}

	if sram != nil && nes.Cart.HasSRAM() {
		if err := nes.Cart.LoadSRAM(sram); err != nil {
			logger.Logf(nes.Env, "nes", "battery RAM not restored: %v", err)
		}
	}

	nes.APU.SetExpansion(nes.Cart.Channels())
	nes.Reset()

	return nil
}

// Reset the console. Memory is not cleared.
func (nes *NES) Reset() {
	nes.Cart.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset()
}

// Channels returns every audio channel in the console. The 2A03 channels are
// followed by any channels supplied by the cartridge.
func (nes *NES) Channels() []channel.Channel {
	return nes.APU.Channels()
}
