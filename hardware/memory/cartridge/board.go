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
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
	"github.com/jetsetilly/gophernes/hardware/memory/memoryblock"
)

// address ranges common to all mappers
const (
	originPRGRAM = 0x6000
	memtopPRGRAM = 0x7fff
	originPRGROM = 0x8000
	originCHR    = 0x0000
	memtopCHR    = 0x1fff
	originVRAM   = 0x2000
	memtopVRAM   = 0x3fff
)

// board is the physical memory of a cartridge and the parts of the
// mapper.CartMapper interface that are the same for every mapper. mapper
// implementations embed the board and supply the CPU side of the interface.
type board struct {
	id string

	prgROM *memoryblock.Block
	prgRAM *memoryblock.Block
	chr    *memoryblock.Block

	// CHR can be written to if it is RAM
	chrIsRAM bool

	// the start of the selected CHR bank
	chrOffset int

	mirroring mirroring.Mode

	// console VRAM plus any nametable RAM supplied by the cartridge
	vram *memoryblock.Block

	battery bool
}

// check the image for memory shapes that no mapper can support and create
// the physical memory.
func newBoard(id string, img image.Image) (board, error) {
	if len(img.PRGROM) == 0 {
		return board{}, curated.Errorf(IncompatiblePRG, id, "no PRG-ROM")
	}

	if len(img.CHRROM) == 0 && img.CHRRAMSize == 0 {
		return board{}, curated.Errorf(IncompatibleCHR, id, "no CHR-ROM or CHR-RAM")
	}
	if len(img.CHRROM) > 0 && img.CHRRAMSize > 0 {
		return board{}, curated.Errorf(IncompatibleCHR, id, "both CHR-ROM and CHR-RAM")
	}
	if img.CHRRAMSize < 0 {
		return board{}, curated.Errorf(IncompatibleCHR, id, fmt.Sprintf("negative CHR-RAM size (%d)", img.CHRRAMSize))
	}

	if img.PRGRAMSize < 0 {
		return board{}, curated.Errorf(IncompatiblePRGRAM, id, fmt.Sprintf("negative PRG-RAM size (%d)", img.PRGRAMSize))
	}
	if img.Battery && img.PRGRAMSize == 0 {
		return board{}, curated.Errorf(IncompatiblePRGRAM, id, "battery backed but no PRG-RAM")
	}

	if !img.Mirroring.Valid() {
		return board{}, curated.Errorf(IncompatibleMirroring, id, img.Mirroring.String())
	}

	// the console supplies 2KiB of VRAM. four screen mirroring needs the other
	// 2KiB to be on the cartridge
	if img.Mirroring == mirroring.FourScreen {
		if img.NametableRAMSize != 0x0800 {
			return board{}, curated.Errorf(IncompatibleMirroring, id,
				fmt.Sprintf("four screen requires 2KiB of nametable RAM (%d bytes)", img.NametableRAMSize))
		}
	} else if img.NametableRAMSize != 0 {
		return board{}, curated.Errorf(IncompatibleMirroring, id,
			fmt.Sprintf("nametable RAM is only supported for four screen (%s)", img.Mirroring))
	}

	b := board{
		id:        id,
		prgROM:    memoryblock.NewBlockFromData(img.PRGROM),
		prgRAM:    memoryblock.NewBlock(img.PRGRAMSize),
		mirroring: img.Mirroring,
		vram:      memoryblock.NewBlock(img.Mirroring.VRAMSize()),
		battery:   img.Battery,
	}

	if img.CHRRAMSize > 0 {
		b.chr = memoryblock.NewBlock(img.CHRRAMSize)
		b.chrIsRAM = true
	} else {
		b.chr = memoryblock.NewBlockFromData(img.CHRROM)
	}

	return b, nil
}

// ID implements the mapper.CartMapper interface.
func (b *board) ID() string {
	return b.id
}

func (b *board) readPRGRAM(addr uint16) (uint8, bool) {
	return b.prgRAM.Read(int(addr - originPRGRAM))
}

func (b *board) writePRGRAM(addr uint16, data uint8) {
	b.prgRAM.Write(int(addr-originPRGRAM), data)
}

// ReadPPU implements the mapper.CartMapper interface.
func (b *board) ReadPPU(addr uint16) (uint8, bool) {
	switch {
	case addr <= memtopCHR:
		return b.chr.Read(b.chrOffset + int(addr-originCHR))
	case addr <= memtopVRAM:
		idx, ok := mirroring.Resolve(b.mirroring, addr-originVRAM)
		if !ok {
			return 0, false
		}
		return b.vram.Read(idx)
	}
	return 0, false
}

// WritePPU implements the mapper.CartMapper interface.
func (b *board) WritePPU(addr uint16, data uint8) {
	switch {
	case addr <= memtopCHR:
		if b.chrIsRAM {
			b.chr.Write(b.chrOffset+int(addr-originCHR), data)
		}
	case addr <= memtopVRAM:
		if idx, ok := mirroring.Resolve(b.mirroring, addr-originVRAM); ok {
			b.vram.Write(idx, data)
		}
	}
}

// Mirroring implements the mapper.CartMapper interface.
func (b *board) Mirroring() mirroring.Mode {
	return b.mirroring
}

// Channels implements the mapper.CartMapper interface.
func (b *board) Channels() []channel.Channel {
	return nil
}

// HasSRAM implements the mapper.CartMapper interface.
func (b *board) HasSRAM() bool {
	return b.battery && b.prgRAM.Size() > 0
}

// SRAM implements the mapper.SRAM interface.
func (b *board) SRAM() []uint8 {
	return b.prgRAM.Data()
}

// LoadSRAM implements the mapper.SRAM interface.
func (b *board) LoadSRAM(data []uint8) error {
	if len(data) > b.prgRAM.Size() {
		return curated.Errorf(IncompatibleSRAM, b.id,
			fmt.Sprintf("%d bytes is too large for %s of PRG-RAM", len(data), b.prgRAM))
	}
	b.prgRAM.Load(data)
	return nil
}

// summary of the physical memory.
func (b *board) memory() string {
	chr := "ROM"
	if b.chrIsRAM {
		chr = "RAM"
	}
	return fmt.Sprintf("PRG-ROM %s, PRG-RAM %s, CHR-%s %s, %s", b.prgROM, b.prgRAM, chr, b.chr, b.mirroring)
}
