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

// Package image describes a cartridge in the form required by the cartridge
// package. The Image type is the only thing the emulation needs to know about
// a cartridge file. How the Image is produced is not important but the
// FromINES() function is provided for the common iNES file format.
package image

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
)

// Image is the description of a cartridge.
type Image struct {
	// name of the cartridge. used to name the battery RAM file
	Name string

	// the mapper number. selects the cartridge mapper
	MapperID int

	PRGROM     []uint8
	PRGRAMSize int

	// CHRROM and CHRRAMSize are mutually exclusive
	CHRROM     []uint8
	CHRRAMSize int

	// additional nametable RAM on the cartridge. required for FourScreen
	// mirroring
	NametableRAMSize int

	Mirroring mirroring.Mode

	// PRG-RAM is battery backed
	Battery bool
}

func (img Image) String() string {
	return fmt.Sprintf("%s: mapper %d, PRG %d, CHR %d (RAM %d), %s",
		img.Name, img.MapperID, len(img.PRGROM), len(img.CHRROM), img.CHRRAMSize, img.Mirroring)
}
