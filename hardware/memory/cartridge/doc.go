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

// Package cartridge implements the cartridge mappers of the NES. A mapper
// intercepts every CPU and PPU access to cartridge space and redirects it to
// the correct physical memory. The physical memory is made up of PRG-ROM,
// PRG-RAM (possibly battery backed), CHR-ROM or CHR-RAM and the nametable
// VRAM.
//
// Mappers are created from an image.Image with the NewMapper() function. The
// mapper number in the image selects the implementation. Currently supported
// mappers:
//
//	0	NROM
//	2	UxROM
//	3	CNROM
//
// The Cartridge type wraps a mapper and is what the rest of the emulation
// uses. A Cartridge with no mapper attached is "ejected" and responds to no
// address.
//
// NewMapper() will fail if the image describes memory that the mapper can't
// support. The errors are curated errors and can be tested for with
// curated.Is(). For example:
//
//	if curated.Is(err, cartridge.IncompatibleCHR) {
//		...
//	}
package cartridge
