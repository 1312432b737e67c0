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

// Sentinal errors returned by NewMapper() and the Cartridge type.
const (
	UnsupportedMapper     = "cartridge: unsupported mapper (%d)"
	IncompatiblePRG       = "cartridge: %s: incompatible PRG-ROM: %s"
	IncompatiblePRGRAM    = "cartridge: %s: incompatible PRG-RAM: %s"
	IncompatibleCHR       = "cartridge: %s: incompatible CHR: %s"
	IncompatibleMirroring = "cartridge: %s: incompatible mirroring: %s"
	IncompatibleSRAM      = "cartridge: %s: incompatible battery RAM: %s"
	Ejected               = "cartridge: ejected"
)
