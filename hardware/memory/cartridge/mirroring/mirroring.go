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

// Package mirroring translates PPU nametable addresses into offsets in the
// physical VRAM store. The four logical 1KiB nametables in the range 0x2000 to
// 0x2fff (mirrored again up to 0x3fff) are aliased onto the physical store
// according to the mirroring mode of the cartridge.
//
// The console supplies 2KiB of VRAM. FourScreen mirroring needs an additional
// 2KiB supplied by the cartridge. The offsets returned by the Horizontal(),
// Vertical() and single screen functions are always less than 0x0800. Offsets
// returned by FourScreen() are less than 0x1000.
package mirroring

import (
	"fmt"
)

// Mode specifies how the nametables are aliased.
type Mode int

// List of valid mirroring modes.
const (
	Horizontal Mode = iota
	Vertical
	SingleScreenA
	SingleScreenB
	FourScreen
)

func (m Mode) String() string {
	switch m {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case SingleScreenA:
		return "Single Screen A"
	case SingleScreenB:
		return "Single Screen B"
	case FourScreen:
		return "Four Screen"
	}
	return fmt.Sprintf("unknown mirroring (%d)", int(m))
}

// VRAMSize returns the amount of nametable memory required by the mirroring
// mode.
func (m Mode) VRAMSize() int {
	if m == FourScreen {
		return 0x1000
	}
	return 0x0800
}

// Valid returns true if the mode is one of the defined mirroring modes.
func (m Mode) Valid() bool {
	return m >= Horizontal && m <= FourScreen
}

// HorizontalOffset maps the top two nametables to the first 1KiB of VRAM
// and the bottom two nametables to the second 1KiB. Address bit 10 is ignored.
func HorizontalOffset(addr uint16) int {
	return int(((addr & 0x0800) >> 1) | (addr & 0x03ff))
}

// VerticalOffset maps the left two nametables to the first 1KiB of VRAM and
// the right two nametables to the second 1KiB. Address bit 11 is ignored.
func VerticalOffset(addr uint16) int {
	return int(addr & 0x07ff)
}

// SingleScreenAOffset maps all four nametables to the first 1KiB of VRAM.
func SingleScreenAOffset(addr uint16) int {
	return int(addr & 0x03ff)
}

// SingleScreenBOffset maps all four nametables to the second 1KiB of VRAM.
func SingleScreenBOffset(addr uint16) int {
	return int(0x0400 | (addr & 0x03ff))
}

// FourScreenOffset performs no aliasing. Each nametable has its own 1KiB of
// VRAM.
func FourScreenOffset(addr uint16) int {
	return int(addr & 0x0fff)
}

// Resolve the address according to the mirroring mode. Returns false if the
// mode is not a valid mirroring mode.
func Resolve(mode Mode, addr uint16) (int, bool) {
	switch mode {
	case Horizontal:
		return HorizontalOffset(addr), true
	case Vertical:
		return VerticalOffset(addr), true
	case SingleScreenA:
		return SingleScreenAOffset(addr), true
	case SingleScreenB:
		return SingleScreenBOffset(addr), true
	case FourScreen:
		return FourScreenOffset(addr), true
	}
	return 0, false
}
