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

package collaborators

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/clocks"
)

// DotPPU counts the dots, scanlines and frames of an NTSC PPU.
type DotPPU struct {
	dot      int
	scanline int
	frame    int
}

// NewDotPPU is the preferred method of initialisation for the DotPPU type.
func NewDotPPU() *DotPPU {
	return &DotPPU{}
}

func (ppu *DotPPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d", ppu.frame, ppu.scanline, ppu.dot)
}

// Reset the PPU to the first dot of the first scanline.
func (ppu *DotPPU) Reset() {
	ppu.dot = 0
	ppu.scanline = 0
	ppu.frame = 0
}

// Step the PPU by one dot. Returns true if the dot was the last dot of a
// scanline.
func (ppu *DotPPU) Step() bool {
	ppu.dot++
	if ppu.dot < clocks.DotsPerScanline {
		return false
	}

	ppu.dot = 0
	ppu.scanline++
	if ppu.scanline >= clocks.NTSCScanlines {
		ppu.scanline = 0
		ppu.frame++
	}

	return true
}

// Scanline returns the current scanline.
func (ppu *DotPPU) Scanline() int {
	return ppu.scanline
}

// Frame returns the number of frames since the last reset.
func (ppu *DotPPU) Frame() int {
	return ppu.frame
}
