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

// Package clocks defines the constant values that define the speed of the
// clocks in the NES console. Clock values are in MHz.
//
// The PPU is clocked three times for every CPU cycle on NTSC machines and 3.2
// times on PAL machines.
package clocks

const (
	NTSC = 1.789773
	PAL  = 1.662607
)

const (
	NTSC_PPU = NTSC * 3
	PAL_PPU  = PAL * 3.2
)

// number of PPU dots in a scanline.
const DotsPerScanline = 341

// number of scanlines in an NTSC frame, including the vertical blank.
const NTSCScanlines = 262

// the first scanline of the vertical blank is 241. the frame is ready to be
// latched once that scanline has been run.
const FrameCompleteScanline = 242
