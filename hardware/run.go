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
	"fmt"
)

// Ticks summarises the hardware events that occurred during a call to
// RunScanline().
type Ticks struct {
	// number of CPU cycles run
	Cycles int

	// number of quarter and half frame clocks from the APU frame sequencer
	QuarterFrames int
	HalfFrames    int

	// the scanline the PPU is on at the end of the run
	Scanline int

	// a new frame has started
	NewFrame bool
}

func (t Ticks) String() string {
	return fmt.Sprintf("cycles=%d quarter=%d half=%d scanline=%d newframe=%v",
		t.Cycles, t.QuarterFrames, t.HalfFrames, t.Scanline, t.NewFrame)
}

// RunScanline runs the console until the PPU reaches the end of the current
// scanline. The instruction that crosses the scanline boundary is completed
// so the number of cycles run will vary.
//
// The APU is stepped once and the PPU three times for every CPU cycle.
func (nes *NES) RunScanline() Ticks {
	var t Ticks

	frame := nes.PPU.Frame()

	var done bool
	for !done {
		cycles := nes.CPU.Step()
		if cycles < 1 {
			cycles = 1
		}
		for i := 0; i < cycles; i++ {
			nes.APU.Step()
			for j := 0; j < 3; j++ {
				if nes.PPU.Step() {
					done = true
				}
			}
		}
		t.Cycles += cycles
	}

	t.QuarterFrames, t.HalfFrames = nes.APU.FrameTicks()
	t.Scanline = nes.PPU.Scanline()
	t.NewFrame = nes.PPU.Frame() != frame

	return t
}
