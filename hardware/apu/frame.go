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

package apu

// the CPU cycle on which each step of the frame sequencer happens. the
// sequencer resets on the cycle after the final step.
var (
	fourStep = [4]int{7457, 14913, 22371, 29829}
	fiveStep = [4]int{7457, 14913, 22371, 37281}
)

// frameSequencer generates the quarter and half frame clocks. In four step
// mode it can also raise the frame interrupt.
type frameSequencer struct {
	fiveStepMode bool
	irqInhibit   bool
	irq          bool

	cycle int
}

// $4017 MI-- ----. returns true if the write should immediately clock the
// quarter and half frame units.
func (f *frameSequencer) write(v uint8) bool {
	f.fiveStepMode = v&0x80 == 0x80
	f.irqInhibit = v&0x40 == 0x40
	if f.irqInhibit {
		f.irq = false
	}
	f.cycle = 0
	return f.fiveStepMode
}

// step advances the sequencer by one CPU cycle and reports whether a quarter
// or half frame clock occurred.
func (f *frameSequencer) step() (quarter bool, half bool) {
	f.cycle++

	steps := fourStep
	if f.fiveStepMode {
		steps = fiveStep
	}

	switch f.cycle {
	case steps[0], steps[2]:
		quarter = true
	case steps[1]:
		quarter = true
		half = true
	case steps[3]:
		quarter = true
		half = true
		if !f.fiveStepMode && !f.irqInhibit {
			f.irq = true
		}
	case steps[3] + 1:
		f.cycle = 0
	}

	return quarter, half
}
