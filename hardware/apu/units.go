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

// the value loaded into a length counter is the length table entry indexed by
// the top five bits of the register write.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// noise timer periods (NTSC) in CPU cycles.
var noisePeriods = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// the 32 step triangle sequence.
var triangleSequence = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// DMC rates (NTSC) in CPU cycles.
var dmcRates = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

// the four duty cycles of the pulse channels: 12.5%, 25%, 50% and 25% negated.
var dutySequences = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// lengthCounter silences a channel after a programmed duration unless it has
// been halted. The counter is clocked on half frames.
type lengthCounter struct {
	enabled bool
	halt    bool
	value   uint8
}

// load the counter with the length table entry. ignored if the channel is not
// enabled.
func (l *lengthCounter) load(index uint8) {
	if l.enabled {
		l.value = lengthTable[index&0x1f]
	}
}

func (l *lengthCounter) clock() {
	if !l.halt && l.value > 0 {
		l.value--
	}
}

// disabling the channel clears the counter immediately.
func (l *lengthCounter) setEnabled(enabled bool) {
	l.enabled = enabled
	if !enabled {
		l.value = 0
	}
}

func (l *lengthCounter) active() bool {
	return l.value > 0
}

// envelope produces either a constant volume or a decaying volume. The
// envelope is clocked on quarter frames.
type envelope struct {
	start    bool
	loop     bool
	constant bool
	period   uint8
	divider  uint8
	decay    uint8
}

// write the --LC VVVV part of a channel's first register. the L bit is shared
// with the length counter halt flag.
func (e *envelope) write(v uint8) {
	e.loop = v&0x20 == 0x20
	e.constant = v&0x10 == 0x10
	e.period = v & 0x0f
}

func (e *envelope) restart() {
	e.start = true
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.period
		return
	}

	if e.divider > 0 {
		e.divider--
		return
	}

	e.divider = e.period
	if e.decay > 0 {
		e.decay--
	} else if e.loop {
		e.decay = 15
	}
}

// volume is in the range 0 to 15.
func (e *envelope) volume() uint8 {
	if e.constant {
		return e.period
	}
	return e.decay
}
