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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/apu/channel"
)

// Triangle is the triangle wave channel. It has no volume control but has a
// linear counter in addition to the length counter.
type Triangle struct {
	channel.Debug

	length lengthCounter

	// the control flag is shared by the length counter halt
	control      bool
	linearReload bool
	linearPeriod uint8
	linearValue  uint8

	timerPeriod uint16
	timerValue  uint16
	step        uint8
}

func newTriangle(chip string) *Triangle {
	return &Triangle{
		Debug: channel.NewDebug("Triangle", chip),
	}
}

func (t *Triangle) String() string {
	return fmt.Sprintf("%s: period=%d length=%d linear=%d",
		t.Name(), t.timerPeriod, t.length.value, t.linearValue)
}

// $4008 CRRR RRRR
func (t *Triangle) writeLinear(v uint8) {
	t.control = v&0x80 == 0x80
	t.length.halt = t.control
	t.linearPeriod = v & 0x7f
}

// $400A LLLL LLLL
func (t *Triangle) writeTimerLow(v uint8) {
	t.timerPeriod = (t.timerPeriod & 0xff00) | uint16(v)
}

// $400B LLLL LHHH
func (t *Triangle) writeTimerHigh(v uint8) {
	t.timerPeriod = (t.timerPeriod & 0x00ff) | (uint16(v&0x07) << 8)
	t.length.load(v >> 3)
	t.linearReload = true
}

// Clock implements the channel.Channel interface. The triangle timer is
// clocked every CPU cycle.
func (t *Triangle) Clock() {
	if t.timerValue > 0 {
		t.timerValue--
		return
	}
	t.timerValue = t.timerPeriod
	if t.length.active() && t.linearValue > 0 {
		t.step = (t.step + 1) & 0x1f
	}
}

func (t *Triangle) clockQuarterFrame() {
	if t.linearReload {
		t.linearValue = t.linearPeriod
	} else if t.linearValue > 0 {
		t.linearValue--
	}
	if !t.control {
		t.linearReload = false
	}
}

func (t *Triangle) clockHalfFrame() {
	t.length.clock()
}

// Output implements the channel.Channel interface.
func (t *Triangle) Output() int16 {
	if !t.length.active() || t.linearValue == 0 {
		return 0
	}
	return int16(triangleSequence[t.step&0x1f])
}

// MinSample implements the channel.Channel interface.
func (t *Triangle) MinSample() int16 {
	return 0
}

// MaxSample implements the channel.Channel interface.
func (t *Triangle) MaxSample() int16 {
	return 15
}

// RecordCurrentOutput implements the channel.Channel interface.
func (t *Triangle) RecordCurrentOutput() {
	t.Record(t.Output())
}

// Playing implements the channel.Channel interface.
func (t *Triangle) Playing() bool {
	return t.length.active() && t.linearValue > 0
}

// Amplitude implements the channel.Channel interface. The triangle channel
// has no volume control.
func (t *Triangle) Amplitude() float32 {
	if !t.Playing() {
		return 0
	}
	return 1.0
}

// Rate implements the channel.Channel interface.
func (t *Triangle) Rate() channel.PlaybackRate {
	return channel.PlaybackRate{
		Kind:      channel.FundamentalFrequency,
		Frequency: CPUClock / (32.0 * (float64(t.timerPeriod) + 1)),
	}
}

// Timbre implements the channel.Channel interface.
func (t *Triangle) Timbre() (channel.Timbre, bool) {
	return channel.Timbre{}, false
}
