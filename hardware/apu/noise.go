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

// Noise is the pseudo-random noise channel. The noise is generated by a 15 bit
// linear feedback shift register.
type Noise struct {
	channel.Debug

	envelope envelope
	length   lengthCounter

	// short mode (or mode 1) takes the feedback from bit 6 rather than bit 1
	mode bool

	periodIndex   uint8
	periodInitial uint16
	periodCurrent uint16

	// 15 bit shift register
	shift uint16
}

func newNoise(chip string) *Noise {
	return &Noise{
		Debug: channel.NewDebug("Noise", chip),
		shift: 1,
	}
}

func (n *Noise) String() string {
	return fmt.Sprintf("%s: lfsr=%04x mode=%v period=%d length=%d vol=%d",
		n.Name(), n.shift, n.mode, n.periodInitial, n.length.value, n.envelope.volume())
}

// $400C --LC VVVV
func (n *Noise) writeControl(v uint8) {
	n.length.halt = v&0x20 == 0x20
	n.envelope.write(v)
}

// $400E M--- PPPP
func (n *Noise) writePeriod(v uint8) {
	n.mode = v&0x80 == 0x80
	n.periodIndex = v & 0x0f
	n.periodInitial = noisePeriods[n.periodIndex]
}

// $400F LLLL L---
func (n *Noise) writeLength(v uint8) {
	n.length.load(v >> 3)
	n.envelope.restart()
}

// Clock implements the channel.Channel interface.
func (n *Noise) Clock() {
	if n.periodCurrent > 0 {
		n.periodCurrent--
		return
	}

	n.periodCurrent = n.periodInitial

	feedback := n.shift & 0x01
	if n.mode {
		feedback ^= (n.shift >> 6) & 0x01
	} else {
		feedback ^= (n.shift >> 1) & 0x01
	}
	n.shift >>= 1
	n.shift |= feedback << 14
}

func (n *Noise) clockQuarterFrame() {
	n.envelope.clock()
}

func (n *Noise) clockHalfFrame() {
	n.length.clock()
}

// Output implements the channel.Channel interface.
func (n *Noise) Output() int16 {
	if !n.length.active() {
		return 0
	}
	return int16(n.shift&0x01) * int16(n.envelope.volume())
}

// MinSample implements the channel.Channel interface.
func (n *Noise) MinSample() int16 {
	return 0
}

// MaxSample implements the channel.Channel interface.
func (n *Noise) MaxSample() int16 {
	return 15
}

// RecordCurrentOutput implements the channel.Channel interface.
func (n *Noise) RecordCurrentOutput() {
	n.Record(n.Output())
}

// Playing implements the channel.Channel interface.
func (n *Noise) Playing() bool {
	return n.length.active() && n.envelope.volume() > 0
}

// Amplitude implements the channel.Channel interface.
func (n *Noise) Amplitude() float32 {
	if !n.Playing() {
		return 0
	}
	return float32(n.envelope.volume()) / 15
}

// Rate implements the channel.Channel interface.
func (n *Noise) Rate() channel.PlaybackRate {
	return channel.PlaybackRate{
		Kind:  channel.LFSRRate,
		Index: int(n.periodIndex),
		Max:   len(noisePeriods) - 1,
	}
}

// Timbre implements the channel.Channel interface.
func (n *Noise) Timbre() (channel.Timbre, bool) {
	t := channel.Timbre{Kind: channel.LFSRMode, Max: 1}
	if n.mode {
		t.Index = 1
	}
	return t, true
}
