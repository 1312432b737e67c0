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

// Pulse is one of the two square wave channels.
type Pulse struct {
	channel.Debug

	envelope envelope
	length   lengthCounter

	// the first pulse channel negates the sweep with ones' complement. the
	// second uses two's complement
	onesComplement bool

	duty     uint8
	sequence uint8

	timerPeriod uint16
	timerValue  uint16

	sweepEnabled bool
	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	sweepReload  bool
	sweepDivider uint8
}

func newPulse(name string, chip string, onesComplement bool) *Pulse {
	return &Pulse{
		Debug:          channel.NewDebug(name, chip),
		onesComplement: onesComplement,
	}
}

func (p *Pulse) String() string {
	return fmt.Sprintf("%s: duty=%d period=%d length=%d vol=%d",
		p.Name(), p.duty, p.timerPeriod, p.length.value, p.envelope.volume())
}

// $4000/$4004 DDLC VVVV
func (p *Pulse) writeControl(v uint8) {
	p.duty = (v >> 6) & 0x03
	p.length.halt = v&0x20 == 0x20
	p.envelope.write(v)
}

// $4001/$4005 EPPP NSSS
func (p *Pulse) writeSweep(v uint8) {
	p.sweepEnabled = v&0x80 == 0x80
	p.sweepPeriod = (v >> 4) & 0x07
	p.sweepNegate = v&0x08 == 0x08
	p.sweepShift = v & 0x07
	p.sweepReload = true
}

// $4002/$4006 LLLL LLLL
func (p *Pulse) writeTimerLow(v uint8) {
	p.timerPeriod = (p.timerPeriod & 0xff00) | uint16(v)
}

// $4003/$4007 LLLL LHHH
func (p *Pulse) writeTimerHigh(v uint8) {
	p.timerPeriod = (p.timerPeriod & 0x00ff) | (uint16(v&0x07) << 8)
	p.length.load(v >> 3)
	p.envelope.restart()
	p.sequence = 0
}

// the period the sweep unit is moving towards.
func (p *Pulse) targetPeriod() int {
	delta := int(p.timerPeriod >> p.sweepShift)
	if p.sweepNegate {
		if p.onesComplement {
			return int(p.timerPeriod) - delta - 1
		}
		return int(p.timerPeriod) - delta
	}
	return int(p.timerPeriod) + delta
}

// the sweep unit mutes the channel if the period is too small or if the
// target period overflows the 11 bit timer. this happens even when the sweep
// unit is disabled.
func (p *Pulse) sweepMuted() bool {
	return p.timerPeriod < 8 || p.targetPeriod() > 0x07ff
}

// Clock implements the channel.Channel interface. The pulse timer is clocked
// every other CPU cycle.
func (p *Pulse) Clock() {
	if p.timerValue > 0 {
		p.timerValue--
		return
	}
	p.timerValue = p.timerPeriod
	p.sequence = (p.sequence + 1) & 0x07
}

func (p *Pulse) clockQuarterFrame() {
	p.envelope.clock()
}

func (p *Pulse) clockHalfFrame() {
	p.length.clock()

	if p.sweepDivider == 0 && p.sweepEnabled && p.sweepShift > 0 && !p.sweepMuted() {
		t := p.targetPeriod()
		if t < 0 {
			t = 0
		}
		p.timerPeriod = uint16(t)
	}

	if p.sweepDivider == 0 || p.sweepReload {
		p.sweepDivider = p.sweepPeriod
		p.sweepReload = false
	} else {
		p.sweepDivider--
	}
}

// Output implements the channel.Channel interface.
func (p *Pulse) Output() int16 {
	if !p.length.active() || p.sweepMuted() {
		return 0
	}
	if dutySequences[p.duty&0x03][p.sequence&0x07] == 0 {
		return 0
	}
	return int16(p.envelope.volume())
}

// MinSample implements the channel.Channel interface.
func (p *Pulse) MinSample() int16 {
	return 0
}

// MaxSample implements the channel.Channel interface.
func (p *Pulse) MaxSample() int16 {
	return 15
}

// RecordCurrentOutput implements the channel.Channel interface.
func (p *Pulse) RecordCurrentOutput() {
	p.Record(p.Output())
}

// Playing implements the channel.Channel interface.
func (p *Pulse) Playing() bool {
	return p.length.active() && !p.sweepMuted() && p.envelope.volume() > 0
}

// Amplitude implements the channel.Channel interface.
func (p *Pulse) Amplitude() float32 {
	if !p.Playing() {
		return 0
	}
	return float32(p.envelope.volume()) / 15
}

// Rate implements the channel.Channel interface.
func (p *Pulse) Rate() channel.PlaybackRate {
	return channel.PlaybackRate{
		Kind:      channel.FundamentalFrequency,
		Frequency: CPUClock / (16.0 * (float64(p.timerPeriod) + 1)),
	}
}

// Timbre implements the channel.Channel interface.
func (p *Pulse) Timbre() (channel.Timbre, bool) {
	return channel.Timbre{
		Kind:  channel.DutyIndex,
		Index: int(p.duty),
		Max:   len(dutySequences) - 1,
	}, true
}
