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
	"strings"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/prefs"
)

// CPUClock is the frequency of the NTSC CPU in Hz. The APU is stepped once
// per CPU cycle.
const CPUClock = clocks.NTSC * 1000000

// ChipName is the name of the chip reported by the 2A03 channels.
const ChipName = preferences.Chip2A03

// APU is the audio processing unit of the 2A03.
type APU struct {
	env *environment.Environment

	Pulse1   *Pulse
	Pulse2   *Pulse
	Triangle *Triangle
	Noise    *Noise
	DMC      *DMC

	// channels provided by the cartridge
	expansion []channel.Channel

	frame frameSequencer

	// pulse timers are clocked every other CPU cycle
	evenCycle bool

	// quarter and half frame clocks since the last call to FrameTicks()
	quarterTicks int
	halfTicks    int

	// resampling of the mixed output
	sampleRate  int
	sampleClock float64
	sampleSum   float64
	sampleSumCt int
	samples     []int16
}

// NewAPU is the preferred method of initialisation for the APU type. The
// MemoryReader is used by the DMC to fetch sample data.
func NewAPU(env *environment.Environment, mem MemoryReader) *APU {
	apu := &APU{
		env:        env,
		Pulse1:     newPulse("Pulse1", ChipName, true),
		Pulse2:     newPulse("Pulse2", ChipName, false),
		Triangle:   newTriangle(ChipName),
		Noise:      newNoise(ChipName),
		DMC:        newDMC(ChipName, mem),
		sampleRate: env.Prefs.APU.SampleRate.Get().(int),
	}

	for _, ch := range apu.Channels() {
		apu.bindMute(ch)
	}

	return apu
}

// the muted state of a channel follows the muted preference for the channel.
func (apu *APU) bindMute(ch channel.Channel) {
	m := apu.env.Prefs.APU.Muted(ch.Chip(), ch.Name())
	m.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			ch.Mute()
		} else {
			ch.Unmute()
		}
		return nil
	})
	if m.Get().(bool) {
		ch.Mute()
	}
}

func (apu *APU) String() string {
	s := strings.Builder{}
	for _, ch := range apu.Channels() {
		s.WriteString(fmt.Sprintf("%s\n", ch))
	}
	return s.String()
}

// Channels returns the 2A03 channels followed by any expansion channels.
func (apu *APU) Channels() []channel.Channel {
	chs := []channel.Channel{apu.Pulse1, apu.Pulse2, apu.Triangle, apu.Noise, apu.DMC}
	return append(chs, apu.expansion...)
}

// SetExpansion sets the expansion channels to be mixed with the 2A03
// channels. A nil or empty slice removes any existing expansion channels.
func (apu *APU) SetExpansion(chs []channel.Channel) {
	apu.expansion = chs
	for _, ch := range chs {
		apu.bindMute(ch)
	}
	if len(chs) > 0 {
		logger.Logf(apu.env, "apu", "%d expansion channels", len(chs))
	}
}

// Read a value from the APU registers. Only the status register at $4015 can
// be read.
func (apu *APU) Read(addr uint16) (uint8, bool) {
	if addr != 0x4015 {
		return 0, false
	}

	var v uint8
	if apu.Pulse1.length.active() {
		v |= 0x01
	}
	if apu.Pulse2.length.active() {
		v |= 0x02
	}
	if apu.Triangle.length.active() {
		v |= 0x04
	}
	if apu.Noise.length.active() {
		v |= 0x08
	}
	if apu.DMC.currentLength > 0 {
		v |= 0x10
	}
	if apu.frame.irq {
		v |= 0x40
	}
	if apu.DMC.irqFlag {
		v |= 0x80
	}

	// reading the status register clears the frame interrupt
	apu.frame.irq = false

	return v, true
}

// Write a value to the APU registers. Writes outside the APU registers are
// ignored.
func (apu *APU) Write(addr uint16, data uint8) {
	switch addr {
	case 0x4000:
		apu.Pulse1.writeControl(data)
	case 0x4001:
		apu.Pulse1.writeSweep(data)
	case 0x4002:
		apu.Pulse1.writeTimerLow(data)
	case 0x4003:
		apu.Pulse1.writeTimerHigh(data)
	case 0x4004:
		apu.Pulse2.writeControl(data)
	case 0x4005:
		apu.Pulse2.writeSweep(data)
	case 0x4006:
		apu.Pulse2.writeTimerLow(data)
	case 0x4007:
		apu.Pulse2.writeTimerHigh(data)
	case 0x4008:
		apu.Triangle.writeLinear(data)
	case 0x400a:
		apu.Triangle.writeTimerLow(data)
	case 0x400b:
		apu.Triangle.writeTimerHigh(data)
	case 0x400c:
		apu.Noise.writeControl(data)
	case 0x400e:
		apu.Noise.writePeriod(data)
	case 0x400f:
		apu.Noise.writeLength(data)
	case 0x4010:
		apu.DMC.writeControl(data)
	case 0x4011:
		apu.DMC.writeLevel(data)
	case 0x4012:
		apu.DMC.writeAddress(data)
	case 0x4013:
		apu.DMC.writeLength(data)
	case 0x4015:
		apu.Pulse1.length.setEnabled(data&0x01 == 0x01)
		apu.Pulse2.length.setEnabled(data&0x02 == 0x02)
		apu.Triangle.length.setEnabled(data&0x04 == 0x04)
		apu.Noise.length.setEnabled(data&0x08 == 0x08)
		apu.DMC.setEnabled(data&0x10 == 0x10)
	case 0x4017:
		if apu.frame.write(data) {
			apu.quarterFrame()
			apu.halfFrame()
		}
	}
}

func (apu *APU) quarterFrame() {
	apu.Pulse1.clockQuarterFrame()
	apu.Pulse2.clockQuarterFrame()
	apu.Triangle.clockQuarterFrame()
	apu.Noise.clockQuarterFrame()
	apu.quarterTicks++
}

func (apu *APU) halfFrame() {
	apu.Pulse1.clockHalfFrame()
	apu.Pulse2.clockHalfFrame()
	apu.Triangle.clockHalfFrame()
	apu.Noise.clockHalfFrame()
	apu.halfTicks++
}

// IRQ returns true if either the frame interrupt or the DMC interrupt is
// raised.
func (apu *APU) IRQ() bool {
	return apu.frame.irq || apu.DMC.irqFlag
}

// FrameTicks returns the number of quarter and half frame clocks since the
// previous call to FrameTicks().
func (apu *APU) FrameTicks() (quarter int, half int) {
	quarter, half = apu.quarterTicks, apu.halfTicks
	apu.quarterTicks = 0
	apu.halfTicks = 0
	return quarter, half
}

// Step the APU by one CPU cycle.
func (apu *APU) Step() {
	quarter, half := apu.frame.step()
	if quarter {
		apu.quarterFrame()
	}
	if half {
		apu.halfFrame()
	}

	apu.evenCycle = !apu.evenCycle
	if apu.evenCycle {
		apu.Pulse1.Clock()
		apu.Pulse2.Clock()
	}
	apu.Triangle.Clock()
	apu.Noise.Clock()
	apu.DMC.Clock()
	for _, ch := range apu.expansion {
		ch.Clock()
	}

	apu.sampleSum += float64(apu.mix())
	apu.sampleSumCt++

	apu.sampleClock += float64(apu.sampleRate)
	if apu.sampleClock >= CPUClock {
		apu.sampleClock -= CPUClock
		apu.emit()
	}
}

// emit the average of the mixed output since the previous sample.
func (apu *APU) emit() {
	v := apu.sampleSum / float64(apu.sampleSumCt) * 32767
	apu.sampleSum = 0
	apu.sampleSumCt = 0

	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	apu.samples = append(apu.samples, int16(v))

	for _, ch := range apu.Channels() {
		ch.RecordCurrentOutput()
	}

	// the sample rate may have changed since the last sample
	apu.sampleRate = apu.env.Prefs.APU.SampleRate.Get().(int)
}

// ConsumeSamples returns the samples produced since the previous call.
func (apu *APU) ConsumeSamples() []int16 {
	s := apu.samples
	apu.samples = nil
	return s
}
