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

// MemoryReader is the part of the CPU bus used by the DMC to fetch sample
// data.
type MemoryReader interface {
	ReadCPU(addr uint16) (uint8, bool)
}

// DMC is the delta modulation channel. It plays 1 bit delta encoded samples
// read from CPU memory.
type DMC struct {
	channel.Debug

	mem MemoryReader

	enabled bool
	irq     bool
	irqFlag bool
	loop    bool

	rateIndex uint8
	rate      uint16
	timer     uint16

	// the 7 bit output level
	level uint8

	sampleAddress  uint16
	sampleLength   uint16
	currentAddress uint16
	currentLength  uint16

	shift    uint8
	bitCount uint8
}

func newDMC(chip string, mem MemoryReader) *DMC {
	return &DMC{
		Debug: channel.NewDebug("DMC", chip),
		mem:   mem,
		rate:  dmcRates[0],
	}
}

func (d *DMC) String() string {
	return fmt.Sprintf("%s: level=%d addr=%04x remaining=%d",
		d.Name(), d.level, d.currentAddress, d.currentLength)
}

// $4010 IL-- RRRR
func (d *DMC) writeControl(v uint8) {
	d.irq = v&0x80 == 0x80
	if !d.irq {
		d.irqFlag = false
	}
	d.loop = v&0x40 == 0x40
	d.rateIndex = v & 0x0f
	d.rate = dmcRates[d.rateIndex]
}

// $4011 -DDD DDDD
func (d *DMC) writeLevel(v uint8) {
	d.level = v & 0x7f
}

// $4012 AAAA AAAA. sample address is %11AAAAAA.AA000000
func (d *DMC) writeAddress(v uint8) {
	d.sampleAddress = 0xc000 | (uint16(v) << 6)
}

// $4013 LLLL LLLL. sample length is %LLLL.LLLL0001
func (d *DMC) writeLength(v uint8) {
	d.sampleLength = (uint16(v) << 4) | 1
}

func (d *DMC) setEnabled(enabled bool) {
	d.enabled = enabled
	d.irqFlag = false
	if !enabled {
		d.currentLength = 0
	} else if d.currentLength == 0 {
		d.restart()
	}
}

func (d *DMC) restart() {
	d.currentAddress = d.sampleAddress
	d.currentLength = d.sampleLength
}

// Clock implements the channel.Channel interface. The DMC timer is clocked
// every CPU cycle.
func (d *DMC) Clock() {
	if !d.enabled {
		return
	}

	d.fetch()

	if d.timer > 0 {
		d.timer--
		return
	}
	d.timer = d.rate - 1

	if d.bitCount == 0 {
		return
	}

	if d.shift&0x01 == 0x01 {
		if d.level <= 125 {
			d.level += 2
		}
	} else if d.level >= 2 {
		d.level -= 2
	}
	d.shift >>= 1
	d.bitCount--
}

// fill the shift register from memory when it is empty.
func (d *DMC) fetch() {
	if d.currentLength == 0 || d.bitCount > 0 {
		return
	}

	// an unmapped address reads as zero
	d.shift, _ = d.mem.ReadCPU(d.currentAddress)
	d.bitCount = 8

	d.currentAddress++
	if d.currentAddress == 0 {
		d.currentAddress = 0x8000
	}

	d.currentLength--
	if d.currentLength == 0 {
		if d.loop {
			d.restart()
		} else if d.irq {
			d.irqFlag = true
		}
	}
}

// Output implements the channel.Channel interface.
func (d *DMC) Output() int16 {
	return int16(d.level)
}

// MinSample implements the channel.Channel interface.
func (d *DMC) MinSample() int16 {
	return 0
}

// MaxSample implements the channel.Channel interface.
func (d *DMC) MaxSample() int16 {
	return 127
}

// RecordCurrentOutput implements the channel.Channel interface.
func (d *DMC) RecordCurrentOutput() {
	d.Record(d.Output())
}

// Playing implements the channel.Channel interface.
func (d *DMC) Playing() bool {
	return d.enabled && (d.currentLength > 0 || d.bitCount > 0)
}

// Amplitude implements the channel.Channel interface.
func (d *DMC) Amplitude() float32 {
	return float32(d.level) / 127
}

// Rate implements the channel.Channel interface.
func (d *DMC) Rate() channel.PlaybackRate {
	return channel.PlaybackRate{
		Kind:      channel.SampleRate,
		Frequency: CPUClock / float64(d.rate),
	}
}

// Timbre implements the channel.Channel interface.
func (d *DMC) Timbre() (channel.Timbre, bool) {
	return channel.Timbre{}, false
}
