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

// Package channel defines the interface shared by every sound generating
// channel in the emulation. The channels of the 2A03 and any expansion
// channels supplied by a cartridge all implement the Channel interface, so
// the mixer and any visualisation never need to know which variant they are
// dealing with.
//
// Every channel keeps a history of its output in a RingBuffer. The history is
// for debugging and visualisation only and is never used for audio mixing.
package channel

// Channel is implemented by every sound generating unit.
type Channel interface {
	// the name of the channel and the name of the chip it belongs to
	Name() string
	Chip() string

	// Clock advances the channel's timer by one tick. it is the only function
	// that advances the timing state of a channel
	Clock()

	// Output is the current output level of the channel. it has no side
	// effects and can be called any number of times between calls to Clock()
	//
	// the value is in the range MinSample() to MaxSample() inclusive. the
	// muted state of the channel does not affect the value returned by Output()
	Output() int16

	// MinSample and MaxSample return the range of values returned by Output()
	MinSample() int16
	MaxSample() int16

	// RecordCurrentOutput pushes the current output level to the sample
	// history buffer
	RecordCurrentOutput()

	// SampleBuffer returns the sample history of the channel
	SampleBuffer() *RingBuffer

	// a muted channel contributes nothing to the mixed audio. muting does not
	// change the internal state of the channel
	Muted() bool
	Mute()
	Unmute()

	// Playing returns true if the channel is currently producing sound
	Playing() bool

	// Amplitude is the current volume of the channel, normalised to the
	// range 0.0 to 1.0
	Amplitude() float32

	// Rate describes the rate at which the channel's waveform repeats
	Rate() PlaybackRate

	// Timbre describes the tone colour of the channel. channels that have
	// only one tone colour return false
	Timbre() (Timbre, bool)
}
