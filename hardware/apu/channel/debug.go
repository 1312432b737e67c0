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

package channel

// Debug implements the identity, sample history and mute parts of the Channel
// interface. It is intended to be embedded in channel implementations.
type Debug struct {
	name    string
	chip    string
	history *RingBuffer
	muted   bool
}

// NewDebug is the preferred method of initialisation for the Debug type.
func NewDebug(name string, chip string) Debug {
	return Debug{
		name:    name,
		chip:    chip,
		history: NewRingBuffer(DefaultHistory),
	}
}

// Name implements the Channel interface.
func (d *Debug) Name() string {
	return d.name
}

// Chip implements the Channel interface.
func (d *Debug) Chip() string {
	return d.chip
}

// SampleBuffer implements the Channel interface.
func (d *Debug) SampleBuffer() *RingBuffer {
	return d.history
}

// Record pushes a sample to the sample history. Channel implementations use
// this to implement RecordCurrentOutput().
func (d *Debug) Record(sample int16) {
	d.history.Push(sample)
}

// Muted implements the Channel interface.
func (d *Debug) Muted() bool {
	return d.muted
}

// Mute implements the Channel interface.
func (d *Debug) Mute() {
	d.muted = true
}

// Unmute implements the Channel interface.
func (d *Debug) Unmute() {
	d.muted = false
}

// Label returns the chip and channel name in the form used for preference
// paths.
func Label(ch Channel) string {
	return ch.Chip() + "." + ch.Name()
}
