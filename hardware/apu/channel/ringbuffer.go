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

// DefaultHistory is the number of samples in the sample history of a channel.
const DefaultHistory = 32768

// RingBuffer is a fixed capacity circular buffer of samples. When the buffer
// is full the oldest sample is overwritten.
type RingBuffer struct {
	buffer []int16
	index  int
	filled bool
}

// NewRingBuffer is the preferred method of initialisation for the RingBuffer
// type.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{
		buffer: make([]int16, capacity),
	}
}

// Push a new sample into the buffer.
func (rb *RingBuffer) Push(sample int16) {
	rb.buffer[rb.index] = sample
	rb.index++
	if rb.index >= len(rb.buffer) {
		rb.index = 0
		rb.filled = true
	}
}

// Capacity of the buffer.
func (rb *RingBuffer) Capacity() int {
	return len(rb.buffer)
}

// Len is the number of samples that have been pushed, up to the capacity of
// the buffer.
func (rb *RingBuffer) Len() int {
	if rb.filled {
		return len(rb.buffer)
	}
	return rb.index
}

// Index is the position in the buffer where the next sample will be written.
func (rb *RingBuffer) Index() int {
	return rb.index
}

// Buffer returns a copy of the underlying buffer. Use Index() to find the
// position of the oldest sample.
func (rb *RingBuffer) Buffer() []int16 {
	b := make([]int16, len(rb.buffer))
	copy(b, rb.buffer)
	return b
}

// Latest returns the most recent n samples, oldest first. If fewer than n
// samples have been pushed then only those samples are returned.
func (rb *RingBuffer) Latest(n int) []int16 {
	if n > rb.Len() {
		n = rb.Len()
	}
	if n <= 0 {
		return []int16{}
	}

	s := make([]int16, n)
	start := rb.index - n
	if start < 0 {
		start += len(rb.buffer)
	}

	c := copy(s, rb.buffer[start:])
	if c < n {
		copy(s[c:], rb.buffer)
	}

	return s
}

// Clear the buffer.
func (rb *RingBuffer) Clear() {
	for i := range rb.buffer {
		rb.buffer[i] = 0
	}
	rb.index = 0
	rb.filled = false
}
