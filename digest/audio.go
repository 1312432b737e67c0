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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/gophernes/audio/queue"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the buffer starts with the previous digest value
const audioBufferStart = sha1.Size

// Audio chains sha1 sums of the audio samples taken from a queue.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	drain    []float32
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
	return dig
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Any samples waiting in the buffer are
// included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// Collect every sample in the queue. Returns the number of samples collected.
func (dig *Audio) Collect(q *queue.Queue) int {
	n := q.Len()
	if cap(dig.drain) < n {
		dig.drain = make([]float32, n)
	}
	d := dig.drain[:n]
	q.Drain(d)

	for _, v := range d {
		binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(v))
		dig.bufferCt += 4
		if dig.bufferCt+4 > audioBufferLength {
			dig.flush()
		}
	}

	return n
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
