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

// Package queue implements the sample queue shared by the emulation and the
// audio sink. The emulation appends samples and the sink drains them. The two
// sides run in different goroutines and the queue is the only thing they
// share.
//
// Samples are float32 values in the range -1.0 to 1.0.
package queue

import "sync"

// Equilibrium is the value used to fill the output when the queue has too few
// samples. It is the resting level of the signal.
const Equilibrium float32 = 0.0

// Queue is a mutex guarded list of samples. The lock is only held for the
// duration of a call.
type Queue struct {
	crit    sync.Mutex
	samples []float32

	// number of samples requested by Drain() that could not be supplied
	underrun int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		samples: make([]float32, 0, 4096),
	}
}

// Len returns the number of samples in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.samples)
}

// Append samples to the end of the queue.
func (q *Queue) Append(samples ...float32) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.samples = append(q.samples, samples...)
}

// Drain fills out with samples from the front of the queue. If there are not
// enough samples the remainder of out is filled with the Equilibrium value.
// Returns the number of samples taken from the queue.
func (q *Queue) Drain(out []float32) int {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := copy(out, q.samples)
	for i := n; i < len(out); i++ {
		out[i] = Equilibrium
	}

	// shift remaining samples to the front of the slice so the backing array
	// is reused
	m := copy(q.samples, q.samples[n:])
	q.samples = q.samples[:m]

	q.underrun += len(out) - n

	return n
}

// Clear removes all samples from the queue.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.samples = q.samples[:0]
}

// Underrun returns the total number of samples that Drain() has had to
// replace with the Equilibrium value.
func (q *Queue) Underrun() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.underrun
}
