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

// Package null is an audio sink that discards the contents of an audio queue
// at the rate a real device would play them. Useful when there is no audio
// device but the emulation should still run in real time.
package null

import (
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/environment"
)

// Tick is the interval between drains of the queue.
const Tick = 10 * time.Millisecond

// Sink is the null audio sink.
type Sink struct {
	queue *queue.Queue
	quit  chan bool
	done  chan bool
}

// NewSink starts draining the queue. The number of samples drained each Tick
// is decided by the sample rate in the APU preferences.
func NewSink(env *environment.Environment, q *queue.Queue) *Sink {
	s := &Sink{
		queue: q,
		quit:  make(chan bool),
		done:  make(chan bool),
	}

	rate := env.Prefs.APU.SampleRate.Get().(int)
	buffer := make([]float32, rate*int(Tick/time.Millisecond)/1000)

	go func() {
		defer close(s.done)
		tck := time.NewTicker(Tick)
		defer tck.Stop()
		for {
			select {
			case <-s.quit:
				return
			case <-tck.C:
				s.queue.Drain(buffer)
			}
		}
	}()

	return s
}

// Close stops draining the queue.
func (s *Sink) Close() error {
	close(s.quit)
	<-s.done
	return nil
}
