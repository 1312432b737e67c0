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

package queue_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/test"
)

func TestAppendAndDrain(t *testing.T) {
	q := queue.NewQueue()
	test.ExpectEquality(t, q.Len(), 0)

	q.Append(0.1, 0.2, 0.3)
	q.Append(0.4)
	test.ExpectEquality(t, q.Len(), 4)

	out := make([]float32, 2)
	test.ExpectEquality(t, q.Drain(out), 2)
	test.ExpectEquality(t, out[0], float32(0.1))
	test.ExpectEquality(t, out[1], float32(0.2))
	test.ExpectEquality(t, q.Len(), 2)

	// samples remain in order after a partial drain
	test.ExpectEquality(t, q.Drain(out), 2)
	test.ExpectEquality(t, out[0], float32(0.3))
	test.ExpectEquality(t, out[1], float32(0.4))
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.Underrun(), 0)
}

func TestUnderrun(t *testing.T) {
	q := queue.NewQueue()
	q.Append(0.5, -0.5)

	out := []float32{1, 1, 1, 1, 1}
	test.ExpectEquality(t, q.Drain(out), 2)
	test.ExpectEquality(t, out[0], float32(0.5))
	test.ExpectEquality(t, out[1], float32(-0.5))
	for _, v := range out[2:] {
		test.ExpectEquality(t, v, queue.Equilibrium)
	}
	test.ExpectEquality(t, q.Underrun(), 3)

	// an empty queue fills the entire output with the equilibrium value
	out = []float32{1, 1}
	test.ExpectEquality(t, q.Drain(out), 0)
	test.ExpectEquality(t, out[0], queue.Equilibrium)
	test.ExpectEquality(t, out[1], queue.Equilibrium)
	test.ExpectEquality(t, q.Underrun(), 5)
}

func TestClear(t *testing.T) {
	q := queue.NewQueue()
	q.Append(make([]float32, 100)...)
	test.ExpectEquality(t, q.Len(), 100)
	q.Clear()
	test.ExpectEquality(t, q.Len(), 0)
}

func TestConcurrentAccess(t *testing.T) {
	q := queue.NewQueue()

	const producers = 4
	const samples = 1000

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < samples; j++ {
				q.Append(1.0)
			}
		}()
	}

	// drain concurrently with the producers
	var drained int
	done := make(chan bool)
	go func() {
		out := make([]float32, 64)
		for {
			select {
			case <-done:
				return
			default:
				drained += q.Drain(out)
			}
		}
	}()

	wg.Wait()
	done <- true

	test.ExpectEquality(t, drained+q.Len(), producers*samples)
}
