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

package null_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/audio/null"
	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

func TestDrain(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, p)
	test.DemandSuccess(t, err)

	q := queue.NewQueue()
	q.Append(make([]float32, 1000)...)

	s := null.NewSink(env, q)

	// 441 samples are drained every tick at the default sample rate
	deadline := time.Now().Add(5 * time.Second)
	for q.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(null.Tick)
	}
	test.ExpectSuccess(t, s.Close())
	test.ExpectEquality(t, q.Len(), 0)
}
