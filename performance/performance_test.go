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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/emulation/runtime"
	"github.com/jetsetilly/gophernes/emulation/worker"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/test"
)

func TestCalcFPS(t *testing.T) {
	test.ExpectApproximate(t, performance.FramesPerSecond, 60.0988, 0.0001)

	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectApproximate(t, accuracy, 99.8, 0.001)

	fps, accuracy = performance.CalcFPS(120, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, p)
	test.DemandSuccess(t, err)

	q := queue.NewQueue()
	w := worker.NewWorker(env, runtime.NewState(env), q, make(chan events.Event))

	dir := t.TempDir()
	out := &strings.Builder{}
	test.DemandSuccess(t, performance.Check(out, true, dir, w, q, 100*time.Millisecond))
	test.ExpectSuccess(t, strings.Contains(out.String(), "fps"))
	test.ExpectSuccess(t, w.Frames() > 0)

	_, err = os.Stat(filepath.Join(dir, "cpu.profile"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, "mem.profile"))
	test.ExpectSuccess(t, err)
}
