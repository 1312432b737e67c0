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

package worker_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/emulation/runtime"
	"github.com/jetsetilly/gophernes/emulation/worker"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/test"
)

type notices struct {
	crit sync.Mutex
	list []notifications.Notice
}

func (n *notices) Notify(notice notifications.Notice) error {
	n.crit.Lock()
	defer n.crit.Unlock()
	n.list = append(n.list, notice)
	return nil
}

func (n *notices) count(notice notifications.Notice) int {
	n.crit.Lock()
	defer n.crit.Unlock()
	var c int
	for _, l := range n.list {
		if l == notice {
			c++
		}
	}
	return c
}

type fixture struct {
	env      *environment.Environment
	notices  *notices
	queue    *queue.Queue
	incoming chan events.Event
	worker   *worker.Worker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	f := &fixture{
		notices:  &notices{},
		queue:    queue.NewQueue(),
		incoming: make(chan events.Event, 10),
	}

	f.env, err = environment.NewEnvironment(environment.MainEmulation, f.notices, p)
	test.DemandSuccess(t, err)

	f.worker = worker.NewWorker(f.env, runtime.NewState(f.env), f.queue, f.incoming)
	f.worker.SetSRAMDirectory(t.TempDir())

	return f
}

// NROM cartridge with battery RAM
func ines() []uint8 {
	d := []uint8{'N', 'E', 'S', 0x1a, 1, 0, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return append(d, make([]uint8, 0x4000)...)
}

func TestBackpressure(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.worker.State(), emulation.Initialising)

	n := f.worker.StepEmulator()
	test.ExpectSuccess(t, n > 0)
	test.ExpectSuccess(t, f.queue.Len() >= preferences.DefaultLowWaterMark)

	// the queue is full enough so nothing is run
	test.ExpectEquality(t, f.worker.StepEmulator(), 0)

	// draining the queue allows the emulation to run again
	out := make([]float32, f.queue.Len())
	f.queue.Drain(out)
	test.ExpectSuccess(t, f.worker.StepEmulator() > 0)

	// samples are in range
	for _, v := range out {
		test.ExpectSuccess(t, v >= -1.0 && v <= 1.0)
	}
}

func TestBackpressureAtMark(t *testing.T) {
	f := newFixture(t)

	// a queue filled to exactly the low water mark runs nothing
	f.queue.Append(make([]float32, preferences.DefaultLowWaterMark)...)
	test.ExpectEquality(t, f.worker.StepEmulator(), 0)
	test.ExpectEquality(t, f.queue.Len(), preferences.DefaultLowWaterMark)
	test.ExpectEquality(t, f.worker.Frames(), 0)

	// one sample short of the mark runs at least one scanline
	out := make([]float32, 1)
	test.ExpectEquality(t, f.queue.Drain(out), 1)
	test.ExpectSuccess(t, f.worker.StepEmulator() >= 1)
	test.ExpectSuccess(t, f.queue.Len() >= preferences.DefaultLowWaterMark)
}

func TestEmptyQueue(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.queue.Len(), 0)

	n := f.worker.StepEmulator()
	test.ExpectSuccess(t, n >= 1)
	test.ExpectSuccess(t, f.queue.Len() >= 1)
}

func TestLowWaterMark(t *testing.T) {
	f := newFixture(t)

	f.incoming <- events.ApplyIntegerSetting{Path: "audio.lowWaterMark", Value: 4000}
	f.worker.ProcessIncomingEvents()
	test.ExpectEquality(t, f.notices.count(notifications.NotifySettingsUpdated), 1)

	f.worker.StepEmulator()
	test.ExpectSuccess(t, f.queue.Len() >= 4000)

	// 4000 samples at 44100Hz is more than five frames of audio
	test.ExpectSuccess(t, f.worker.Frames() >= 4)
	test.ExpectEquality(t, f.notices.count(notifications.NotifyFrameRendered), f.worker.Frames())
}

func TestCartridgeNotifications(t *testing.T) {
	f := newFixture(t)

	f.incoming <- events.LoadCartridge{Name: "game", Data: ines()}
	f.incoming <- events.LoadCartridge{Name: "bad", Data: []uint8{1, 2, 3}}
	f.worker.ProcessIncomingEvents()

	test.ExpectEquality(t, f.notices.count(notifications.NotifySramPresent), 1)
	test.ExpectEquality(t, f.notices.count(notifications.NotifySramAbsent), 0)
	test.ExpectEquality(t, f.notices.count(notifications.NotifyCartridgeRejected), 1)
}

func TestSaveSram(t *testing.T) {
	f := newFixture(t)

	dir := t.TempDir()
	f.worker.SetSRAMDirectory(dir)

	f.incoming <- events.LoadCartridge{Name: "game", Data: ines()}
	f.incoming <- events.RequestSramSave{}
	f.worker.ProcessIncomingEvents()

	d, err := os.ReadFile(filepath.Join(dir, "game.sav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 0x2000)
	test.ExpectEquality(t, f.notices.count(notifications.NotifySramSaved), 1)

	// absolute filenames are not changed
	fn := filepath.Join(t.TempDir(), "absolute.sav")
	f.worker.Dispatch(events.SaveSram{Filename: fn, Data: []uint8{1, 2, 3}})
	d, err = os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 3)
}

func TestSaveSramFailure(t *testing.T) {
	f := newFixture(t)
	f.worker.SetSRAMDirectory(filepath.Join(t.TempDir(), "missing"))

	logger.Clear()
	f.worker.Dispatch(events.SaveSram{Filename: "game.sav", Data: []uint8{1}})

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "battery RAM not saved"))
	test.ExpectEquality(t, f.notices.count(notifications.NotifySramSaved), 0)

	// the emulation continues
	test.ExpectSuccess(t, f.worker.StepEmulator() > 0)
}

func TestCloseApplication(t *testing.T) {
	f := newFixture(t)

	// a command sent in response to the close is still processed
	f.worker.AddHandler(events.HandlerFunc(func(ev events.Event) []events.Event {
		if _, ok := ev.(events.CloseApplication); ok {
			f.incoming <- events.ApplyIntegerSetting{Path: "apu.sampleRate", Value: 22050}
		}
		return nil
	}))

	done := make(chan bool)
	go func() {
		f.worker.Run()
		done <- true
	}()

	f.incoming <- events.CloseApplication{}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("worker did not stop")
	}

	test.ExpectSuccess(t, f.worker.ExitRequested())
	test.ExpectEquality(t, f.worker.State(), emulation.Ending)
	test.ExpectEquality(t, f.notices.count(notifications.NotifyClosing), 1)
	test.ExpectEquality(t, f.env.Prefs.APU.SampleRate.Get().(int), 22050)
	test.ExpectEquality(t, len(f.incoming), 0)
}
