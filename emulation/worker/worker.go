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

// Package worker paces the emulation against the audio output. The emulation
// is run in bursts of scanlines until the audio queue holds enough samples to
// keep the audio sink busy. The rate at which the sink consumes samples
// therefore sets the speed of the emulation.
//
// Commands from the host arrive on a channel and are dispatched as events
// between bursts.
package worker

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/emulation/dispatch"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/emulation/runtime"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
)

// Quantum is the time the worker yields for between bursts.
const Quantum = time.Millisecond

// scaling of the APU samples to the range used by the queue
const sampleScale = 32767.0

// Worker runs the emulation.
type Worker struct {
	env *environment.Environment

	runtime  *runtime.State
	queue    *queue.Queue
	incoming <-chan events.Event

	dispatcher *dispatch.Dispatcher

	state emulation.State
	exit  bool

	// battery RAM files are written to this directory if the filename in the
	// SaveSram event is not absolute
	sramDir string

	// number of RequestFrame events seen
	frames int
}

// NewWorker is the preferred method of initialisation for the Worker type.
// Events are dispatched first to the runtime and then to the worker.
// Additional handlers can be added with AddHandler().
func NewWorker(env *environment.Environment, rt *runtime.State, q *queue.Queue, incoming <-chan events.Event) *Worker {
	w := &Worker{
		env:      env,
		runtime:  rt,
		queue:    q,
		incoming: incoming,
		state:    emulation.Initialising,
	}
	w.dispatcher = dispatch.NewDispatcher(env, rt, w)
	return w
}

// AddHandler adds an event handler. The handler will see events after the
// runtime and the worker.
func (w *Worker) AddHandler(h events.Handler) {
	w.dispatcher.AddHandler(h)
}

// SetSRAMDirectory sets the directory battery RAM files are written to.
func (w *Worker) SetSRAMDirectory(dir string) {
	w.sramDir = dir
}

// State returns the current state of the emulation.
func (w *Worker) State() emulation.State {
	return w.state
}

// ExitRequested returns true if a CloseApplication event has been seen.
func (w *Worker) ExitRequested() bool {
	return w.exit
}

// Frames returns the number of frames that have been completed.
func (w *Worker) Frames() int {
	return w.frames
}

// Dispatch an event. Errors are logged by the dispatcher.
func (w *Worker) Dispatch(ev events.Event) {
	_ = w.dispatcher.Dispatch(ev)
}

// ProcessIncomingEvents dispatches every event waiting on the incoming
// channel. It does not block.
func (w *Worker) ProcessIncomingEvents() {
	for {
		select {
		case ev, ok := <-w.incoming:
			if !ok {
				// a nil channel is never ready
				w.incoming = nil
				return
			}
			w.Dispatch(ev)
		default:
			return
		}
	}
}

// StepEmulator runs the emulation one scanline at a time until the number of
// samples in the audio queue reaches the low water mark. Returns the number
// of scanlines run.
func (w *Worker) StepEmulator() int {
	lowWaterMark := w.env.Prefs.Audio.LowWaterMark.Get().(int)

	var scanlines int

	l := w.queue.Len()
	for l < lowWaterMark {
		w.Dispatch(events.RunScanline{})
		if w.runtime.Scanline() == clocks.FrameCompleteScanline {
			w.Dispatch(events.RequestFrame{})
		}
		scanlines++

		samples := w.runtime.ConsumeSamples()
		if len(samples) > 0 {
			f := make([]float32, len(samples))
			for i, s := range samples {
				f[i] = float32(s) / sampleScale
			}
			w.queue.Append(f...)
		}

		l = w.queue.Len()
	}

	return scanlines
}

// Run the emulation until a CloseApplication event is seen. Incoming events
// are processed one last time before returning.
func (w *Worker) Run() {
	w.state = emulation.Running
	for !w.exit {
		w.ProcessIncomingEvents()
		w.StepEmulator()
		time.Sleep(Quantum)
	}
	time.Sleep(Quantum)
	w.ProcessIncomingEvents()
}

// HandleEvent implements the events.Handler interface.
func (w *Worker) HandleEvent(ev events.Event) []events.Event {
	switch ev := ev.(type) {
	case events.RequestFrame:
		w.frames++
		w.notify(notifications.NotifyFrameRendered)

	case events.CartridgeLoaded:
		if w.runtime.NES.Cart.HasSRAM() {
			w.notify(notifications.NotifySramPresent)
		} else {
			w.notify(notifications.NotifySramAbsent)
		}

	case events.CartridgeRejected:
		w.notify(notifications.NotifyCartridgeRejected)

	case events.SaveSram:
		w.saveSram(ev)

	case events.CloseApplication:
		w.exit = true
		w.state = emulation.Ending
		w.notify(notifications.NotifyClosing)

	case events.ApplyIntegerSetting, events.ApplyBooleanSetting,
		events.ApplyFloatSetting, events.ApplyStringSetting:
		w.notify(notifications.NotifySettingsUpdated)
	}

	return nil
}

// failure to save is not fatal
func (w *Worker) saveSram(ev events.SaveSram) {
	fn := ev.Filename
	if !filepath.IsAbs(fn) && w.sramDir != "" {
		fn = filepath.Join(w.sramDir, fn)
	}

	if err := os.WriteFile(fn, ev.Data, 0o644); err != nil {
		logger.Logf(w.env, "worker", "battery RAM not saved: %v", err)
		return
	}

	logger.Logf(w.env, "worker", "battery RAM saved to %s", fn)
	w.notify(notifications.NotifySramSaved)
}

func (w *Worker) notify(n notifications.Notice) {
	if err := w.env.Notifications.Notify(n); err != nil {
		logger.Logf(w.env, "worker", "%s: %v", n, err)
	}
}
