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

package performance

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/emulation/worker"
)

// Check the performance of the emulation by running it for the specified
// duration. The queue is emptied after every burst so the emulation runs as
// quickly as possible.
//
// If profile is true then CPU and memory profiles are written to profileDir.
func Check(output io.Writer, profile bool, profileDir string, w *worker.Worker, q *queue.Queue, duration time.Duration) error {
	var numFrames int

	err := cpuProfile(profile, filepath.Join(profileDir, "cpu.profile"), func() error {
		startFrame := w.Frames()
		deadline := time.Now().Add(duration)
		for time.Now().Before(deadline) && !w.ExitRequested() {
			w.ProcessIncomingEvents()
			w.StepEmulator()
			q.Clear()
		}
		numFrames = w.Frames() - startFrame
		return nil
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)))

	return memProfile(profile, filepath.Join(profileDir, "mem.profile"))
}
