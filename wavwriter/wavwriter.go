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

// Package wavwriter records the contents of an audio queue to a WAV file. The
// audio is buffered in memory in its entirety and written to disk when Close()
// is called.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/logger"
)

// the WAV file is 16bit mono PCM
const (
	bitDepth    = 16
	numChannels = 1
	pcmFormat   = 1
	sampleScale = 32767
)

// WavWriter collects samples from an audio queue.
type WavWriter struct {
	env      *environment.Environment
	filename string
	rate     int
	buffer   []int
	drain    []float32
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate is taken from the APU preferences.
func New(env *environment.Environment, filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	return &WavWriter{
		env:      env,
		filename: filename,
		rate:     env.Prefs.APU.SampleRate.Get().(int),
		buffer:   make([]int, 0, 65536),
	}, nil
}

// Collect moves every sample in the queue to the WAV buffer. Returns the
// number of samples collected.
func (aw *WavWriter) Collect(q *queue.Queue) int {
	n := q.Len()
	if n == 0 {
		return 0
	}

	if cap(aw.drain) < n {
		aw.drain = make([]float32, n)
	}
	d := aw.drain[:n]

	// the queue has only one consumer so it can't hold fewer than n samples
	q.Drain(d)

	for _, v := range d {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		aw.buffer = append(aw.buffer, int(v*sampleScale))
	}

	return n
}

// Len returns the number of samples collected so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the WAV file.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.rate, bitDepth, numChannels, pcmFormat)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.env, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
