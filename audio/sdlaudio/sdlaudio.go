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

// Package sdlaudio plays the contents of an audio queue through an SDL audio
// device. SDL's own queue is kept topped up from the audio queue by a
// goroutine that wakes once for every buffer's worth of samples.
package sdlaudio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is a compromise between latency and the number of calls
// to QueueAudio(). the precise value is not critical
const bufferLength = 512

// size in bytes of one float32 sample
const sampleSize = 4

// SDL's queue is topped up when it holds less than this many bytes
const queueThreshold = bufferLength * sampleSize * 2

// Sink is the SDL audio sink.
type Sink struct {
	env   *environment.Environment
	queue *queue.Queue

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []float32
	data   []uint8

	quit chan bool
	done chan bool
}

// NewSink initialises the SDL audio subsystem and opens the default audio
// device.
func NewSink(env *environment.Environment, q *queue.Queue) (*Sink, error) {
	s := &Sink{
		env:    env,
		queue:  q,
		buffer: make([]float32, bufferLength),
		data:   make([]uint8, bufferLength*sampleSize),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(env.Prefs.APU.SampleRate.Get().(int)),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	s.id, err = sdl.OpenAudioDevice("", false, spec, &s.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(env, "sdlaudio", "frequency: %d samples/sec", s.spec.Freq)
	logger.Logf(env, "sdlaudio", "format: %d", s.spec.Format)
	logger.Logf(env, "sdlaudio", "buffer size: %d samples", s.spec.Samples)

	go s.feed()

	sdl.PauseAudioDevice(s.id, false)

	return s, nil
}

func (s *Sink) feed() {
	defer close(s.done)

	period := time.Duration(float64(time.Second) * bufferLength / float64(s.spec.Freq))
	tck := time.NewTicker(period)
	defer tck.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-tck.C:
			for sdl.GetQueuedAudioSize(s.id) < queueThreshold {
				if err := s.queueBuffer(); err != nil {
					logger.Log(s.env, "sdlaudio", err)
					break
				}
			}
		}
	}
}

// move one buffer of samples from the audio queue to SDL's queue
func (s *Sink) queueBuffer() error {
	s.queue.Drain(s.buffer)
	for i, v := range s.buffer {
		binary.LittleEndian.PutUint32(s.data[i*sampleSize:], math.Float32bits(v))
	}
	return sdl.QueueAudio(s.id, s.data)
}

// Close stops playback and closes the audio device.
func (s *Sink) Close() error {
	close(s.quit)
	<-s.done
	sdl.PauseAudioDevice(s.id, true)
	sdl.ClearQueuedAudio(s.id)
	sdl.CloseAudioDevice(s.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
