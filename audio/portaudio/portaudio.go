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

// Package portaudio plays the contents of an audio queue through the default
// output device. PortAudio calls back for more samples from its own thread
// and the callback drains the queue. If the queue runs dry the output is
// padded with silence.
package portaudio

import (
	"github.com/gordonklaus/portaudio"
	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/logger"
)

// number of samples requested by each callback.
const framesPerBuffer = 256

// Sink is the PortAudio audio sink.
type Sink struct {
	env    *environment.Environment
	queue  *queue.Queue
	stream *portaudio.Stream
}

// NewSink opens and starts a mono stream on the default output device. The
// sample rate is taken from the APU preferences and must not change while the
// sink is open.
func NewSink(env *environment.Environment, q *queue.Queue) (*Sink, error) {
	s := &Sink{
		env:   env,
		queue: q,
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, curated.Errorf("portaudio: %v", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return nil, curated.Errorf("portaudio: %v", err)
	}

	params := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	params.Output.Channels = 1
	params.SampleRate = float64(env.Prefs.APU.SampleRate.Get().(int))
	params.FramesPerBuffer = framesPerBuffer

	s.stream, err = portaudio.OpenStream(params, s.callback)
	if err != nil {
		portaudio.Terminate()
		return nil, curated.Errorf("portaudio: %v", err)
	}

	if err := s.stream.Start(); err != nil {
		s.stream.Close()
		portaudio.Terminate()
		return nil, curated.Errorf("portaudio: %v", err)
	}

	logger.Logf(env, "portaudio", "%s at %.0fHz", host.DefaultOutputDevice.Name, params.SampleRate)

	return s, nil
}

func (s *Sink) callback(out []float32) {
	s.queue.Drain(out)
}

// Close stops the stream and releases PortAudio.
func (s *Sink) Close() error {
	defer portaudio.Terminate()
	if err := s.stream.Stop(); err != nil {
		return curated.Errorf("portaudio: %v", err)
	}
	if err := s.stream.Close(); err != nil {
		return curated.Errorf("portaudio: %v", err)
	}
	if u := s.queue.Underrun(); u > 0 {
		logger.Logf(s.env, "portaudio", "%d samples of silence inserted", u)
	}
	return nil
}
