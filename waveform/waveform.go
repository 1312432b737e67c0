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

// Package waveform draws the recent output of audio channels. Each channel is
// drawn in its own row with the oldest sample on the left. Muted channels are
// drawn in a dimmer colour.
package waveform

import (
	"github.com/fogleman/gg"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
)

// dimensions of the image
const (
	Width     = 1024
	RowHeight = 96
	margin    = 4
	labelSize = 16
)

// Samples is the number of samples drawn for each channel.
const Samples = 4096

// Render the most recent samples of each channel.
func Render(chs []channel.Channel) *gg.Context {
	h := RowHeight * len(chs)
	if h == 0 {
		h = RowHeight
	}

	dc := gg.NewContext(Width, h)
	dc.SetRGB(0.05, 0.05, 0.1)
	dc.Clear()

	for i, ch := range chs {
		top := float64(i * RowHeight)

		dc.SetRGB(0.3, 0.3, 0.35)
		dc.DrawLine(0, top+RowHeight-0.5, Width, top+RowHeight-0.5)
		dc.SetLineWidth(1)
		dc.Stroke()

		if ch.Muted() {
			dc.SetRGB(0.4, 0.4, 0.4)
		} else {
			dc.SetRGB(0.3, 0.9, 0.5)
		}
		drawSamples(dc, ch, top)

		dc.SetRGB(1, 1, 1)
		dc.DrawString(channel.Label(ch), margin, top+labelSize)
	}

	return dc
}

func drawSamples(dc *gg.Context, ch channel.Channel, top float64) {
	s := ch.SampleBuffer().Latest(Samples)
	if len(s) < 2 {
		return
	}

	min := float64(ch.MinSample())
	rng := float64(ch.MaxSample()) - min
	if rng <= 0 {
		rng = 1
	}

	height := float64(RowHeight - margin*2 - labelSize)
	base := top + RowHeight - margin
	step := float64(Width) / float64(len(s)-1)

	for i, v := range s {
		x := float64(i) * step
		y := base - (float64(v)-min)/rng*height
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.SetLineWidth(1.5)
	dc.Stroke()
}

// Capture renders the channels and saves the result as a PNG file.
func Capture(chs []channel.Channel, filename string) error {
	return Render(chs).SavePNG(filename)
}

// Handler saves a waveform image in response to the CaptureWaveform event.
type Handler struct {
	env      *environment.Environment
	channels func() []channel.Channel
	name     func() string
}

// NewHandler is the preferred method of initialisation for the Handler type.
// The channels function supplies the channels to draw and the name function
// the name of the cartridge, which is used when no filename is given in the
// event.
func NewHandler(env *environment.Environment, channels func() []channel.Channel, name func() string) *Handler {
	return &Handler{
		env:      env,
		channels: channels,
		name:     name,
	}
}

// HandleEvent implements the events.Handler interface.
func (h *Handler) HandleEvent(ev events.Event) []events.Event {
	if ev, ok := ev.(events.CaptureWaveform); ok {
		fn := ev.Filename
		if fn == "" {
			fn = paths.UniqueFilename("waveform", h.name()) + ".png"
		}
		if err := Capture(h.channels(), fn); err != nil {
			logger.Logf(h.env, "waveform", "capture failed: %v", err)
		} else {
			logger.Logf(h.env, "waveform", "saved to %s", fn)
		}
	}
	return nil
}
