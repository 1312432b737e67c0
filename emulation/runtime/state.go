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

// Package runtime owns the emulated console and responds to the events that
// change it. Stepping the hardware is itself an event (RunScanline) and the
// hardware ticks that result are returned as new events for other handlers
// to see.
package runtime

import (
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/prefs"
)

// State is the runtime state of the emulation. It implements the
// events.Handler interface.
type State struct {
	env *environment.Environment

	NES *hardware.NES
}

// NewState is the preferred method of initialisation for the State type. The
// console starts with no cartridge.
func NewState(env *environment.Environment) *State {
	return &State{
		env: env,
		NES: hardware.NewNES(env),
	}
}

// Scanline returns the scanline the PPU is currently on.
func (s *State) Scanline() int {
	return s.NES.PPU.Scanline()
}

// ConsumeSamples returns the audio samples produced since the previous call.
func (s *State) ConsumeSamples() []int16 {
	return s.NES.APU.ConsumeSamples()
}

// HandleEvent implements the events.Handler interface.
func (s *State) HandleEvent(ev events.Event) []events.Event {
	switch ev := ev.(type) {
	case events.RunScanline:
		return s.runScanline()

	case events.LoadCartridge:
		return s.loadCartridge(ev)

	case events.RequestSramSave:
		if !s.NES.Cart.HasSRAM() {
			logger.Logf(s.env, "runtime", "%s has no battery RAM to save", s.NES.Cart.Name)
			return nil
		}
		fn := ev.Filename
		if fn == "" {
			fn = s.NES.Cart.SRAMFilename()
		}
		return []events.Event{events.SaveSram{Filename: fn, Data: s.NES.Cart.SRAM()}}

	case events.MuteChannel:
		s.setMuted(ev.Index, true)

	case events.UnmuteChannel:
		s.setMuted(ev.Index, false)

	case events.ApplyIntegerSetting:
		s.applySetting(ev.Path, ev.Value)
	case events.ApplyBooleanSetting:
		s.applySetting(ev.Path, ev.Value)
	case events.ApplyFloatSetting:
		s.applySetting(ev.Path, ev.Value)
	case events.ApplyStringSetting:
		s.applySetting(ev.Path, ev.Value)
	}

	return nil
}

func (s *State) runScanline() []events.Event {
	t := s.NES.RunScanline()

	resp := make([]events.Event, 0, 2+t.QuarterFrames+t.HalfFrames)
	resp = append(resp, events.NewScanline{Scanline: t.Scanline})
	for i := 0; i < t.QuarterFrames; i++ {
		resp = append(resp, events.ApuQuarterFrame{})
	}
	for i := 0; i < t.HalfFrames; i++ {
		resp = append(resp, events.ApuHalfFrame{})
	}
	if t.NewFrame {
		resp = append(resp, events.NewFrame{})
	}

	return resp
}

func (s *State) loadCartridge(ev events.LoadCartridge) []events.Event {
	img, err := image.FromINES(ev.Name, ev.Data)
	if err == nil {
		err = s.NES.AttachCartridge(img, ev.SRAM)
	}
	if err != nil {
		logger.Log(s.env, "runtime", err)
		return []events.Event{events.CartridgeRejected{Name: ev.Name, Err: err}}
	}
	return []events.Event{events.CartridgeLoaded{Name: ev.Name}}
}

// the muted state of a channel is a preference. setting the preference mutes
// or unmutes the channel
func (s *State) setMuted(idx int, muted bool) {
	chs := s.NES.Channels()
	if idx < 0 || idx >= len(chs) {
		logger.Logf(s.env, "runtime", "no channel at index %d", idx)
		return
	}
	ch := chs[idx]
	if err := s.env.Prefs.APU.Muted(ch.Chip(), ch.Name()).Set(muted); err != nil {
		logger.Log(s.env, "runtime", err)
	}
}

// settings that are not emulation preferences are left for other handlers
func (s *State) applySetting(path string, value prefs.Value) {
	if !s.env.Prefs.Has(path) {
		return
	}
	if err := s.env.Prefs.Set(path, value); err != nil {
		logger.Log(s.env, "runtime", err)
	}
}
