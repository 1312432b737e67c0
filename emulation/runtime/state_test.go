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

package runtime_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/emulation/runtime"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func newState(t *testing.T) (*runtime.State, *environment.Environment) {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, p)
	test.DemandSuccess(t, err)
	return runtime.NewState(env), env
}

// iNES data with one 16KiB PRG bank and CHR-RAM
func ines(mapper uint8, battery bool) []uint8 {
	var flags6 uint8 = mapper << 4
	if battery {
		flags6 |= 0x02
	}
	d := []uint8{'N', 'E', 'S', 0x1a, 1, 0, flags6, mapper & 0xf0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, 0x4000)
	prg[0x3ffd] = 0x80
	return append(d, prg...)
}

func TestRunScanline(t *testing.T) {
	st, _ := newState(t)

	resp := st.HandleEvent(events.RunScanline{})
	test.DemandSuccess(t, len(resp) > 0)
	s, ok := resp[0].(events.NewScanline)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Scanline, 1)
	test.ExpectEquality(t, st.Scanline(), 1)

	var frames, quarters, halves int
	for i := 1; i < clocks.NTSCScanlines; i++ {
		for _, r := range st.HandleEvent(events.RunScanline{}) {
			switch r.(type) {
			case events.NewFrame:
				frames++
			case events.ApuQuarterFrame:
				quarters++
			case events.ApuHalfFrame:
				halves++
			}
		}
	}

	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, st.Scanline(), 0)

	// one frame of video is just short of one cycle of the 4-step frame
	// sequencer
	test.ExpectSuccess(t, quarters >= 3 && quarters <= 4)
	test.ExpectSuccess(t, halves >= 1 && halves <= 2)

	// audio has been produced
	test.ExpectSuccess(t, len(st.ConsumeSamples()) > 0)
	test.ExpectEquality(t, len(st.ConsumeSamples()), 0)
}

func TestLoadCartridge(t *testing.T) {
	st, _ := newState(t)

	resp := st.HandleEvent(events.LoadCartridge{Name: "game", Data: ines(0, false)})
	test.DemandEquality(t, len(resp), 1)
	l, ok := resp[0].(events.CartridgeLoaded)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, l.Name, "game")
	test.ExpectEquality(t, st.NES.Cart.Name, "game")
	test.ExpectFailure(t, st.NES.Cart.HasSRAM())

	// not an iNES file
	resp = st.HandleEvent(events.LoadCartridge{Name: "bad", Data: []uint8{0, 1, 2}})
	test.DemandEquality(t, len(resp), 1)
	r, ok := resp[0].(events.CartridgeRejected)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r.Name, "bad")
	test.ExpectFailure(t, r.Err)

	// data that can't be parsed leaves the current cartridge in place
	test.ExpectEquality(t, st.NES.Cart.Name, "game")

	// unsupported mapper
	resp = st.HandleEvent(events.LoadCartridge{Name: "mmc1", Data: ines(1, false)})
	test.DemandEquality(t, len(resp), 1)
	r, ok = resp[0].(events.CartridgeRejected)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, curated.Is(r.Err, cartridge.UnsupportedMapper))

	// but an image that can't be attached leaves the console with no cartridge
	test.ExpectSuccess(t, st.NES.Cart.IsEjected())
}

func TestSramSave(t *testing.T) {
	st, _ := newState(t)

	// no cartridge
	test.ExpectEquality(t, len(st.HandleEvent(events.RequestSramSave{})), 0)

	sram := make([]uint8, 0x2000)
	sram[1] = 0x55
	st.HandleEvent(events.LoadCartridge{Name: "game", Data: ines(0, true), SRAM: sram})
	test.DemandSuccess(t, st.NES.Cart.HasSRAM())

	v, ok := st.NES.ReadCPU(0x6001)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x55))

	st.NES.WriteCPU(0x6000, 0xaa)

	resp := st.HandleEvent(events.RequestSramSave{})
	test.DemandEquality(t, len(resp), 1)
	s, ok := resp[0].(events.SaveSram)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Filename, "game.sav")
	test.DemandEquality(t, len(s.Data), 0x2000)
	test.ExpectEquality(t, s.Data[0], uint8(0xaa))
	test.ExpectEquality(t, s.Data[1], uint8(0x55))

	resp = st.HandleEvent(events.RequestSramSave{Filename: "other.sav"})
	test.DemandEquality(t, len(resp), 1)
	test.ExpectEquality(t, resp[0].(events.SaveSram).Filename, "other.sav")
}

func TestMuteChannel(t *testing.T) {
	st, env := newState(t)

	chs := st.NES.Channels()
	test.DemandEquality(t, len(chs), 5)

	st.HandleEvent(events.MuteChannel{Index: 3})
	test.ExpectSuccess(t, chs[3].Muted())
	test.ExpectSuccess(t, env.Prefs.APU.Muted(chs[3].Chip(), chs[3].Name()).Get().(bool))

	st.HandleEvent(events.UnmuteChannel{Index: 3})
	test.ExpectFailure(t, chs[3].Muted())

	// out of range indexes are ignored
	st.HandleEvent(events.MuteChannel{Index: 10})
	st.HandleEvent(events.MuteChannel{Index: -1})
	for _, ch := range chs {
		test.ExpectFailure(t, ch.Muted())
	}
}

func TestApplySettings(t *testing.T) {
	st, env := newState(t)

	test.ExpectEquality(t, len(st.HandleEvent(events.ApplyIntegerSetting{Path: "apu.sampleRate", Value: 22050})), 0)
	test.ExpectEquality(t, env.Prefs.APU.SampleRate.Get().(int), 22050)

	st.HandleEvent(events.ApplyIntegerSetting{Path: "audio.lowWaterMark", Value: 1024})
	test.ExpectEquality(t, env.Prefs.Audio.LowWaterMark.Get().(int), 1024)

	st.HandleEvent(events.ApplyStringSetting{Path: "audio.backend", Value: "none"})
	test.ExpectEquality(t, env.Prefs.Audio.Backend.String(), "none")

	// muting a channel through its preference path
	st.HandleEvent(events.ApplyBooleanSetting{Path: preferences.MutedPath("2A03", "Triangle"), Value: true})
	test.ExpectSuccess(t, st.NES.APU.Triangle.Muted())

	// rejected values leave the preference unchanged
	st.HandleEvent(events.ApplyIntegerSetting{Path: "apu.sampleRate", Value: 1})
	test.ExpectEquality(t, env.Prefs.APU.SampleRate.Get().(int), 22050)

	// unknown paths are not an error
	st.HandleEvent(events.ApplyFloatSetting{Path: "video.brightness", Value: 0.5})
}

func TestMutePersistence(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	session := func() (*runtime.State, *environment.Environment) {
		p, err := preferences.NewPreferencesFromFile(pth)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, p.Load())
		env, err := environment.NewEnvironment(environment.MainEmulation, nil, p)
		test.DemandSuccess(t, err)
		return runtime.NewState(env), env
	}

	st, env := session()
	test.ExpectFailure(t, st.NES.APU.Noise.Muted())
	st.HandleEvent(events.MuteChannel{Index: 3})
	test.ExpectSuccess(t, st.NES.APU.Noise.Muted())
	test.DemandSuccess(t, env.Prefs.Save())

	// the muted channel is restored in the next session
	st, _ = session()
	test.ExpectSuccess(t, st.NES.APU.Noise.Muted())
	test.ExpectFailure(t, st.NES.APU.Triangle.Muted())

	// muting from the command line
	prefs.PushCommandLineStack("apu.2A03.Triangle.muted::true")
	defer prefs.PopCommandLineStack()
	st, env = session()
	test.ExpectSuccess(t, st.NES.APU.Triangle.Muted())
	test.ExpectSuccess(t, st.NES.APU.Noise.Muted())

	// the command line value is not saved
	test.DemandSuccess(t, env.Prefs.Save())
	st, _ = session()
	test.ExpectFailure(t, st.NES.APU.Triangle.Muted())
}
