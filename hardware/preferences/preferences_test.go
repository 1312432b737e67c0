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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

func newPreferences(t *testing.T) *preferences.Preferences {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return p
}

func TestDefaults(t *testing.T) {
	p := newPreferences(t)
	test.ExpectEquality(t, p.APU.SampleRate.Get().(int), preferences.DefaultSampleRate)
	test.ExpectEquality(t, p.Audio.LowWaterMark.Get().(int), preferences.DefaultLowWaterMark)
	test.ExpectEquality(t, p.Audio.Backend.String(), preferences.BackendPortAudio)
}

func TestSetByPath(t *testing.T) {
	p := newPreferences(t)

	test.ExpectSuccess(t, p.Set("apu.sampleRate", 48000))
	test.ExpectEquality(t, p.APU.SampleRate.Get().(int), 48000)

	test.ExpectSuccess(t, p.Set("audio.lowWaterMark", 1024))
	test.ExpectEquality(t, p.Audio.LowWaterMark.Get().(int), 1024)

	test.ExpectSuccess(t, p.Set("audio.backend", "sdl"))
	test.ExpectEquality(t, p.Audio.Backend.String(), preferences.BackendSDL)

	// values outside of the acceptable range are rejected and the previous
	// value remains
	err := p.Set("apu.sampleRate", 100)
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidSampleRate))
	test.ExpectEquality(t, p.APU.SampleRate.Get().(int), 48000)

	err = p.Set("audio.lowWaterMark", 0)
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidLowWaterMark))

	err = p.Set("audio.backend", "oss")
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidBackend))

	err = p.Set("video.crt", true)
	test.ExpectSuccess(t, curated.Is(err, preferences.UnknownPath))
	test.ExpectFailure(t, p.Has("video.crt"))

	p.SetDefaults()
	test.ExpectEquality(t, p.APU.SampleRate.Get().(int), preferences.DefaultSampleRate)
}

func TestMutedPreferences(t *testing.T) {
	p := newPreferences(t)

	path := preferences.MutedPath(preferences.Chip2A03, "Noise")
	test.ExpectEquality(t, path, "apu.2A03.Noise.muted")

	// the 2A03 channels are known before they are asked for
	for _, ch := range []string{"Pulse1", "Pulse2", "Triangle", "Noise", "DMC"} {
		test.ExpectSuccess(t, p.Has(preferences.MutedPath(preferences.Chip2A03, ch)))
	}

	// other channels are created on request
	exp := preferences.MutedPath("VRC6", "Saw")
	test.ExpectFailure(t, p.Has(exp))
	e := p.APU.Muted("VRC6", "Saw")
	test.ExpectSuccess(t, p.Has(exp))
	test.ExpectEquality(t, p.APU.Muted("VRC6", "Saw"), e)

	m := p.APU.Muted(preferences.Chip2A03, "Noise")

	// asking for the same channel returns the same preference
	test.ExpectEquality(t, p.APU.Muted(preferences.Chip2A03, "Noise"), m)

	test.ExpectSuccess(t, p.Set(path, true))
	test.ExpectSuccess(t, m.Get().(bool))

	p.SetDefaults()
	test.ExpectFailure(t, m.Get().(bool))
}

func TestMutedReload(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Set(preferences.MutedPath(preferences.Chip2A03, "Noise"), true))
	test.ExpectSuccess(t, p.APU.Muted("VRC6", "Saw").Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Load())
	test.ExpectSuccess(t, q.APU.Muted(preferences.Chip2A03, "Noise").Get().(bool))
	test.ExpectFailure(t, q.APU.Muted(preferences.Chip2A03, "Pulse1").Get().(bool))

	// the expansion channel is created after Load()
	test.ExpectSuccess(t, q.APU.Muted("VRC6", "Saw").Get().(bool))
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	// loading with no prefs file is not an error
	test.ExpectSuccess(t, p.Load())

	test.ExpectSuccess(t, p.Set("apu.sampleRate", 22050))
	test.ExpectSuccess(t, p.Set("audio.backend", "wav"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.APU.SampleRate.Get().(int), 22050)
	test.ExpectEquality(t, q.Audio.Backend.String(), preferences.BackendWAV)
}
