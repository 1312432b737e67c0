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

package preferences

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
)

// List of audio backends.
const (
	BackendPortAudio = "portaudio"
	BackendSDL       = "sdl"
	BackendWAV       = "wav"
	BackendNone      = "none"
)

// DefaultLowWaterMark is the number of buffered samples below which the
// pacing loop will run the emulation.
const DefaultLowWaterMark = 512

// Sentinal errors for audio preferences.
const (
	InvalidLowWaterMark = "preferences: low water mark must be positive (%d)"
	InvalidBackend      = "preferences: unknown audio backend (%s)"
)

// AudioPreferences are the preferences for the host audio sink and the
// pacing loop that feeds it.
type AudioPreferences struct {
	dsk *prefs.Disk

	// number of samples the pacing loop keeps in the queue
	LowWaterMark prefs.Int

	// the audio sink to use
	Backend prefs.String
}

func newAudioPreferences(pth string) (*AudioPreferences, error) {
	p := &AudioPreferences{}
	p.SetDefaults()

	p.LowWaterMark.SetHookPre(func(v prefs.Value) error {
		if m := v.(int); m <= 0 {
			return curated.Errorf(InvalidLowWaterMark, m)
		}
		return nil
	})

	p.Backend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendPortAudio, BackendSDL, BackendWAV, BackendNone:
			return nil
		}
		return curated.Errorf(InvalidBackend, v)
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("audio.lowWaterMark", &p.LowWaterMark)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.backend", &p.Backend)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *AudioPreferences) String() string {
	return p.dsk.String()
}

// SetDefaults reverts audio preferences to their default values.
func (p *AudioPreferences) SetDefaults() {
	p.LowWaterMark.Set(DefaultLowWaterMark)
	p.Backend.Set(BackendPortAudio)
}
