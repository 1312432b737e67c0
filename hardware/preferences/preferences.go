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

// Package preferences collates the preference values used by the emulation.
// Preferences are grouped by the hardware (or host) area they affect. All
// groups share the same prefs file.
//
// Preferences are identified by a dotted path, for example
// "apu.sampleRate", and can be set by path with the Set() function. This is
// how settings events arriving from the host are applied.
package preferences

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// UnknownPath is returned by Set() when the path is not a known preference.
const UnknownPath = "preferences: unknown path (%s)"

// Preferences defines and collates all the preference values used by the
// emulation.
type Preferences struct {
	// preferences for the audio processing unit
	APU *APUPreferences

	// preferences for the host audio sink and the pacing loop
	Audio *AudioPreferences
}

func (p *Preferences) String() string {
	return p.APU.String() + p.Audio.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default prefs file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() except that the prefs file
// is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	var err error

	p.APU, err = newAPUPreferences(pth)
	if err != nil {
		return nil, err
	}

	p.Audio, err = newAudioPreferences(pth)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.APU.SetDefaults()
	p.Audio.SetDefaults()
}

// Load preferences from disk. A missing prefs file is not an error.
func (p *Preferences) Load() error {
	for _, dsk := range []*prefs.Disk{p.APU.dsk, p.Audio.dsk} {
		if err := dsk.Load(false); err != nil {
			if !curated.Is(err, prefs.NoPrefsFile) {
				return err
			}
		}
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if err := p.APU.dsk.Save(); err != nil {
		return err
	}
	return p.Audio.dsk.Save()
}

// Has returns true if the path is a known preference.
func (p *Preferences) Has(path string) bool {
	return p.APU.dsk.Has(path) || p.Audio.dsk.Has(path)
}

// Set the preference identified by path. Returns an UnknownPath error if the
// path is not known.
func (p *Preferences) Set(path string, value prefs.Value) error {
	switch {
	case p.APU.dsk.Has(path):
		return p.APU.dsk.Set(path, value)
	case p.Audio.dsk.Has(path):
		return p.Audio.dsk.Set(path, value)
	}
	return curated.Errorf(UnknownPath, path)
}
