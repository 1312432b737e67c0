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
	"fmt"
	"sync"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
)

// DefaultSampleRate is the sample rate used when no preference has been set.
const DefaultSampleRate = 44100

// the range of acceptable sample rates.
const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

// InvalidSampleRate is returned when a sample rate outside the supported
// range is set.
const InvalidSampleRate = "preferences: sample rate not supported (%d)"

// Chip2A03 is the chip name of the console's own audio channels.
const Chip2A03 = "2A03"

// the 2A03 channels have muted preferences from the start so that they are
// loaded along with every other preference
var channels2A03 = []string{"Pulse1", "Pulse2", "Triangle", "Noise", "DMC"}

// APUPreferences are the preferences for the audio processing unit.
type APUPreferences struct {
	dsk *prefs.Disk

	// the rate at which the APU emits mixed samples
	SampleRate prefs.Int

	crit  sync.Mutex
	muted map[string]*prefs.Bool
}

func newAPUPreferences(pth string) (*APUPreferences, error) {
	p := &APUPreferences{
		muted: make(map[string]*prefs.Bool),
	}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < minSampleRate || r > maxSampleRate {
			return curated.Errorf(InvalidSampleRate, r)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("apu.sampleRate", &p.SampleRate)
	if err != nil {
		return nil, err
	}

	for _, ch := range channels2A03 {
		key := MutedPath(Chip2A03, ch)
		m := &prefs.Bool{}
		err = p.dsk.Add(key, m)
		if err != nil {
			return nil, err
		}
		p.muted[key] = m
	}

	return p, nil
}

func (p *APUPreferences) String() string {
	return p.dsk.String()
}

// SetDefaults reverts APU preferences to their default values.
func (p *APUPreferences) SetDefaults() {
	p.SampleRate.Set(DefaultSampleRate)

	p.crit.Lock()
	defer p.crit.Unlock()
	for _, m := range p.muted {
		m.Set(false)
	}
}

// MutedPath returns the preference path for the muted state of a channel.
func MutedPath(chip string, channel string) string {
	return fmt.Sprintf("apu.%s.%s.muted", chip, channel)
}

// Muted returns the muted preference for the named channel. Preferences for
// channels other than the 2A03 channels are created the first time they are
// requested, with the value from the prefs file or the command line.
func (p *APUPreferences) Muted(chip string, channel string) *prefs.Bool {
	p.crit.Lock()
	defer p.crit.Unlock()

	key := MutedPath(chip, channel)
	if m, ok := p.muted[key]; ok {
		return m
	}

	m := &prefs.Bool{}

	// the key is built from the chip and channel names. if they produce an
	// invalid key the preference still works but is not stored on disk
	if err := p.dsk.Add(key, m); err == nil {
		// a value that can't be loaded leaves the channel unmuted
		_ = p.dsk.LoadKey(key)
	}

	p.muted[key] = m
	return m
}
