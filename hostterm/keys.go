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

// Package hostterm turns keystrokes at the controlling terminal into host
// commands. The terminal is put into cbreak mode so that keystrokes are
// available immediately without waiting for a newline.
//
// Keys:
//
//	q, Esc, Ctrl-C    close the application
//	s                 save battery RAM
//	w                 capture the channel waveforms
//	d                 dump the machine state
//	1 to 9            toggle the mute state of the indexed channel
package hostterm

import (
	"github.com/jetsetilly/gophernes/emulation/events"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC = 3
	KeyEsc   = 27
)

// Keys translates keystrokes into events. The mute state of each channel is
// tracked so that a single key can toggle it.
type Keys struct {
	muted map[int]bool
}

// NewKeys is the preferred method of initialisation for the Keys type.
func NewKeys() *Keys {
	return &Keys{
		muted: make(map[int]bool),
	}
}

// Translate the key into an event. Returns false if the key has no meaning.
func (k *Keys) Translate(key uint8) (events.Event, bool) {
	switch key {
	case 'q', 'Q', KeyEsc, KeyCtrlC:
		return events.CloseApplication{}, true
	case 's', 'S':
		return events.RequestSramSave{}, true
	case 'w', 'W':
		return events.CaptureWaveform{}, true
	case 'd', 'D':
		return events.DumpMachineState{}, true
	}

	if key >= '1' && key <= '9' {
		idx := int(key - '1')
		k.muted[idx] = !k.muted[idx]
		if k.muted[idx] {
			return events.MuteChannel{Index: idx}, true
		}
		return events.UnmuteChannel{Index: idx}, true
	}

	return nil, false
}
