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

package hostterm_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/hostterm"
	"github.com/jetsetilly/gophernes/test"
)

func TestKeys(t *testing.T) {
	k := hostterm.NewKeys()

	ev, ok := k.Translate('q')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.CloseApplication{}))

	ev, ok = k.Translate(hostterm.KeyEsc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.CloseApplication{}))

	ev, _ = k.Translate('s')
	test.ExpectEquality(t, ev, events.Event(events.RequestSramSave{}))
	ev, _ = k.Translate('w')
	test.ExpectEquality(t, ev, events.Event(events.CaptureWaveform{}))
	ev, _ = k.Translate('d')
	test.ExpectEquality(t, ev, events.Event(events.DumpMachineState{}))

	_, ok = k.Translate('x')
	test.ExpectFailure(t, ok)
}

func TestMuteToggle(t *testing.T) {
	k := hostterm.NewKeys()

	ev, ok := k.Translate('3')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.MuteChannel{Index: 2}))

	ev, _ = k.Translate('3')
	test.ExpectEquality(t, ev, events.Event(events.UnmuteChannel{Index: 2}))

	// each channel is toggled independently
	ev, _ = k.Translate('1')
	test.ExpectEquality(t, ev, events.Event(events.MuteChannel{Index: 0}))
	ev, _ = k.Translate('3')
	test.ExpectEquality(t, ev, events.Event(events.MuteChannel{Index: 2}))
}
