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

package hostterm

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/pkg/term"
)

// the controlling terminal
const ttyPath = "/dev/tty"

// Terminal reads keystrokes from the controlling terminal.
type Terminal struct {
	tty  *term.Term
	keys *Keys
}

// Open the controlling terminal and put it into cbreak mode.
func Open() (*Terminal, error) {
	tty, err := term.Open(ttyPath, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("hostterm: %v", err)
	}
	return &Terminal{
		tty:  tty,
		keys: NewKeys(),
	}, nil
}

// Start a goroutine that sends an event to the output channel for every
// keystroke that has a meaning. The goroutine ends when the terminal is
// closed.
func (trm *Terminal) Start(output chan<- events.Event) {
	go func() {
		b := make([]uint8, 1)
		for {
			n, err := trm.tty.Read(b)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			if ev, ok := trm.keys.Translate(b[0]); ok {
				output <- ev
				if _, ok := ev.(events.CloseApplication); ok {
					return
				}
			}
		}
	}()
}

// Close restores the terminal to the mode it was in before Open().
func (trm *Terminal) Close() error {
	if err := trm.tty.Restore(); err != nil {
		return curated.Errorf("hostterm: %v", err)
	}
	if err := trm.tty.Close(); err != nil {
		return curated.Errorf("hostterm: %v", err)
	}
	return nil
}
