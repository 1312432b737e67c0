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

// Package statedump writes a graph of the machine state in the DOT language.
// The graph can be rendered with Graphviz.
package statedump

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/paths"
)

// Write the graph of the machine state to w.
func Write(w io.Writer, nes *hardware.NES) {
	memviz.Map(w, nes.State())
}

// Save the graph of the machine state to the named file.
func Save(filename string, nes *hardware.NES) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	Write(f, nes)
	if err := f.Close(); err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	return nil
}

// Handler saves the machine state in response to the DumpMachineState event.
type Handler struct {
	env *environment.Environment
	nes *hardware.NES
}

// NewHandler is the preferred method of initialisation for the Handler type.
func NewHandler(env *environment.Environment, nes *hardware.NES) *Handler {
	return &Handler{env: env, nes: nes}
}

// HandleEvent implements the events.Handler interface.
func (h *Handler) HandleEvent(ev events.Event) []events.Event {
	if ev, ok := ev.(events.DumpMachineState); ok {
		fn := ev.Filename
		if fn == "" {
			fn = paths.UniqueFilename("state", h.nes.Cart.Name) + ".dot"
		}
		if err := Save(fn, h.nes); err != nil {
			logger.Log(h.env, "statedump", err)
		} else {
			logger.Logf(h.env, "statedump", "saved to %s", fn)
		}
	}
	return nil
}
