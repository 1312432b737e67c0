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

// Package emulation and its sub-packages drive the hardware emulation. The
// events package defines the events that pass between the host and the
// emulation, the dispatch package delivers events to handlers, the runtime
// package owns the hardware and the worker package paces the emulation
// against the audio output.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Initialising.
const (
	EmulatorStart State = iota
	Initialising
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "Start"
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return "Unknown"
}
