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

package channel

import "fmt"

// RateKind specifies the meaning of the PlaybackRate value.
type RateKind int

// List of valid RateKind values.
const (
	// the channel produces a tone at the specified frequency
	FundamentalFrequency RateKind = iota

	// the channel is driven by a shift register clocked at one of a fixed
	// number of rates. the index is the rate currently selected
	LFSRRate

	// the channel plays back samples at the specified rate
	SampleRate
)

// PlaybackRate describes the rate at which a channel repeats its waveform.
type PlaybackRate struct {
	Kind RateKind

	// frequency in Hz. used by FundamentalFrequency and SampleRate
	Frequency float64

	// rate index and the maximum index value. used by LFSRRate
	Index int
	Max   int
}

func (r PlaybackRate) String() string {
	switch r.Kind {
	case FundamentalFrequency:
		return fmt.Sprintf("%.2fHz", r.Frequency)
	case LFSRRate:
		return fmt.Sprintf("rate %d/%d", r.Index, r.Max)
	case SampleRate:
		return fmt.Sprintf("%.0fHz sample rate", r.Frequency)
	}
	return "unknown rate"
}

// TimbreKind specifies the meaning of the Timbre value.
type TimbreKind int

// List of valid TimbreKind values.
const (
	// the duty cycle of a pulse wave
	DutyIndex TimbreKind = iota

	// the mode of a shift register
	LFSRMode

	// an instrument patch
	PatchIndex
)

// Timbre describes the tone colour of a channel.
type Timbre struct {
	Kind  TimbreKind
	Index int
	Max   int
}

func (t Timbre) String() string {
	switch t.Kind {
	case DutyIndex:
		return fmt.Sprintf("duty %d/%d", t.Index, t.Max)
	case LFSRMode:
		return fmt.Sprintf("mode %d/%d", t.Index, t.Max)
	case PatchIndex:
		return fmt.Sprintf("patch %d/%d", t.Index, t.Max)
	}
	return "unknown timbre"
}
