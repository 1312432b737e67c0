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

// Package apu implements the audio processing unit of the 2A03. The APU has
// five channels: two pulse channels, a triangle channel, a noise channel and
// a delta modulation channel (DMC). Every channel implements the
// channel.Channel interface.
//
// The APU is stepped once per CPU cycle with the Step() function. Channel
// timers are clocked from Step(), as is the frame sequencer that clocks the
// envelopes, the length counters, the sweep units and the triangle's linear
// counter. The number of quarter and half frame clocks since the last call to
// FrameTicks() is available so that the frame sequencer can be observed from
// outside of the APU.
//
// The output of the channels is mixed every CPU cycle and the mixed output is
// averaged and emitted at the sample rate specified in the preferences.
// Emitted samples are collected with ConsumeSamples(). Expansion channels
// provided by a cartridge can be added with SetExpansion() and are mixed with
// the 2A03 channels.
package apu
