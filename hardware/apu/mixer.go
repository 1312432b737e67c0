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

package apu

import (
	"github.com/jetsetilly/gophernes/hardware/apu/channel"
)

// the 2A03 mixes its channels non-linearly. the usual approximation is two
// lookup tables, one for the pulse channels and one for the triangle, noise
// and DMC group.
var (
	pulseTable [31]float32
	tndTable   [203]float32
)

func init() {
	for i := 1; i < len(pulseTable); i++ {
		pulseTable[i] = float32(95.52 / (8128.0/float64(i) + 100.0))
	}
	for i := 1; i < len(tndTable); i++ {
		tndTable[i] = float32(163.67 / (24329.0/float64(i) + 100.0))
	}
}

// the contribution of each expansion channel at full volume. roughly the
// same as a single pulse channel at full volume.
const expansionWeight = 0.12

// output of a channel or zero if the channel is muted.
func audible(ch channel.Channel) int {
	if ch.Muted() {
		return 0
	}
	return int(ch.Output())
}

// mix the output of all channels. the result is in the range 0.0 to 1.0 for
// the 2A03 channels. expansion channels may push it a little higher.
func (apu *APU) mix() float32 {
	p := audible(apu.Pulse1) + audible(apu.Pulse2)
	t := audible(apu.Triangle)
	n := audible(apu.Noise)
	d := audible(apu.DMC)

	v := pulseTable[p] + tndTable[3*t+2*n+d]

	for _, ch := range apu.expansion {
		max := ch.MaxSample()
		min := ch.MinSample()
		if max <= min || ch.Muted() {
			continue
		}
		o := float32(ch.Output()-min) / float32(max-min)
		v += o * expansionWeight
	}

	return v
}
