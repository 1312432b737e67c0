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

package channel_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/test"
)

func TestRingBuffer(t *testing.T) {
	rb := channel.NewRingBuffer(4)
	test.ExpectEquality(t, rb.Capacity(), 4)
	test.ExpectEquality(t, rb.Len(), 0)
	test.ExpectEquality(t, len(rb.Latest(10)), 0)

	rb.Push(1)
	rb.Push(2)
	rb.Push(3)
	test.ExpectEquality(t, rb.Len(), 3)
	test.ExpectEquality(t, rb.Index(), 3)

	l := rb.Latest(10)
	test.ExpectEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], int16(1))
	test.ExpectEquality(t, l[2], int16(3))

	// overwrite oldest values
	rb.Push(4)
	rb.Push(5)
	rb.Push(6)
	test.ExpectEquality(t, rb.Len(), 4)
	test.ExpectEquality(t, rb.Index(), 2)

	l = rb.Latest(4)
	test.ExpectEquality(t, len(l), 4)
	for i, v := range []int16{3, 4, 5, 6} {
		test.ExpectEquality(t, l[i], v, i)
	}

	l = rb.Latest(2)
	test.ExpectEquality(t, l[0], int16(5))
	test.ExpectEquality(t, l[1], int16(6))

	b := rb.Buffer()
	test.ExpectEquality(t, b[0], int16(5))
	test.ExpectEquality(t, b[2], int16(3))

	rb.Clear()
	test.ExpectEquality(t, rb.Len(), 0)
	test.ExpectEquality(t, rb.Index(), 0)
}

func TestDebug(t *testing.T) {
	d := channel.NewDebug("Noise", "2A03")
	test.ExpectEquality(t, d.Name(), "Noise")
	test.ExpectEquality(t, d.Chip(), "2A03")
	test.ExpectEquality(t, d.SampleBuffer().Capacity(), channel.DefaultHistory)

	test.ExpectFailure(t, d.Muted())
	d.Mute()
	test.ExpectSuccess(t, d.Muted())
	d.Unmute()
	test.ExpectFailure(t, d.Muted())

	d.Record(15)
	test.ExpectEquality(t, d.SampleBuffer().Latest(1)[0], int16(15))
}

func TestPlaybackRate(t *testing.T) {
	r := channel.PlaybackRate{Kind: channel.LFSRRate, Index: 3, Max: 15}
	test.ExpectEquality(t, r.String(), "rate 3/15")

	r = channel.PlaybackRate{Kind: channel.FundamentalFrequency, Frequency: 440}
	test.ExpectEquality(t, r.String(), "440.00Hz")

	tm := channel.Timbre{Kind: channel.DutyIndex, Index: 2, Max: 3}
	test.ExpectEquality(t, tm.String(), "duty 2/3")
}
