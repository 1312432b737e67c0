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

package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/emulation/dispatch"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/test"
)

// recorder is a handler that records the scanline number of every
// NewScanline event and responds with a fixed list of follow up events
type recorder struct {
	order    []int
	followUp map[int][]int
}

func (r *recorder) HandleEvent(ev events.Event) []events.Event {
	s, ok := ev.(events.NewScanline)
	if !ok {
		return nil
	}
	r.order = append(r.order, s.Scanline)

	var resp []events.Event
	for _, f := range r.followUp[s.Scanline] {
		resp = append(resp, events.NewScanline{Scanline: f})
	}
	return resp
}

func TestDepthFirstOrder(t *testing.T) {
	r := &recorder{
		followUp: map[int][]int{
			1: {2, 5},
			2: {3, 4},
			5: {6},
		},
	}
	d := dispatch.NewDispatcher(logger.Allow, r)

	test.ExpectSuccess(t, d.Dispatch(events.NewScanline{Scanline: 1}))
	test.ExpectEquality(t, len(r.order), 6)
	for i, s := range r.order {
		test.ExpectEquality(t, s, i+1)
	}
}

func TestHandlerOrder(t *testing.T) {
	var order []string

	first := events.HandlerFunc(func(ev events.Event) []events.Event {
		switch ev.(type) {
		case events.RunScanline:
			order = append(order, "first")
			return []events.Event{events.NewFrame{}}
		case events.NewFrame:
			order = append(order, "first frame")
		}
		return nil
	})

	second := events.HandlerFunc(func(ev events.Event) []events.Event {
		switch ev.(type) {
		case events.RunScanline:
			order = append(order, "second")
			return []events.Event{events.RequestFrame{}}
		case events.NewFrame:
			order = append(order, "second frame")
		case events.RequestFrame:
			order = append(order, "second request")
		}
		return nil
	})

	d := dispatch.NewDispatcher(logger.Allow, first, second)
	test.ExpectSuccess(t, d.Dispatch(events.RunScanline{}))

	// every handler sees the event before any response is dispatched
	expected := []string{"first", "second", "first frame", "second frame", "second request"}
	test.DemandEquality(t, len(order), len(expected))
	for i := range expected {
		test.ExpectEquality(t, order[i], expected[i])
	}
}

func TestRunawayCascade(t *testing.T) {
	var count int
	runaway := events.HandlerFunc(func(ev events.Event) []events.Event {
		if s, ok := ev.(events.NewScanline); ok {
			count++
			return []events.Event{events.NewScanline{Scanline: s.Scanline + 1}}
		}
		return nil
	})

	d := dispatch.NewDispatcher(logger.Allow, runaway)
	err := d.Dispatch(events.NewScanline{})
	test.ExpectSuccess(t, curated.Is(err, dispatch.CascadeTooDeep))
	test.ExpectEquality(t, count, dispatch.MaxDepth)

	count = 0
	d.SetMaxDepth(8)
	err = d.Dispatch(events.NewScanline{})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, count, 8)
}

func TestRunawayBranch(t *testing.T) {
	r := &recorder{
		followUp: map[int][]int{
			1: {2, 100},
			2: {2},
		},
	}

	d := dispatch.NewDispatcher(logger.Allow, r)
	d.SetMaxDepth(4)

	// the runaway branch is abandoned but its sibling is still dispatched
	err := d.Dispatch(events.NewScanline{Scanline: 1})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r.order[len(r.order)-1], 100)
	test.ExpectEquality(t, len(r.order), 5)
}
