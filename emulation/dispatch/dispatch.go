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

package dispatch

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/logger"
)

// MaxDepth is the default limit on the depth of an event cascade.
const MaxDepth = 64

// CascadeTooDeep is returned by Dispatch() when a chain of events exceeds the
// maximum depth.
const CascadeTooDeep = "dispatch: event cascade too deep (%d) at %T"

// Dispatcher delivers events to an ordered list of handlers.
type Dispatcher struct {
	perm     logger.Permission
	handlers []events.Handler
	maxDepth int
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. Handlers see each event in the order they are given.
func NewDispatcher(perm logger.Permission, handlers ...events.Handler) *Dispatcher {
	return &Dispatcher{
		perm:     perm,
		handlers: handlers,
		maxDepth: MaxDepth,
	}
}

// AddHandler adds a handler to the end of the list of handlers.
func (d *Dispatcher) AddHandler(h events.Handler) {
	d.handlers = append(d.handlers, h)
}

// SetMaxDepth changes the limit on the depth of an event cascade. Values less
// than one are ignored.
func (d *Dispatcher) SetMaxDepth(depth int) {
	if depth > 0 {
		d.maxDepth = depth
	}
}

// Dispatch the event to every handler. The events returned by the handlers
// are collected and then dispatched in order. Each returned event, and every
// event that results from it, is dispatched before the next returned event.
//
// If the cascade becomes too deep the branch is abandoned and the error is
// logged. Other branches of the cascade are still dispatched. The first
// error is returned.
func (d *Dispatcher) Dispatch(ev events.Event) error {
	return d.dispatch(ev, 0)
}

func (d *Dispatcher) dispatch(ev events.Event, depth int) error {
	if depth >= d.maxDepth {
		err := curated.Errorf(CascadeTooDeep, depth, ev)
		logger.Log(d.perm, "dispatch", err)
		return err
	}

	var responses []events.Event
	for _, h := range d.handlers {
		responses = append(responses, h.HandleEvent(ev)...)
	}

	var err error
	for _, r := range responses {
		if e := d.dispatch(r, depth+1); e != nil && err == nil {
			err = e
		}
	}

	return err
}
