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

// Package dispatch delivers events to handlers. Dispatch is synchronous and
// depth first: an event returned by a handler, and all the events that result
// from it, are dispatched before the next event returned by the handlers.
//
// There is no event queue. The call stack is the only record of pending
// events. A handler that always returns an event that leads back to itself
// would recurse forever so the depth of a cascade is limited.
package dispatch
