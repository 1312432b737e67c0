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

// Package events defines the events that drive the emulation. An event is
// either a hardware tick, produced by stepping the hardware, or a host
// command, produced by the host application.
//
// The Event type is a closed union. Only the types in this package implement
// the Event interface. Handlers use a type switch to select the events they
// are interested in:
//
//	func (h *handler) HandleEvent(ev events.Event) []events.Event {
//		switch ev := ev.(type) {
//		case events.SaveSram:
//			...
//		}
//		return nil
//	}
package events

// Event is implemented by every type in this package.
type Event interface {
	isEvent()
}

// Handler implementations respond to events. The returned events are
// dispatched in order after every handler has seen the original event.
type Handler interface {
	HandleEvent(ev Event) []Event
}

// Hardware ticks.
type (
	// run the hardware for one scanline
	RunScanline struct{}

	// the PPU has started a new scanline
	NewScanline struct {
		Scanline int
	}

	// the APU frame sequencer has clocked the envelopes and linear counter
	ApuQuarterFrame struct{}

	// the APU frame sequencer has clocked the length counters and sweeps
	ApuHalfFrame struct{}

	// the PPU has started a new frame
	NewFrame struct{}

	// the frame is complete and ready to be latched
	RequestFrame struct{}
)

// Host commands that apply a setting. The path identifies the setting.
type (
	ApplyIntegerSetting struct {
		Path  string
		Value int
	}

	ApplyBooleanSetting struct {
		Path  string
		Value bool
	}

	ApplyFloatSetting struct {
		Path  string
		Value float64
	}

	ApplyStringSetting struct {
		Path  string
		Value string
	}
)

// Cartridge and battery RAM events.
type (
	// load cartridge data. the battery RAM data is optional
	LoadCartridge struct {
		Name string
		Data []uint8
		SRAM []uint8
	}

	CartridgeLoaded struct {
		Name string
	}

	CartridgeRejected struct {
		Name string
		Err  error
	}

	// request that the battery RAM is saved. an empty filename means the
	// default filename for the cartridge
	RequestSramSave struct {
		Filename string
	}

	// the battery RAM data to be saved
	SaveSram struct {
		Filename string
		Data     []uint8
	}
)

// Other host commands.
type (
	CloseApplication struct{}

	// the index is the position of the channel in the list of channels
	// returned by hardware.NES.Channels()
	MuteChannel struct {
		Index int
	}

	UnmuteChannel struct {
		Index int
	}

	// write an image of the recent channel output
	CaptureWaveform struct {
		Filename string
	}

	// write a graph of the machine state
	DumpMachineState struct {
		Filename string
	}
)

func (RunScanline) isEvent()         {}
func (NewScanline) isEvent()         {}
func (ApuQuarterFrame) isEvent()     {}
func (ApuHalfFrame) isEvent()        {}
func (NewFrame) isEvent()            {}
func (RequestFrame) isEvent()        {}
func (ApplyIntegerSetting) isEvent() {}
func (ApplyBooleanSetting) isEvent() {}
func (ApplyFloatSetting) isEvent()   {}
func (ApplyStringSetting) isEvent()  {}
func (LoadCartridge) isEvent()       {}
func (CartridgeLoaded) isEvent()     {}
func (CartridgeRejected) isEvent()   {}
func (RequestSramSave) isEvent()     {}
func (SaveSram) isEvent()            {}
func (CloseApplication) isEvent()    {}
func (MuteChannel) isEvent()         {}
func (UnmuteChannel) isEvent()       {}
func (CaptureWaveform) isEvent()     {}
func (DumpMachineState) isEvent()    {}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(ev Event) []Event

// HandleEvent implements the Handler interface.
func (f HandlerFunc) HandleEvent(ev Event) []Event {
	return f(ev)
}
