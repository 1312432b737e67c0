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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/apu/channel"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// ChannelState is a summary of an audio channel.
type ChannelState struct {
	Label   string
	Muted   bool
	Playing bool
	Output  int16
	Rate    string
	Timbre  string
}

// CartridgeState is a summary of the attached cartridge.
type CartridgeState struct {
	Name      string
	Hash      string
	Mapper    string
	Banks     string
	Mirroring string
	HasSRAM   bool
}

// State is a summary of the console. It contains no references to the live
// emulation and is safe to pass to another goroutine.
type State struct {
	Cartridge CartridgeState
	Channels  []ChannelState
	CPU       string
	PPU       string
}

// State returns a summary of the console.
func (nes *NES) State() *State {
	s := &State{
		Cartridge: CartridgeState{
			Name:      nes.Cart.Name,
			Hash:      nes.Cart.Hash,
			Mapper:    nes.Cart.ID(),
			Banks:     nes.Cart.GetMapper().String(),
			Mirroring: nes.Cart.Mirroring().String(),
			HasSRAM:   nes.Cart.HasSRAM(),
		},
		CPU: fmt.Sprintf("%v", nes.CPU),
		PPU: fmt.Sprintf("%v", nes.PPU),
	}

	if b, ok := nes.Cart.GetMapper().(mapper.Banked); ok && b.NumBanks() > 1 {
		s.Cartridge.Banks = fmt.Sprintf("%s (%d banks)", s.Cartridge.Banks, b.NumBanks())
	}

	for _, ch := range nes.Channels() {
		cs := ChannelState{
			Label:   channel.Label(ch),
			Muted:   ch.Muted(),
			Playing: ch.Playing(),
			Output:  ch.Output(),
			Rate:    ch.Rate().String(),
		}
		if tm, ok := ch.Timbre(); ok {
			cs.Timbre = tm.String()
		}
		s.Channels = append(s.Channels, cs)
	}

	return s
}
