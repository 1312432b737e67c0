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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional
// information to the user.
type Notice string

// List of defined notifications.
const (
	// a cartridge has been attached. the two notices indicate whether the
	// cartridge has battery backed RAM
	NotifySramPresent Notice = "NotifySramPresent"
	NotifySramAbsent  Notice = "NotifySramAbsent"

	// a cartridge load has been rejected. the reason is in the log
	NotifyCartridgeRejected Notice = "NotifyCartridgeRejected"

	// battery RAM has been written to disk
	NotifySramSaved Notice = "NotifySramSaved"

	// a setting has been applied
	NotifySettingsUpdated Notice = "NotifySettingsUpdated"

	// the PPU has completed a frame. the host should present the frame
	NotifyFrameRendered Notice = "NotifyFrameRendered"

	// the emulation has been asked to close
	NotifyClosing Notice = "NotifyClosing"
)

// Notify is used for direct communication between the emulation and the
// host application.
type Notify interface {
	Notify(notice Notice) error
}
