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

// Package collaborators provides stand-ins for the CPU and the PPU. They
// reproduce the timing of the real chips but nothing else. The CPU stand-in
// fetches through the CPU bus without executing anything and the PPU
// stand-in counts dots, scanlines and frames without rendering.
//
// They are sufficient to drive the APU, the cartridge and the pacing loop
// headlessly.
package collaborators
