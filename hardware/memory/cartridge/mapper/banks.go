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

package mapper

import (
	"fmt"
)

// BankInfo is used to identify the cartridge bank mapped to an address.
type BankInfo struct {
	Number int

	// the segment of the address space the bank is mapped into. for most
	// mappers there is only one PRG segment
	Segment int

	// is cartridge bank writable
	IsRAM bool

	// the address used to generate the BankInfo is not a cartridge address
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return "-"
	}
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}
