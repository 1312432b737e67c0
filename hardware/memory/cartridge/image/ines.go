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

package image

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mirroring"
)

// Sentinal errors for the iNES loader.
const (
	NotINES       = "image: %s: not an iNES file"
	TruncatedINES = "image: %s: truncated %s data"
)

const inesMagic = "NES\x1a"

// sizes of the units used in the header
const (
	prgUnit     = 0x4000
	chrUnit     = 0x2000
	prgRAMUnit  = 0x2000
	trainerSize = 512
)

type inesHeader struct {
	Magic   [4]byte
	PRGSize uint8
	CHRSize uint8
	Flags6  uint8
	Flags7  uint8
	PRGRAM  uint8
	_       [7]byte
}

// FromINES creates an Image from iNES formatted data.
//
// The PRG-RAM size byte is unreliable in many dumps. A cartridge is given
// PRG-RAM if the battery flag is set or if the size byte is non-zero. A size
// byte of zero means 8KiB.
func FromINES(name string, data []uint8) (Image, error) {
	r := bytes.NewReader(data)

	var hdr inesHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Image{}, curated.Errorf(NotINES, name)
	}
	if string(hdr.Magic[:]) != inesMagic {
		return Image{}, curated.Errorf(NotINES, name)
	}

	img := Image{
		Name:     name,
		MapperID: int(hdr.Flags6>>4) | int(hdr.Flags7&0xf0),
		Battery:  hdr.Flags6&0x02 == 0x02,
	}

	switch {
	case hdr.Flags6&0x08 == 0x08:
		img.Mirroring = mirroring.FourScreen
		img.NametableRAMSize = 0x0800
	case hdr.Flags6&0x01 == 0x01:
		img.Mirroring = mirroring.Vertical
	default:
		img.Mirroring = mirroring.Horizontal
	}

	if img.Battery || hdr.PRGRAM > 0 {
		n := int(hdr.PRGRAM)
		if n == 0 {
			n = 1
		}
		img.PRGRAMSize = n * prgRAMUnit
	}

	// trainer is not used
	if hdr.Flags6&0x04 == 0x04 {
		if _, err := r.Seek(trainerSize, io.SeekCurrent); err != nil {
			return Image{}, curated.Errorf(TruncatedINES, name, "trainer")
		}
	}

	img.PRGROM = make([]uint8, int(hdr.PRGSize)*prgUnit)
	if _, err := io.ReadFull(r, img.PRGROM); err != nil {
		return Image{}, curated.Errorf(TruncatedINES, name, "PRG")
	}

	if hdr.CHRSize == 0 {
		img.CHRRAMSize = chrUnit
	} else {
		img.CHRROM = make([]uint8, int(hdr.CHRSize)*chrUnit)
		if _, err := io.ReadFull(r, img.CHRROM); err != nil {
			return Image{}, curated.Errorf(TruncatedINES, name, "CHR")
		}
	}

	return img, nil
}
