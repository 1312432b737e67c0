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

// Package memoryblock implements the physical storage used by cartridges and
// the console. A Block has a fixed capacity and every address wraps modulo
// that capacity, so a logical address range larger than the physical store
// repeats transparently.
//
// A Block with a capacity of zero is the "no memory of this kind" case. Reads
// return false for the ok value and writes are ignored.
//
// Blocks do not distinguish between ROM and RAM. Enforcing read-only access is
// the responsibility of the device that owns the block.
package memoryblock

import (
	"fmt"
)

// Block is a region of physical memory.
type Block struct {
	data []uint8
}

// NewBlock creates a new zeroed Block of the specified size.
func NewBlock(size int) *Block {
	if size < 0 {
		size = 0
	}
	return &Block{
		data: make([]uint8, size),
	}
}

// NewBlockFromData creates a Block with a copy of the supplied data. The size
// of the block is the length of the data.
func NewBlockFromData(data []uint8) *Block {
	blk := &Block{
		data: make([]uint8, len(data)),
	}
	copy(blk.data, data)
	return blk
}

func (blk *Block) String() string {
	if len(blk.data) == 0 {
		return "absent"
	}
	if len(blk.data) >= 1024 && len(blk.data)%1024 == 0 {
		return fmt.Sprintf("%dKiB", len(blk.data)/1024)
	}
	return fmt.Sprintf("%d bytes", len(blk.data))
}

// Size returns the physical capacity of the block.
func (blk *Block) Size() int {
	return len(blk.data)
}

// the index into the data for the address. negative addresses wrap from the
// end of the block.
func (blk *Block) index(addr int) int {
	idx := addr % len(blk.data)
	if idx < 0 {
		idx += len(blk.data)
	}
	return idx
}

// Read the byte at the address. The address is wrapped modulo the size of the
// block. Returns false if the block has a capacity of zero.
func (blk *Block) Read(addr int) (uint8, bool) {
	if len(blk.data) == 0 {
		return 0, false
	}
	return blk.data[blk.index(addr)], true
}

// Write the byte to the address. The address is wrapped modulo the size of
// the block. Writes to a block with a capacity of zero are ignored.
func (blk *Block) Write(addr int, data uint8) {
	if len(blk.data) == 0 {
		return
	}
	blk.data[blk.index(addr)] = data
}

// Data returns a copy of the contents of the block.
func (blk *Block) Data() []uint8 {
	d := make([]uint8, len(blk.data))
	copy(d, blk.data)
	return d
}

// Load replaces the contents of the block with the supplied data. If the data
// is shorter than the block then the remainder of the block is unchanged. Data
// beyond the capacity of the block is ignored. Returns the number of bytes
// loaded.
func (blk *Block) Load(data []uint8) int {
	return copy(blk.data, data)
}
