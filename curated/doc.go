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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	bank := 10
//	e := curated.Errorf("cartridge: no such bank (%d)", bank)
//
//	if curated.Is(e, "cartridge: no such bank (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("cartridge: no such bank (%d)", bank)
//	f := curated.Errorf("load failed: %v", e)
//
//	if curated.Has(f, "cartridge: no such bank (%d)") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Uncurated errors are usually the result of a failure in a third-party
// package or the standard library.
//
// Error messages are de-duplicated when they are printed. If the first two
// parts of a message (separated by ": ") are the same, the first part is
// dropped. So a pattern of "cartridge: %v" wrapping an error that reads
// "cartridge: incompatible CHR" prints as "cartridge: incompatible CHR".
package curated
