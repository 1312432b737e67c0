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

// Package prefs facilitates the storage of preferential values in the
// Gophernes system. It is a key::value system and is intended to be used by
// the emulation and by the host.
//
// The Bool, Int, Float and String types are the supported value types. Values
// are stored atomically and can be read and written from any goroutine.
// Setting a value can be intercepted with the SetHookPre() and SetHookPost()
// functions.
//
// Values are collated in a Disk instance:
//
//	var sampleRate prefs.Int
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("apu.sampleRate", &sampleRate)
//	err = dsk.Load(true)
//
// Values can be set by key with the Disk.Set() function. This is how settings
// events from the host arrive at the emulation.
//
// The file format for a prefs file is very simple. The first line is the
// WarningBoilerPlate and then one entry per line, each entry being a key and
// value separated by " :: ". Entries in the file that are not registered with
// a Disk instance are preserved when that instance saves the file. This means
// that more than one Disk instance can share the same file.
//
// The command line stack allows values to be specified for the duration of a
// single run. The PushCommandLineStack() function accepts a string of the
// form:
//
//	"apu.sampleRate::48000; audio.lowWaterMark::1024"
//
// Values on the stack are applied when a Disk is loaded and override the
// values found in the prefs file.
package prefs
