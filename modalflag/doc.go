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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most importantly, a new instance of Modes must be
// created and the arguments specified with NewArgs():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//
// Flags are added with the Add*() functions and sub-modes with the
// AddSubModes() function. The first sub-mode is the default mode. Parse()
// returns one of the ParseResult values:
//
//	md.AddSubModes("RUN", "WAV")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has been printed
//	case modalflag.ParseError:
//		// err describes the problem
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		// flags for the RUN mode are added after a call to NewMode()
//		md.NewMode()
//		sampleRate := md.AddInt("samplerate", 44100, "sample rate")
//		md.Parse()
//	}
//
// Mode selection is case insensitive. The path of modes selected by
// successive calls to Parse() can be retrieved with the Path() function.
package modalflag
