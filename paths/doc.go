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

// Package paths contains functions to prepare paths to gophernes resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".gophernes" in the current working
// directory. Release builds (built with the "release" tag) use the user's
// config directory as reported by os.UserConfigDir(). The directory is
// created if it doesn't exist.
//
// The UniqueFilename() function creates a filename with a timestamp, suitable
// for waveform captures, machine state dumps and audio recordings.
package paths
