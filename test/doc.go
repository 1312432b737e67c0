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

// Package test bundles a small number of helper functions for use with the
// standard go test harness.
//
// The Expect*() functions report a failed test but allow the test to continue.
// The Demand*() functions stop the test immediately on failure.
//
// The CompareWriter type implements io.Writer and is used to capture output.
// The Compare() function can then be used to test the captured output.
package test
