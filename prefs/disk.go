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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the prefs file.
const separator = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
	DuplicateKey  = "prefs: key already added (%s)"
	UnknownKey    = "prefs: unknown key (%s)"
	PrefsFileFail = "prefs: %v"
	SetFail       = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys whose current value came from the command line stack. these values
	// are not written by Save()
	fromCommandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:            path,
		entries:         make(map[string]pref),
		fromCommandLine: make(map[string]bool),
	}, nil
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the prefs file. Keys must be unique
// to the Disk instance and may not contain whitespace or the "::" sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Has returns true if the key has been added to the Disk instance.
func (dsk *Disk) Has(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Set the value of the preference identified by key. The value will be
// converted as appropriate to the type of the preference.
func (dsk *Disk) Set(key string, value Value) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(value); err != nil {
		return curated.Errorf(SetFail, key, err)
	}
	delete(dsk.fromCommandLine, key)
	return nil
}

// Get the value of the preference identified by key.
func (dsk *Disk) Get(key string) (Value, bool) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(SetFail, k, err)
		}
	}
	return nil
}

// read the prefs file into a map of strings. returns a NoPrefsFile error if
// the file does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileFail, err)
	}
	defer f.Close()

	m := make(map[string]string)

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanLines)

	// check validity of file by checking the first line
	scanner.Scan()
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(PrefsFileFail, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		m[strings.TrimSpace(kv[0])] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileFail, err)
	}

	return m, nil
}

// Save current preference values to disk. Entries already in the prefs file
// that have not been added to this Disk instance are preserved, as are the
// entries for values that were taken from the command line stack.
func (dsk *Disk) Save() error {
	m, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		m = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if dsk.fromCommandLine[k] {
			continue
		}
		m[k] = p.String()
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileFail, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, m[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(PrefsFileFail, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(PrefsFileFail, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack are
// applied afterwards and take priority.
//
// If saveOnFail is true and the prefs file does not exist then the current
// values are saved, creating the file. The NoPrefsFile error is still
// returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	m, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			dsk.applyCommandLine()
			if saveOnFail {
				if serr := dsk.Save(); serr != nil {
					return serr
				}
			}
		}
		return err
	}

	for _, k := range dsk.sortedKeys() {
		if v, ok := m[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(SetFail, k, err)
			}
		}
	}

	dsk.applyCommandLine()

	return nil
}

// LoadKey is like Load() but for a single key. Useful for entries that are
// added after Load() has been called. A missing prefs file is not an error.
func (dsk *Disk) LoadKey(key string) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}

	m, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	if v, ok := m[key]; ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(SetFail, key, err)
		}
	}

	dsk.applyCommandLineKey(key)

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for _, k := range dsk.sortedKeys() {
		dsk.applyCommandLineKey(k)
	}
}

func (dsk *Disk) applyCommandLineKey(key string) {
	if ok, v := GetCommandLinePref(key); ok {
		// command line values that can't be set are ignored
		if err := dsk.entries[key].Set(v); err == nil {
			dsk.fromCommandLine[key] = true
		}
	}
}
