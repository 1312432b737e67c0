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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gophernes_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("volume", &v))
	test.ExpectSuccess(t, v.Set(0.75))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "volume :: 0.750\n")

	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.Get().(float64), 0.5)

	// reload from disk
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(float64), 0.75)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(512))
	test.ExpectEquality(t, post, 512)

	// pre hook prevents the value being updated
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 512)
	test.ExpectEquality(t, post, 512)
}

func TestDiskKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int

	test.ExpectSuccess(t, curated.Is(dsk.Add("bad key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("bad::key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.Add("apu.2A03.noise.muted", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("apu.2A03.noise.muted", &w), prefs.DuplicateKey))
	test.ExpectSuccess(t, dsk.Add("audio.lowWaterMark", &w))

	test.ExpectSuccess(t, dsk.Has("audio.lowWaterMark"))
	test.ExpectFailure(t, dsk.Has("audio.backend"))

	test.ExpectSuccess(t, dsk.Set("apu.2A03.noise.muted", true))
	test.ExpectSuccess(t, v.Get().(bool))

	test.ExpectSuccess(t, dsk.Set("audio.lowWaterMark", "1024"))
	val, ok := dsk.Get("audio.lowWaterMark")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, val.(int), 1024)

	err = dsk.Set("audio.backend", "sdl")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	err = dsk.Set("audio.lowWaterMark", "lots")
	test.ExpectSuccess(t, curated.Is(err, prefs.SetFail))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, w.Get().(int), 0)
	test.ExpectFailure(t, v.Get().(bool))
}

func TestLoadMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("apu.sampleRate", &v))
	test.ExpectSuccess(t, v.Set(44100))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	// saveOnFail creates the file
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpTmpFile(t, fn, "apu.sampleRate :: 44100\n")
}

func TestLoadWithCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("apu.sampleRate", &v))
	test.ExpectSuccess(t, v.Set(44100))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("apu.sampleRate::48000")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 48000)

	// the command line value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineNotSaved(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("apu.sampleRate", &v))
	test.ExpectSuccess(t, dsk.Add("audio.lowWaterMark", &w))
	test.ExpectSuccess(t, v.Set(44100))
	test.ExpectSuccess(t, w.Set(512))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("apu.sampleRate::22050; audio.lowWaterMark::1024")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, v.Get().(int), 22050)
	test.ExpectEquality(t, w.Get().(int), 1024)

	// a value set after the command line was applied is saved as normal
	test.ExpectSuccess(t, dsk.Set("audio.lowWaterMark", 2048))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("apu.sampleRate", &v))
	test.ExpectSuccess(t, dsk.Add("audio.lowWaterMark", &w))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 44100)
	test.ExpectEquality(t, w.Get().(int), 2048)
}

func TestLoadKey(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.LoadKey("apu.VRC6.Saw.muted"), prefs.UnknownKey))

	// no prefs file
	test.ExpectSuccess(t, dsk.Add("apu.VRC6.Saw.muted", &v))
	test.ExpectSuccess(t, dsk.LoadKey("apu.VRC6.Saw.muted"))
	test.ExpectFailure(t, v.Get().(bool))

	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// the key is added to a new disk instance after Load()
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Load(false))

	var u prefs.Bool
	test.ExpectSuccess(t, dsk.Add("apu.VRC6.Saw.muted", &u))
	test.ExpectSuccess(t, dsk.LoadKey("apu.VRC6.Saw.muted"))
	test.ExpectSuccess(t, u.Get().(bool))

	// a command line value left on the stack takes priority
	prefs.PushCommandLineStack("apu.VRC6.Pulse1.muted::true")
	defer prefs.PopCommandLineStack()

	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("apu.VRC6.Pulse1.muted", &x))
	test.ExpectSuccess(t, dsk.LoadKey("apu.VRC6.Pulse1.muted"))
	test.ExpectSuccess(t, x.Get().(bool))
}
