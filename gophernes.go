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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gophernes/audio/null"
	"github.com/jetsetilly/gophernes/audio/portaudio"
	"github.com/jetsetilly/gophernes/audio/queue"
	"github.com/jetsetilly/gophernes/audio/sdlaudio"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/emulation/events"
	"github.com/jetsetilly/gophernes/emulation/runtime"
	"github.com/jetsetilly/gophernes/emulation/worker"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/hostterm"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/statedump"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
	"github.com/jetsetilly/gophernes/waveform"
	"github.com/jetsetilly/gophernes/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "WAV", "DIGEST", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "WAV":
		err = wav(md)
	case "DIGEST":
		err = audioDigest(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// the emulation and the things attached to it
type session struct {
	env      *environment.Environment
	incoming chan events.Event
	queue    *queue.Queue
	runtime  *runtime.State
	worker   *worker.Worker
}

// notices from the emulation are printed to the terminal
type notifier struct {
	output io.Writer
}

func (n notifier) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifySramPresent:
		fmt.Fprintln(n.output, "! cartridge has battery RAM")
	case notifications.NotifySramSaved:
		fmt.Fprintln(n.output, "! battery RAM saved")
	case notifications.NotifyCartridgeRejected:
		fmt.Fprintln(n.output, "! cartridge rejected")
	case notifications.NotifyClosing:
		fmt.Fprintln(n.output, "! closing")
	}
	return nil
}

// flags common to every mode
type commonFlags struct {
	prefs      *string
	sampleRate *int
	sramDir    *string
	log        *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefs:      md.AddString("prefs", "", "preferences for this session. for example \"apu.sampleRate::22050\""),
		sampleRate: md.AddInt("samplerate", 0, "audio sample rate (0 to use the preferred value)"),
		sramDir:    md.AddString("sram", "", "directory for battery RAM files (empty for the cartridge's directory)"),
		log:        md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// create the emulation and load the cartridge named by the first remaining
// argument. the oneOff preferences are of the form "key::value" and apply to
// this session only, like the values in the prefs flag
func newSession(md *modalflag.Modes, flgs commonFlags, oneOff ...string) (*session, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *flgs.sampleRate > 0 {
		oneOff = append(oneOff, fmt.Sprintf("apu.sampleRate::%d", *flgs.sampleRate))
	}

	// values from flags take priority over the prefs flag
	cl := append([]string{*flgs.prefs}, oneOff...)
	prefs.PushCommandLineStack(strings.Join(cl, "; "))

	env, err := environment.NewEnvironment(environment.MainEmulation, notifier{output: os.Stdout}, nil)
	if err != nil {
		return nil, err
	}

	s := &session{
		env:      env,
		incoming: make(chan events.Event, 16),
		queue:    queue.NewQueue(),
		runtime:  runtime.NewState(env),
	}
	s.worker = worker.NewWorker(env, s.runtime, s.queue, s.incoming)

	s.worker.AddHandler(waveform.NewHandler(env, s.runtime.NES.Channels, func() string {
		return s.runtime.NES.Cart.Name
	}))
	s.worker.AddHandler(statedump.NewHandler(env, s.runtime.NES))

	cartFile := md.GetArg(0)
	sramDir := *flgs.sramDir
	if sramDir == "" {
		sramDir = filepath.Dir(cartFile)
	}
	s.worker.SetSRAMDirectory(sramDir)

	if err := s.loadCartridge(cartFile, sramDir); err != nil {
		return nil, err
	}

	return s, nil
}

func cartridgeName(filename string) string {
	b := filepath.Base(filename)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

func (s *session) loadCartridge(filename string, sramDir string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	name := cartridgeName(filename)

	// battery RAM from a previous session is optional
	sram, err := os.ReadFile(filepath.Join(sramDir, name+".sav"))
	if err != nil {
		sram = nil
	}

	s.worker.Dispatch(events.LoadCartridge{Name: name, Data: data, SRAM: sram})
	if s.runtime.NES.Cart.IsEjected() {
		return curated.Errorf("cartridge: %s not loaded", filename)
	}

	return nil
}

// save battery RAM if the cartridge has any
func (s *session) end() {
	if s.runtime.NES.Cart.HasSRAM() {
		s.worker.Dispatch(events.RequestSramSave{})
	}
}

// open the audio sink named by the audio.backend preference
func openSink(env *environment.Environment, q *queue.Queue) (io.Closer, error) {
	switch env.Prefs.Audio.Backend.String() {
	case preferences.BackendPortAudio:
		return portaudio.NewSink(env, q)
	case preferences.BackendSDL:
		return sdlaudio.NewSink(env, q)
	case preferences.BackendNone:
		return null.NewSink(env, q), nil
	}
	return nil, fmt.Errorf("%s backend is not a real-time audio sink", env.Prefs.Audio.Backend.String())
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	backend := md.AddString("audio", "", "audio backend: portaudio, sdl, none (empty to use the preferred value)")
	lowWaterMark := md.AddInt("lowwater", 0, "number of buffered audio samples (0 to use the preferred value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var oneOff []string
	if *backend != "" {
		oneOff = append(oneOff, fmt.Sprintf("audio.backend::%s", *backend))
	}
	if *lowWaterMark > 0 {
		oneOff = append(oneOff, fmt.Sprintf("audio.lowWaterMark::%d", *lowWaterMark))
	}

	s, err := newSession(md, flgs, oneOff...)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout)
			defer stop()
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	sink, err := openSink(s.env, s.queue)
	if err != nil {
		return err
	}
	defer sink.Close()

	trm, err := hostterm.Open()
	if err != nil {
		logger.Log(s.env, "gophernes", err)
	} else {
		defer trm.Close()
		trm.Start(s.incoming)
		fmt.Println("! q to quit. s to save battery RAM. w to capture waveforms. d to dump state. 1-9 to toggle channels")
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		s.incoming <- events.CloseApplication{}
	}()

	s.worker.Run()
	s.end()

	// settings changed during the session are kept. values from the command
	// line are not saved
	return s.env.Prefs.Save()
}

func wav(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	output := md.AddString("o", "", "output filename (empty for a unique filename)")
	frames := md.AddInt("frames", 600, "number of frames to record")
	mute := md.AddString("mute", "", "comma separated list of channel indexes to mute")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, flgs)
	if err != nil {
		return err
	}

	for _, m := range strings.Split(*mute, ",") {
		if m = strings.TrimSpace(m); m == "" {
			continue
		}
		var idx int
		if _, err := fmt.Sscanf(m, "%d", &idx); err != nil {
			return fmt.Errorf("bad channel index (%s)", m)
		}
		s.worker.Dispatch(events.MuteChannel{Index: idx})
	}

	fn := *output
	if fn == "" {
		fn = paths.UniqueFilename("audio", s.runtime.NES.Cart.Name) + ".wav"
	}

	aw, err := wavwriter.New(s.env, fn)
	if err != nil {
		return err
	}

	for s.worker.Frames() < *frames {
		s.worker.StepEmulator()
		aw.Collect(s.queue)
	}

	if err := aw.Close(); err != nil {
		return err
	}
	fmt.Printf("! %d samples written to %s\n", aw.Len(), fn)
	s.end()

	return nil
}

func audioDigest(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	frames := md.AddInt("frames", 600, "number of frames to run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, flgs)
	if err != nil {
		return err
	}

	dig := digest.NewAudio()
	for s.worker.Frames() < *frames {
		s.worker.StepEmulator()
		dig.Collect(s.queue)
	}
	fmt.Println(dig.Hash())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles to the current directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	s, err := newSession(md, flgs)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, *profile, ".", s.worker, s.queue, d)
}
