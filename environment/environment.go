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

// Package environment carries the context of an emulation instance. The
// Environment type is passed to the parts of the emulation that need access
// to the preferences or the notification channel to the host.
//
// The Environment type also implements the logger.Permission interface. Only
// the main emulation is permitted to create log entries.
package environment

import (
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/notifications"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly
// useful when running more than one emulation instance at once, for example
// when rendering audio to a file alongside the live emulation.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications to the host application
	Notifications notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The notify and prefs arguments may be nil. A nil prefs argument results in
// the preferences being loaded from the default prefs file.
func NewEnvironment(label Label, notify notifications.Notify, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:         label,
		Notifications: notify,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
		if err := prefs.Load(); err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	if env.Notifications == nil {
		env.Notifications = ignore{}
	}

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}

// the notification receiver used when none is supplied
type ignore struct{}

func (ignore) Notify(_ notifications.Notice) error {
	return nil
}
