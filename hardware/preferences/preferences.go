// This file is part of Joyser.
//
// Joyser is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joyser is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joyser.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/prefs"
)

// Sentinal error patterns.
const (
	TurboPeriodRange = "preferences: turbo period must be between %d and %d frames"
)

// Limits of the TurboPeriod preference.
const (
	MinTurboPeriod = 1
	MaxTurboPeriod = 15
)

// Preferences defines and collates the preference values used by the
// controls.
type Preferences struct {
	coll *prefs.Collection

	// the master switches decide whether a controller type can be plugged
	// into a port. a port assigned a disabled controller type is emptied by
	// VerifyControllers()
	MouseMaster      prefs.Bool
	SuperscopeMaster prefs.Bool
	JustifierMaster  prefs.Bool
	MultitapMaster   prefs.Bool
	MacsRifleMaster  prefs.Bool

	// allow opposing directions on a joypad to be pressed at the same time.
	// most games were never tested with this and some behave badly
	UpAndDown prefs.Bool

	// the number of frames in each half of the turbo cycle
	TurboPeriod prefs.Int
}

func (p *Preferences) String() string {
	return p.coll.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		coll: prefs.NewCollection(),
	}

	p.TurboPeriod.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < MinTurboPeriod || n > MaxTurboPeriod {
			return curated.Errorf(TurboPeriodRange, MinTurboPeriod, MaxTurboPeriod)
		}
		return nil
	})

	p.SetDefaults()

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"controls.mouse", &p.MouseMaster},
		{"controls.superscope", &p.SuperscopeMaster},
		{"controls.justifier", &p.JustifierMaster},
		{"controls.multitap", &p.MultitapMaster},
		{"controls.macsrifle", &p.MacsRifleMaster},
		{"controls.upanddown", &p.UpAndDown},
		{"controls.turboperiod", &p.TurboPeriod},
	} {
		if err := p.coll.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.MouseMaster.Set(true)
	p.SuperscopeMaster.Set(true)
	p.JustifierMaster.Set(true)
	p.MultitapMaster.Set(true)
	p.MacsRifleMaster.Set(true)
	p.UpAndDown.Set(false)
	p.TurboPeriod.Set(MinTurboPeriod)
}

// Set the preference with the key. Keys are as listed by Keys().
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.coll.Set(key, v)
}

// Keys returns the keys of every preference in alphabetical order.
func (p *Preferences) Keys() []string {
	return p.coll.Keys()
}
