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

package config

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/hardware/preferences"
	"github.com/jetsetilly/joyser/logger"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Sentinal error patterns.
const (
	ReadFailed  = "config: %v"
	BadPref     = "config: preference %s: %v"
	BadPort     = "config: %s assignment: %v"
	BadBinding  = "config: binding %s: %v"
	BadMulti    = "config: multi %s: %v"
	ApplyFailed = "config: cannot apply %s: %v"
)

// Binding is an entry in the bindings section.
type Binding struct {
	ID      mapping.ID
	Command command.Command
	Poll    bool
}

func (b Binding) String() string {
	s := strings.Builder{}
	s.WriteString(userinput.IDName(b.ID))
	s.WriteString(" = ")
	s.WriteString(command.Name(b.Command))
	if b.Poll {
		s.WriteString(" (poll)")
	}
	return s.String()
}

// Config is the content of a configuration file.
type Config struct {
	// preference values keyed by preference key
	Prefs map[string]any

	// assignments for the ports that are set
	Ports map[plugging.PortID]plugging.Assignment

	// default layouts
	DefaultKeyboard bool
	DefaultGamepads int

	// in order of input identifier
	Bindings []Binding

	// multi-press sequences keyed by index
	Multis map[int32][][]command.Command
}

// Load reads the configuration file. The format is decided by the file
// extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	return parse(v)
}

// Read reads the configuration from an io.Reader. The format is one of the
// formats supported by viper, such as "toml", "yaml" or "json".
func Read(r io.Reader, format string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	return parse(v)
}

func parse(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Prefs:  make(map[string]any),
		Ports:  make(map[plugging.PortID]plugging.Assignment),
		Multis: make(map[int32][][]command.Command),
	}

	// preference values are checked against a scratch set of preferences so
	// that a bad value is reported when the file is loaded
	scratch, err := preferences.NewPreferences()
	if err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	for _, k := range scratch.Keys() {
		if !v.IsSet(k) {
			continue
		}
		val := v.Get(k)
		if err := scratch.Set(k, val); err != nil {
			return nil, curated.Errorf(BadPref, k, err)
		}
		cfg.Prefs[k] = val
	}

	for _, p := range []plugging.PortID{plugging.Port1, plugging.Port2} {
		key := "ports." + p.String()
		if !v.IsSet(key) {
			continue
		}
		a, err := plugging.ParseAssignment(v.GetString(key))
		if err != nil {
			return nil, curated.Errorf(BadPort, p, err)
		}
		cfg.Ports[p] = a
	}

	cfg.DefaultKeyboard = v.GetBool("defaults.keyboard")
	cfg.DefaultGamepads = v.GetInt("defaults.gamepads")
	if cfg.DefaultGamepads < 0 || cfg.DefaultGamepads > userinput.MaxGamepads {
		return nil, curated.Errorf(BadPref, "defaults.gamepads", cfg.DefaultGamepads)
	}

	if err := parseMultis(v, cfg); err != nil {
		return nil, err
	}

	if err := parseBindings(v, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseMultis(v *viper.Viper, cfg *Config) error {
	for k, val := range v.GetStringMap("multi") {
		idx, err := strconv.ParseInt(k, 10, 32)
		if err != nil || idx < 0 {
			return curated.Errorf(BadMulti, k, "index must be a number")
		}

		steps, err := cast.ToStringSliceE(val)
		if err != nil {
			return curated.Errorf(BadMulti, k, err)
		}
		if len(steps) == 0 {
			return curated.Errorf(BadMulti, k, "no steps")
		}

		seq := make([][]command.Command, 0, len(steps))
		for _, s := range steps {
			var step []command.Command
			for _, name := range strings.Split(s, ",") {
				cmd, err := command.Parse(strings.TrimSpace(name))
				if err != nil {
					return curated.Errorf(BadMulti, k, err)
				}
				if cmd.Category() != command.ButtonCategory {
					return curated.Errorf(BadMulti, k, "not a button command: "+name)
				}
				if _, ok := cmd.(command.Multi); ok {
					return curated.Errorf(BadMulti, k, "sequences can't be nested")
				}
				step = append(step, cmd)
			}
			seq = append(seq, step)
		}

		cfg.Multis[int32(idx)] = seq
	}

	return nil
}

func parseBindings(v *viper.Viper, cfg *Config) error {
	poll := make(map[mapping.ID]bool)
	for k, val := range v.GetStringMap("poll") {
		id, err := userinput.ParseID(k)
		if err != nil {
			return curated.Errorf(BadBinding, k, err)
		}
		b, err := cast.ToBoolE(val)
		if err != nil {
			return curated.Errorf(BadBinding, k, err)
		}
		poll[id] = b
	}

	for k, name := range v.GetStringMapString("bindings") {
		id, err := userinput.ParseID(k)
		if err != nil {
			return curated.Errorf(BadBinding, k, err)
		}
		cmd, err := command.Parse(name)
		if err != nil {
			return curated.Errorf(BadBinding, k, err)
		}
		if m, ok := cmd.(command.Multi); ok {
			if _, ok := cfg.Multis[m.Index]; !ok {
				return curated.Errorf(BadBinding, k, "no such multi-press sequence")
			}
		}

		p, ok := poll[id]
		delete(poll, id)
		cfg.Bindings = append(cfg.Bindings, Binding{ID: id, Command: cmd, Poll: ok && p})
	}

	if len(poll) > 0 {
		unbound := make([]mapping.ID, 0, len(poll))
		for id := range poll {
			unbound = append(unbound, id)
		}
		sort.Slice(unbound, func(i, j int) bool { return unbound[i] < unbound[j] })
		return curated.Errorf(BadBinding, userinput.IDName(unbound[0]), "poll set for an input with no binding")
	}

	sort.Slice(cfg.Bindings, func(i, j int) bool {
		return cfg.Bindings[i].ID < cfg.Bindings[j].ID
	})

	return nil
}

// Apply the configuration to the controls. Controller assignments are
// verified after they have been set. Bindings are added to any that already
// exist.
func (cfg *Config) Apply(c *controls.Controls) error {
	keys := make([]string, 0, len(cfg.Prefs))
	for k := range cfg.Prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := c.Prefs().Set(k, cfg.Prefs[k]); err != nil {
			return curated.Errorf(ApplyFailed, k, err)
		}
	}

	for p, a := range cfg.Ports {
		c.SetAssignment(p, a)
	}
	if c.VerifyControllers() {
		logger.Log(logger.Allow, "config", "controller assignments were changed during verification")
	}

	if cfg.DefaultKeyboard {
		if err := userinput.DefaultKeyboard(c); err != nil {
			return curated.Errorf(ApplyFailed, "default keyboard", err)
		}
	}
	for i := 0; i < cfg.DefaultGamepads; i++ {
		if err := userinput.DefaultGamepad(c, i, i, true); err != nil {
			return curated.Errorf(ApplyFailed, "default gamepad", err)
		}
	}

	for idx, seq := range cfg.Multis {
		if !c.Registry().SetMulti(idx, seq) {
			return curated.Errorf(ApplyFailed, command.Name(command.Multi{Index: idx}), "invalid sequence")
		}
	}

	for _, b := range cfg.Bindings {
		if err := userinput.BindCommand(c, b.ID, b.Command, b.Poll); err != nil {
			return curated.Errorf(ApplyFailed, userinput.IDName(b.ID), err)
		}
	}

	return nil
}
