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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/joyser/config"
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
[controls]
multitap = true
turboperiod = 3

[ports]
port1 = "joypad 2"
port2 = "multitap 1 3 - 4"

[bindings]
"key:x" = "Joypad1 A"
"pad1:leftx" = "Joypad1 Axis Left/Right T=50%"
"mouse:pointer" = "Pointer Mouse1"
"key:m" = "Multi#0"

[poll]
"pad1:leftx" = true

[multi]
0 = ["Joypad1 Down", "Joypad1 Down+Right", "Joypad1 Right, Joypad1 Y"]
`

func id(t *testing.T, s string) mapping.ID {
	t.Helper()
	v, err := userinput.ParseID(s)
	require.NoError(t, err)
	return v
}

func TestReadTOML(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(tomlConfig), "toml")
	require.NoError(t, err)

	require.Len(t, cfg.Prefs, 2)
	require.Equal(t, true, cfg.Prefs["controls.multitap"])

	require.Equal(t, plugging.NewAssignment(plugging.Joypad, 1), cfg.Ports[plugging.Port1])
	require.Equal(t, plugging.NewAssignment(plugging.Multitap, 0, 2, plugging.Unused, 3), cfg.Ports[plugging.Port2])

	require.Len(t, cfg.Bindings, 4)
	for i := 1; i < len(cfg.Bindings); i++ {
		require.Less(t, cfg.Bindings[i-1].ID, cfg.Bindings[i].ID)
	}

	var polled int
	for _, b := range cfg.Bindings {
		if b.Poll {
			polled++
			require.Equal(t, "pad1:leftx", userinput.IDName(b.ID))
		}
	}
	require.Equal(t, 1, polled)

	seq, ok := cfg.Multis[0]
	require.True(t, ok)
	require.Len(t, seq, 3)
	require.Len(t, seq[2], 2)
	require.Equal(t, "Joypad1 Y", command.Name(seq[2][1]))
}

func TestReadYAML(t *testing.T) {
	const yamlConfig = `
controls:
  turboperiod: 5
defaults:
  keyboard: true
  gamepads: 2
bindings:
  "key:z": "Joypad2 B"
`
	cfg, err := config.Read(strings.NewReader(yamlConfig), "yaml")
	require.NoError(t, err)
	require.True(t, cfg.DefaultKeyboard)
	require.Equal(t, 2, cfg.DefaultGamepads)
	require.Len(t, cfg.Bindings, 1)
	require.Equal(t, "key:z = Joypad2 B", cfg.Bindings[0].String())
	require.Empty(t, cfg.Ports)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joyser.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Bindings, 4)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.True(t, curated.Is(err, config.ReadFailed))
}

func TestApply(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(tomlConfig), "toml")
	require.NoError(t, err)

	c, err := controls.NewControls(nil, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Apply(c))

	require.Equal(t, plugging.NewAssignment(plugging.Joypad, 1), c.GetAssignment(plugging.Port1))
	require.Equal(t, plugging.Multitap, c.GetAssignment(plugging.Port2).Controller)
	require.Equal(t, "3", c.Prefs().TurboPeriod.String())

	require.Equal(t, "Joypad1 A", command.Name(c.GetMapping(id(t, "key:x"))))
	require.Equal(t, "Multi#0", command.Name(c.GetMapping(id(t, "key:m"))))

	seq, ok := c.Registry().Multi(0)
	require.True(t, ok)
	require.Len(t, seq, 3)
}

func TestApplyDefaults(t *testing.T) {
	const override = `
defaults:
  keyboard: true
  gamepads: 1
bindings:
  "key:x": "Joypad2 X"
`
	cfg, err := config.Read(strings.NewReader(override), "yaml")
	require.NoError(t, err)

	c, err := controls.NewControls(nil, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Apply(c))

	// the bindings section replaces the default binding
	require.Equal(t, "Joypad2 X", command.Name(c.GetMapping(id(t, "key:x"))))
	require.Equal(t, "Joypad1 B", command.Name(c.GetMapping(id(t, "key:z"))))
	require.Equal(t, "Joypad1 Start", command.Name(c.GetMapping(id(t, "pad1:start"))))
}

func TestApplyUnbind(t *testing.T) {
	const blank = `
defaults:
  keyboard: true
bindings:
  "key:z": "None"
`
	cfg, err := config.Read(strings.NewReader(blank), "yaml")
	require.NoError(t, err)

	c, err := controls.NewControls(nil, nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Apply(c))

	require.Equal(t, command.None{}, c.GetMapping(id(t, "key:z")))
	_, ok := c.Registry().Binding(id(t, "key:z"))
	require.False(t, ok)
	require.Equal(t, "Joypad1 A", command.Name(c.GetMapping(id(t, "key:x"))))
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		config  string
		pattern string
	}{
		{"syntax", "[controls", config.ReadFailed},
		{"pref type", "[controls]\nmultitap = 10", config.BadPref},
		{"pref range", "[controls]\nturboperiod = 1000", config.BadPref},
		{"gamepads", "[defaults]\ngamepads = 100", config.BadPref},
		{"port", "[ports]\nport1 = \"keyboard\"", config.BadPort},
		{"input", "[bindings]\n\"key:nosuchkey\" = \"Joypad1 A\"", config.BadBinding},
		{"command", "[bindings]\n\"key:x\" = \"Joypad1 Nothing\"", config.BadBinding},
		{"missing multi", "[bindings]\n\"key:x\" = \"Multi#3\"", config.BadBinding},
		{"unbound poll", "[poll]\n\"key:x\" = true", config.BadBinding},
		{"multi index", "[multi]\nx = [\"Joypad1 A\"]", config.BadMulti},
		{"multi step", "[multi]\n0 = [\"Joypad1 Axis Left/Right T=50%\"]", config.BadMulti},
		{"nested multi", "[multi]\n0 = [\"Multi#0\"]", config.BadMulti},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(tc.config), "toml")
			require.Error(t, err)
			require.True(t, curated.Is(err, tc.pattern), err.Error())
		})
	}
}
