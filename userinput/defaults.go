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

package userinput

import (
	"fmt"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
)

// Sentinal error patterns.
const (
	BindFailed = "userinput: cannot bind %s to %s"
)

type binding struct {
	id   string
	name string
}

// keyboard layout for the first joypad
var keyboardBindings = []binding{
	{"key:up", "Joypad1 Up"},
	{"key:down", "Joypad1 Down"},
	{"key:left", "Joypad1 Left"},
	{"key:right", "Joypad1 Right"},
	{"key:z", "Joypad1 B"},
	{"key:x", "Joypad1 A"},
	{"key:a", "Joypad1 Y"},
	{"key:s", "Joypad1 X"},
	{"key:q", "Joypad1 L"},
	{"key:w", "Joypad1 R"},
	{"key:enter", "Joypad1 Start"},
	{"key:space", "Joypad1 Select"},
	{"key:c", "Joypad1 Turbo A"},
	{"key:v", "Joypad1 Turbo B"},
	{"key:p", "Pause"},
	{"key:escape", "ExitEmu"},
	{"key:tab", "SwapJoypads"},
	{"key:+", "IncTurboSpeed"},
	{"key:-", "DecTurboSpeed"},
}

// gamepad layout. the SNES face buttons are named for their position so the
// SDL names for the same positions are used
var gamepadButtonBindings = []struct {
	button GamepadButton
	name   string
}{
	{GamepadButtonDPadUp, "Up"},
	{GamepadButtonDPadDown, "Down"},
	{GamepadButtonDPadLeft, "Left"},
	{GamepadButtonDPadRight, "Right"},
	{GamepadButtonA, "B"},
	{GamepadButtonB, "A"},
	{GamepadButtonX, "Y"},
	{GamepadButtonY, "X"},
	{GamepadButtonLeftShoulder, "L"},
	{GamepadButtonRightShoulder, "R"},
	{GamepadButtonStart, "Start"},
	{GamepadButtonBack, "Select"},
}

// BindCommand binds the identifier to the command with the mapping function
// suitable for the category of the command.
func BindCommand(m Mapper, id mapping.ID, cmd command.Command, poll bool) error {
	var ok bool
	switch cmd.Category() {
	case command.NoCategory:
		// the registry unmaps the identifier
		ok = m.MapButton(id, cmd, poll)
	case command.ButtonCategory:
		ok = m.MapButton(id, cmd, poll)
	case command.AxisCategory:
		ok = m.MapAxis(id, cmd, poll)
	case command.PointerCategory:
		ok = m.MapPointer(id, cmd, poll)
	}
	if !ok {
		return curated.Errorf(BindFailed, IDName(id), cmd)
	}
	return nil
}

// Bind parses the identifier and command names and binds them with
// BindCommand().
func Bind(m Mapper, id string, name string, poll bool) error {
	i, err := ParseID(id)
	if err != nil {
		return err
	}
	cmd, err := command.Parse(name)
	if err != nil {
		return err
	}
	return BindCommand(m, i, cmd, poll)
}

// DefaultKeyboard binds the default keyboard layout. The keyboard controls
// the first joypad.
func DefaultKeyboard(m Mapper) error {
	for _, b := range keyboardBindings {
		if err := Bind(m, b.id, b.name, false); err != nil {
			return err
		}
	}
	return nil
}

// DefaultGamepad binds the default layout for a game controller to a
// joypad. The left thumbstick is bound as a second direction pad.
func DefaultGamepad(m Mapper, pad int, joypad int, poll bool) error {
	for _, b := range gamepadButtonBindings {
		cmd, err := command.Parse(fmt.Sprintf("Joypad%d %s", joypad+1, b.name))
		if err != nil {
			return err
		}
		if err := BindCommand(m, GamepadButtonID(pad, b.button), cmd, poll); err != nil {
			return err
		}
	}

	axes := []struct {
		axis GamepadAxis
		name string
	}{
		{GamepadAxisLeftX, "Left/Right"},
		{GamepadAxisLeftY, "Up/Down"},
	}

	for _, a := range axes {
		cmd, err := command.Parse(fmt.Sprintf("Joypad%d Axis %s T=50%%", joypad+1, a.name))
		if err != nil {
			return err
		}
		if err := BindCommand(m, GamepadAxisID(pad, a.axis), cmd, poll); err != nil {
			return err
		}
	}

	return nil
}
