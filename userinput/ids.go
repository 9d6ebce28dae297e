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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
)

// Sentinal error patterns.
const (
	UnknownInput = "userinput: unknown input: %s"
)

// identifier layout. printable keys are their ASCII value. the pseudo
// ranges reserved by the mapping package are far above all of these
const (
	keyNamedBase = 0x1000
	gamepadBase  = 0x10000
	mouseBase    = 0x20000

	// control numbers of axes on a gamepad and of the pointer on the mouse
	axisBase    = 0x80
	pointerCtrl = 0x80
)

// MaxGamepads is the number of game controllers that can be given an
// identifier.
const MaxGamepads = 16

// MousePointerID is the identifier of the host mouse position.
const MousePointerID = mapping.ID(mouseBase | pointerCtrl)

var namedKeys = []string{
	"up", "down", "left", "right",
	"enter", "space", "tab", "backspace", "escape",
	"home", "end", "insert", "delete", "pageup", "pagedown",
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
}

var gamepadButtonNames = []string{
	"a", "b", "x", "y", "back", "guide", "start", "leftstick", "rightstick",
	"leftshoulder", "rightshoulder", "dpup", "dpdown", "dpleft", "dpright",
}

var gamepadAxisNames = []string{
	"leftx", "lefty", "rightx", "righty", "lefttrigger", "righttrigger",
}

var mouseButtonNames = []string{"left", "right", "middle"}

// KeyID returns the identifier of a keyboard key. A key is either a single
// printable character or one of the named keys, such as "up" or "enter".
// Letters are not case sensitive.
func KeyID(key string) (mapping.ID, bool) {
	key = strings.ToLower(key)

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if r > ' ' && r <= '~' {
			return mapping.ID(r), true
		}
		if r == ' ' {
			return KeyID("space")
		}
		return mapping.Invalid, false
	}

	for i, n := range namedKeys {
		if n == key {
			return mapping.ID(keyNamedBase + i), true
		}
	}

	return mapping.Invalid, false
}

// GamepadButtonID returns the identifier of a button on a game controller.
func GamepadButtonID(pad int, b GamepadButton) mapping.ID {
	return mapping.ID(gamepadBase | (pad&0x0f)<<8 | int(b)&0x7f)
}

// GamepadAxisID returns the identifier of an axis on a game controller.
func GamepadAxisID(pad int, a GamepadAxis) mapping.ID {
	return mapping.ID(gamepadBase | (pad&0x0f)<<8 | axisBase | int(a)&0x7f)
}

// MouseButtonID returns the identifier of a mouse button.
func MouseButtonID(b MouseButton) mapping.ID {
	return mapping.ID(mouseBase | int(b)&0x7f)
}

// DecodeGamepad returns the game controller and control for an identifier
// made by GamepadButtonID() or GamepadAxisID(). The control is a
// GamepadButton if axis is false and a GamepadAxis otherwise.
func DecodeGamepad(id mapping.ID) (pad int, control int, axis bool, ok bool) {
	if id&^0xfff != gamepadBase {
		return 0, 0, false, false
	}
	pad = int(id>>8) & 0x0f
	control = int(id) & 0x7f
	axis = id&axisBase == axisBase
	if axis {
		return pad, control, true, control < int(NumGamepadAxes)
	}
	return pad, control, false, control < int(NumGamepadButtons)
}

// IDName returns the name of the identifier. Identifiers with no name are
// given as hexadecimal numbers.
func IDName(id mapping.ID) string {
	switch mapping.Classify(id) {
	case mapping.PseudoPointer:
		return fmt.Sprintf("pseudopointer:%d", id-mapping.PseudoPointerBase+1)
	case mapping.PseudoButton:
		return fmt.Sprintf("pseudobutton:%d", id-mapping.PseudoButtonBase)
	}

	switch {
	case id > ' ' && id <= '~':
		return fmt.Sprintf("key:%c", rune(id))

	case id >= keyNamedBase && id < keyNamedBase+mapping.ID(len(namedKeys)):
		return fmt.Sprintf("key:%s", namedKeys[id-keyNamedBase])

	case id&^0xfff == gamepadBase:
		pad, ctrl, axis, ok := DecodeGamepad(id)
		if ok {
			if axis {
				return fmt.Sprintf("pad%d:%s", pad+1, gamepadAxisNames[ctrl])
			}
			return fmt.Sprintf("pad%d:%s", pad+1, gamepadButtonNames[ctrl])
		}

	case id == MousePointerID:
		return "mouse:pointer"

	case id >= mouseBase && id < mouseBase+mapping.ID(len(mouseButtonNames)):
		return fmt.Sprintf("mouse:%s", mouseButtonNames[id-mouseBase])
	}

	return fmt.Sprintf("%#x", uint32(id))
}

// ParseID is the inverse of IDName(). Numbers in decimal or with a 0x prefix
// are also accepted. Names are not case sensitive.
func ParseID(s string) (mapping.ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return mapping.ID(n), nil
	}

	device, control, ok := strings.Cut(s, ":")
	if !ok {
		return mapping.Invalid, curated.Errorf(UnknownInput, s)
	}

	switch {
	case device == "key":
		if id, ok := KeyID(control); ok {
			return id, nil
		}

	case device == "mouse":
		if control == "pointer" {
			return MousePointerID, nil
		}
		for i, n := range mouseButtonNames {
			if n == control {
				return MouseButtonID(MouseButton(i)), nil
			}
		}

	case strings.HasPrefix(device, "pad"):
		pad, err := strconv.Atoi(strings.TrimPrefix(device, "pad"))
		if err != nil || pad < 1 || pad > MaxGamepads {
			break
		}
		for i, n := range gamepadButtonNames {
			if n == control {
				return GamepadButtonID(pad-1, GamepadButton(i)), nil
			}
		}
		for i, n := range gamepadAxisNames {
			if n == control {
				return GamepadAxisID(pad-1, GamepadAxis(i)), nil
			}
		}

	case device == "pseudopointer":
		n, err := strconv.Atoi(control)
		if err == nil && n >= 1 && n <= 8 {
			return mapping.PseudoPointerID(uint8(n - 1)), nil
		}

	case device == "pseudobutton":
		n, err := strconv.Atoi(control)
		if err == nil && n >= 0 && n <= 255 {
			return mapping.PseudoButtonID(uint8(n)), nil
		}
	}

	return mapping.Invalid, curated.Errorf(UnknownInput, s)
}
