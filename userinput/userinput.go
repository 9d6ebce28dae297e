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
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
)

// Reporter is the part of the controls that userinput reports to.
// Implemented by controls.Controls.
type Reporter interface {
	ReportButton(id mapping.ID, pressed bool)
	ReportAxis(id mapping.ID, value int16)
	ReportPointer(id mapping.ID, x int16, y int16)
	GetMapping(id mapping.ID) command.Command
}

// Mapper is the part of the controls used to create bindings. Implemented by
// controls.Controls.
type Mapper interface {
	MapButton(id mapping.ID, cmd command.Command, poll bool) bool
	MapAxis(id mapping.ID, cmd command.Command, poll bool) bool
	MapPointer(id mapping.ID, cmd command.Command, poll bool) bool
}

// Event represents all the different type of events that can occur in the
// host.
type Event interface{}

// EventQuit is sent when the user wants to stop the emulation.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. The key is named
// as described by KeyID().
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. The coordinates are in
// console screen pixels.
type EventMouseMotion struct {
	X, Y int16
}

// GamepadButton identifies a button on a game controller. The order is the
// same as SDL's game controller buttons.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	NumGamepadButtons
)

// GamepadAxis identifies an axis on a game controller. The order is the
// same as SDL's game controller axes.
type GamepadAxis int

// List of valid GamepadAxis values.
const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	NumGamepadAxes
)

// EventGamepadButton is sent when a game controller button is pressed or
// released. Pad is the zero based index of the controller.
type EventGamepadButton struct {
	Pad    int
	Button GamepadButton
	Down   bool
}

// EventGamepadAxis is sent when a game controller axis moves.
type EventGamepadAxis struct {
	Pad    int
	Axis   GamepadAxis
	Amount int16
}

// StickDeadzone is the axis deflection below which a thumbstick is
// considered centred.
const StickDeadzone = 10000
