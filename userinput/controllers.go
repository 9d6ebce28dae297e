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

// Controllers keeps track of the outcome of the most recent event.
type Controllers struct {
	// whether or not the last HandleUserInput() was for a key that is bound
	// to a command
	LastKeyHandled bool

	// is true if last event was for an input bound to a command
	HandledByController bool

	// is true if last event was a quit emulation event
	Quit bool
}

func isBound(r Reporter, id mapping.ID) bool {
	_, none := r.GetMapping(id).(command.None)
	return !none
}

func (c *Controllers) keyboard(ev EventKeyboard, r Reporter) {
	// key repeat is a feature of the host and not of the controller
	if ev.Repeat {
		c.LastKeyHandled = false
		return
	}

	id, ok := KeyID(ev.Key)
	if !ok {
		c.LastKeyHandled = false
		return
	}

	c.LastKeyHandled = isBound(r, id)
	c.HandledByController = c.LastKeyHandled

	r.ReportButton(id, ev.Down)
}

func (c *Controllers) mouseButton(ev EventMouseButton, r Reporter) {
	id := MouseButtonID(ev.Button)
	c.HandledByController = isBound(r, id)
	r.ReportButton(id, ev.Down)
}

func (c *Controllers) mouseMotion(ev EventMouseMotion, r Reporter) {
	c.HandledByController = isBound(r, MousePointerID)
	r.ReportPointer(MousePointerID, ev.X, ev.Y)
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, r Reporter) {
	if ev.Pad < 0 || ev.Pad >= MaxGamepads || ev.Button < 0 || ev.Button >= NumGamepadButtons {
		return
	}
	id := GamepadButtonID(ev.Pad, ev.Button)
	c.HandledByController = isBound(r, id)
	r.ReportButton(id, ev.Down)
}

func (c *Controllers) gamepadAxis(ev EventGamepadAxis, r Reporter) {
	if ev.Pad < 0 || ev.Pad >= MaxGamepads || ev.Axis < 0 || ev.Axis >= NumGamepadAxes {
		return
	}
	id := GamepadAxisID(ev.Pad, ev.Axis)
	c.HandledByController = isBound(r, id)
	r.ReportAxis(id, ev.Amount)
}

// HandleUserInput reports the Event to the controls on the identifier for
// the input. Events for inputs that have no identifier are ignored.
func (c *Controllers) HandleUserInput(ev Event, r Reporter) {
	c.Quit = false
	c.HandledByController = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, r)
	case EventMouseButton:
		c.mouseButton(ev, r)
	case EventMouseMotion:
		c.mouseMotion(ev, r)
	case EventGamepadButton:
		c.gamepadButton(ev, r)
	case EventGamepadAxis:
		c.gamepadAxis(ev, r)
	default:
	}
}
