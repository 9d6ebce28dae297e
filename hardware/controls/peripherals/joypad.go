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

package peripherals

import (
	"fmt"

	"github.com/jetsetilly/joyser/hardware/controls/command"
)

const (
	leftRight = command.ButtonLeft | command.ButtonRight
	upDown    = command.ButtonUp | command.ButtonDown
)

// Joypad is the state of one logical joypad.
type Joypad struct {
	// buttons currently pressed
	Buttons uint16

	// buttons currently pressed that autofire
	Turbos uint16

	// buttons that have been toggled into turbo or sticky mode. a button
	// pressed by a command that doesn't itself ask for turbo or sticky
	// behaves as if it did when its toggle is set
	ToggleTurbo  uint16
	ToggleSticky uint16
}

func (jp *Joypad) String() string {
	return fmt.Sprintf("joypad: buttons=%04x turbos=%04x", jp.Buttons, jp.Turbos)
}

// Reset the joypad to the unpressed state. Toggles are also cleared.
func (jp *Joypad) Reset() {
	*jp = Joypad{}
}

// Apply a joypad button command. Opposing directions are not allowed to be
// pressed at the same time unless upAndDown is true.
func (jp *Joypad) Apply(cmd command.Joypad, pressed bool, upAndDown bool) {
	if cmd.Toggle {
		if !pressed {
			return
		}
		if cmd.Turbo {
			jp.ToggleTurbo ^= cmd.Buttons
		}
		if cmd.Sticky {
			jp.ToggleSticky ^= cmd.Buttons
		}
		return
	}

	// partition the buttons by their toggle state. r is for plain buttons, t
	// for turbo buttons, s for sticky buttons and st for buttons that are
	// both sticky and turbo
	r := cmd.Buttons
	st := r & jp.ToggleSticky & jp.ToggleTurbo
	r ^= st
	t := r & jp.ToggleTurbo
	r ^= t
	s := r & jp.ToggleSticky
	r ^= s

	// a turbo or sticky command shifts each group along by one
	switch {
	case cmd.Turbo && cmd.Sticky:
		r, st = st, r
		s, t = t, s
	case cmd.Turbo:
		r, t = t, r
		s, st = st, s
	case cmd.Sticky:
		r, s = s, r
		t, st = st, t
	}

	if pressed {
		if !upAndDown {
			if cmd.Buttons&leftRight != 0 {
				jp.Buttons &^= leftRight
			}
			if cmd.Buttons&upDown != 0 {
				jp.Buttons &^= upDown
			}
		}
		jp.Buttons |= r
		jp.Turbos |= t
		jp.Buttons ^= s
		jp.Buttons &^= st
		jp.Turbos ^= st
	} else {
		jp.Buttons &^= r
		jp.Buttons &^= t
		jp.Turbos &^= t
	}
}

// ApplyAxis applies a joypad axis command. A deflection beyond the threshold
// presses the button for that direction. Otherwise the button is released.
func (jp *Joypad) ApplyAxis(cmd command.JoypadAxis, value int16) {
	neg, pos := cmd.Axis.Buttons()

	v := int32(value)
	if cmd.Invert {
		v = -v
	}

	d := command.Deflection(cmd.Threshold)

	var p, r uint16
	if v > d {
		p |= pos
	} else {
		r |= pos
	}
	if v < -d {
		p |= neg
	} else {
		r |= neg
	}

	jp.Buttons |= p
	jp.Buttons &^= r
	jp.Turbos &^= p | r
}

// Effective returns the buttons as seen by the console. The turbo phase
// decides whether turbo buttons are currently down.
func (jp *Joypad) Effective(phase bool) uint16 {
	if phase {
		return jp.Buttons | jp.Turbos
	}
	return jp.Buttons
}
