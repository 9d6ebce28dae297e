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

// MacsTrigger is the trigger bit of the M.A.C.S. rifle.
const MacsTrigger uint8 = 0x01

// MacsRifle is the state of the M.A.C.S. rifle. The rifle has no shift
// register. The trigger is read directly on every access.
type MacsRifle struct {
	X, Y    int16
	Buttons uint8
}

func (m *MacsRifle) String() string {
	return fmt.Sprintf("macsrifle: pos=%d,%d buttons=%02x", m.X, m.Y, m.Buttons)
}

// Reset the rifle.
func (m *MacsRifle) Reset() {
	m.Buttons = 0
}

// Apply a rifle button command.
func (m *MacsRifle) Apply(cmd command.MacsRifle, pressed bool) {
	if !cmd.Trigger {
		return
	}
	if pressed {
		m.Buttons |= MacsTrigger
	} else {
		m.Buttons &^= MacsTrigger
	}
}

// Aim sets the position the rifle is pointed at.
func (m *MacsRifle) Aim(x, y int16) {
	m.X = x
	m.Y = y
}

// Trigger returns the state of the trigger.
func (m *MacsRifle) Trigger() bool {
	return m.Buttons&MacsTrigger == MacsTrigger
}
