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

// Justifier report bits. The second gun uses the bit to the right of the
// first gun.
const (
	JustifierTrigger uint8 = 0x80
	JustifierStart   uint8 = 0x20
)

// Justifier is the state of the Justifier light guns. One or two guns can be
// connected.
type Justifier struct {
	X, Y      [2]int16
	Buttons   uint8
	Offscreen [2]bool

	// the gun that the console is currently reading the position of. with
	// two guns this alternates every frame
	Select uint8
}

func (j *Justifier) String() string {
	return fmt.Sprintf("justifier: pos=%d,%d/%d,%d buttons=%02x select=%d", j.X[0], j.Y[0], j.X[1], j.Y[1], j.Buttons, j.Select)
}

// Reset the Justifier.
func (j *Justifier) Reset() {
	j.Buttons = 0
	j.Offscreen = [2]bool{}
	j.Select = 0
}

// Apply a Justifier button command.
func (j *Justifier) Apply(cmd command.Justifier, pressed bool) {
	i := cmd.Index & 0x01

	var b uint8
	if cmd.Trigger {
		b |= JustifierTrigger >> i
	}
	if cmd.Start {
		b |= JustifierStart >> i
	}

	if pressed {
		j.Buttons |= b
	} else {
		j.Buttons &^= b
	}

	if cmd.AimOffscreen {
		j.Offscreen[i] = pressed
	}
}

// Aim sets the position gun is pointed at.
func (j *Justifier) Aim(gun int, x, y int16) {
	j.X[gun&0x01] = x
	j.Y[gun&0x01] = y
}

// IsOffscreen returns true if the gun is pointed away from the screen.
func (j *Justifier) IsOffscreen(gun int) bool {
	gun &= 0x01
	return j.Offscreen[gun] || offscreen(j.X[gun], j.Y[gun])
}

// EndFrame alternates the selected gun when two guns are connected.
func (j *Justifier) EndFrame(twoGuns bool) {
	if twoGuns {
		j.Select ^= 0x01
	} else {
		j.Select = 0
	}
}

// Latch captures the 32 bit report. The third byte identifies the selected
// gun.
func (j *Justifier) Latch() uint32 {
	id := uint32(0x55)
	if j.Select == 1 {
		id = 0xaa
	}
	return 0x0e<<16 | id<<8 | uint32(j.Buttons&0xf0)
}
