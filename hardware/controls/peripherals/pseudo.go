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

// axis deflection needed before a tiered speed axis moves the pointer
const pseudoDeadzone = 8191

// largest movement in pixels per frame
const pseudoMaxStep = 8

// the initial position of a pseudo-pointer
const (
	pseudoHomeX = 128
	pseudoHomeY = 112
)

// pseudoAxis is the motion of a pseudo-pointer in one direction.
type pseudoAxis struct {
	// direction from buttons. -1, 0 or 1
	Dir   int8
	Speed command.Speed
	Held  int

	// deflection from an axis
	Deflection int16
	AxisSpeed  command.Speed
}

func speedStep(s command.Speed, held int) int {
	switch s {
	case command.Slow:
		return 1
	case command.Medium:
		return 4
	case command.Fast:
		return pseudoMaxStep
	}

	// variable speed accelerates the longer a button is held
	n := 1 + held/4
	if n > pseudoMaxStep {
		n = pseudoMaxStep
	}
	return n
}

func (a *pseudoAxis) step() int {
	var d int

	if a.Dir != 0 {
		d = int(a.Dir) * speedStep(a.Speed, a.Held)
		a.Held++
	}

	if a.Deflection != 0 {
		v := int(a.Deflection)
		if a.AxisSpeed == command.Variable {
			d += v * pseudoMaxStep / 32767
		} else if v > pseudoDeadzone {
			d += speedStep(a.AxisSpeed, 0)
		} else if v < -pseudoDeadzone {
			d -= speedStep(a.AxisSpeed, 0)
		}
	}

	return d
}

// PseudoPointer is a pointer driven by buttons or axes. It reports its
// position on its reserved identifier so that it can be bound to any pointer
// command.
type PseudoPointer struct {
	X, Y int16
	H, V pseudoAxis

	// a pseudo-pointer reports its position only after it has been used
	Active bool
}

func (p *PseudoPointer) String() string {
	return fmt.Sprintf("pseudo-pointer: pos=%d,%d", p.X, p.Y)
}

// Reset the pseudo-pointer to the centre of the screen.
func (p *PseudoPointer) Reset() {
	*p = PseudoPointer{X: pseudoHomeX, Y: pseudoHomeY}
}

// ApplyButton applies a pseudo-pointer button command.
func (p *PseudoPointer) ApplyButton(cmd command.PseudoPointerButton, pressed bool) {
	p.Active = true
	pressButton(&p.H, cmd.Horizontal, cmd.Speed, pressed)
	pressButton(&p.V, cmd.Vertical, cmd.Speed, pressed)
}

func pressButton(a *pseudoAxis, dir int8, speed command.Speed, pressed bool) {
	if dir == 0 {
		return
	}
	if pressed {
		if a.Dir != dir {
			a.Held = 0
		}
		a.Dir = dir
		a.Speed = speed
	} else if a.Dir == dir {
		a.Dir = 0
		a.Held = 0
	}
}

// ApplyAxis applies a pseudo-pointer axis command.
func (p *PseudoPointer) ApplyAxis(cmd command.PseudoPointerAxis, value int16) {
	p.Active = true

	if cmd.Invert {
		// -32768 has no positive counterpart
		if value == -32768 {
			value = 32767
		} else {
			value = -value
		}
	}

	a := &p.H
	if cmd.Vertical {
		a = &p.V
	}
	a.Deflection = value
	a.AxisSpeed = cmd.Speed
}

// Step moves the pseudo-pointer by one frame's worth of motion. Returns true
// if the position changed.
func (p *PseudoPointer) Step() bool {
	x := clamp(int(p.X)+p.H.step(), 0, ScreenWidth-1)
	y := clamp(int(p.Y)+p.V.step(), 0, ScreenHeight)
	moved := int16(x) != p.X || int16(y) != p.Y
	p.X = int16(x)
	p.Y = int16(y)
	return moved
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
