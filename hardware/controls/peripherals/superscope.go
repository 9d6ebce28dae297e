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

// Super Scope report bits.
const (
	ScopeFire      uint8 = 0x80
	ScopeCursor    uint8 = 0x40
	ScopeTurbo     uint8 = 0x20
	ScopePause     uint8 = 0x10
	ScopeOffscreen uint8 = 0x02
)

// Limits of the visible screen for the light guns. Aiming outside these
// limits is the same as aiming off screen.
const (
	ScreenWidth  = 256
	ScreenHeight = 239
)

// Superscope is the state of the Super Scope.
//
// The turbo button is a switch. When turbo is off the fire and cursor buttons
// are reported once for each press. When turbo is on they are reported for as
// long as they are held. Pause is always reported once for each press.
type Superscope struct {
	X, Y int16

	// buttons physically held, including the turbo switch and the offscreen
	// aim
	Phys uint8

	// presses waiting to be reported at the next latch
	Next uint8

	// the report captured at the most recent latch
	Read uint8
}

func (s *Superscope) String() string {
	return fmt.Sprintf("superscope: pos=%d,%d phys=%02x read=%02x", s.X, s.Y, s.Phys, s.Read)
}

// Reset the Super Scope.
func (s *Superscope) Reset() {
	s.Phys = 0
	s.Next = 0
	s.Read = 0
}

// Apply a Super Scope button command.
func (s *Superscope) Apply(cmd command.Superscope, pressed bool) {
	var b uint8
	if cmd.Fire {
		b |= ScopeFire
	}
	if cmd.Cursor {
		b |= ScopeCursor
	}
	if cmd.Pause {
		b |= ScopePause
	}
	if cmd.AimOffscreen {
		b |= ScopeOffscreen
	}

	if pressed {
		s.Phys |= b
		if cmd.Turbo {
			s.Phys ^= ScopeTurbo
		}
		s.Next |= b & (ScopeFire | ScopeCursor | ScopePause)
	} else {
		s.Phys &^= b
	}
}

// Aim sets the position the Super Scope is pointed at.
func (s *Superscope) Aim(x, y int16) {
	s.X = x
	s.Y = y
}

// Offscreen returns true if the Super Scope is pointed away from the screen.
func (s *Superscope) Offscreen() bool {
	return s.Phys&ScopeOffscreen == ScopeOffscreen || offscreen(s.X, s.Y)
}

// Fire returns the live state of the fire button.
func (s *Superscope) Fire() bool {
	return s.Phys&ScopeFire == ScopeFire
}

// Latch captures the report byte.
func (s *Superscope) Latch() uint8 {
	r := s.Next
	if s.Phys&ScopeTurbo == ScopeTurbo {
		r |= s.Phys & (ScopeFire | ScopeCursor)
		r |= ScopeTurbo
	}
	if s.Offscreen() {
		r |= ScopeOffscreen
	}
	s.Read = r
	s.Next = 0
	return r
}

func offscreen(x, y int16) bool {
	return x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight
}
