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

package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/peripherals"
	"github.com/jetsetilly/joyser/test"
)

func TestJoypadPlain(t *testing.T) {
	var jp peripherals.Joypad

	ab := command.Joypad{Buttons: command.ButtonA | command.ButtonB}
	jp.Apply(ab, true, false)
	test.ExpectEquality(t, jp.Buttons, command.ButtonA|command.ButtonB)
	jp.Apply(command.Joypad{Buttons: command.ButtonA}, false, false)
	test.ExpectEquality(t, jp.Buttons, command.ButtonB)
	jp.Apply(ab, false, false)
	test.ExpectEquality(t, jp.Buttons, uint16(0))
}

func TestJoypadOpposingDirections(t *testing.T) {
	var jp peripherals.Joypad

	left := command.Joypad{Buttons: command.ButtonLeft}
	right := command.Joypad{Buttons: command.ButtonRight}
	up := command.Joypad{Buttons: command.ButtonUp}

	jp.Apply(left, true, false)
	jp.Apply(up, true, false)
	jp.Apply(right, true, false)
	test.ExpectEquality(t, jp.Buttons, command.ButtonRight|command.ButtonUp)

	// with up-and-down allowed both directions remain pressed
	jp.Reset()
	jp.Apply(left, true, true)
	jp.Apply(right, true, true)
	test.ExpectEquality(t, jp.Buttons, command.ButtonLeft|command.ButtonRight)
}

func TestJoypadToggles(t *testing.T) {
	var jp peripherals.Joypad

	toggle := command.Joypad{Buttons: command.ButtonA, Toggle: true, Turbo: true}

	// toggles act on press only
	jp.Apply(toggle, true, false)
	test.ExpectEquality(t, jp.ToggleTurbo, command.ButtonA)
	jp.Apply(toggle, false, false)
	test.ExpectEquality(t, jp.ToggleTurbo, command.ButtonA)
	test.ExpectEquality(t, jp.Buttons, uint16(0))

	// a plain press of a turbo toggled button autofires
	a := command.Joypad{Buttons: command.ButtonA}
	jp.Apply(a, true, false)
	test.ExpectEquality(t, jp.Buttons, uint16(0))
	test.ExpectEquality(t, jp.Turbos, command.ButtonA)
	test.ExpectEquality(t, jp.Effective(false), uint16(0))
	test.ExpectEquality(t, jp.Effective(true), command.ButtonA)

	jp.Apply(a, false, false)
	test.ExpectEquality(t, jp.Turbos, uint16(0))

	// toggle off again
	jp.Apply(toggle, true, false)
	test.ExpectEquality(t, jp.ToggleTurbo, uint16(0))
}

func TestJoypadTurboAndSticky(t *testing.T) {
	var jp peripherals.Joypad

	turbo := command.Joypad{Buttons: command.ButtonB, Turbo: true}
	jp.Apply(turbo, true, false)
	test.ExpectEquality(t, jp.Turbos, command.ButtonB)
	test.ExpectEquality(t, jp.Buttons, uint16(0))
	jp.Apply(turbo, false, false)
	test.ExpectEquality(t, jp.Turbos, uint16(0))

	// sticky presses latch the button until the next press
	sticky := command.Joypad{Buttons: command.ButtonX, Sticky: true}
	jp.Apply(sticky, true, false)
	jp.Apply(sticky, false, false)
	test.ExpectEquality(t, jp.Buttons, command.ButtonX)
	jp.Apply(sticky, true, false)
	jp.Apply(sticky, false, false)
	test.ExpectEquality(t, jp.Buttons, uint16(0))

	// sticky turbo latches autofire
	stickyTurbo := command.Joypad{Buttons: command.ButtonY, Sticky: true, Turbo: true}
	jp.Apply(stickyTurbo, true, false)
	jp.Apply(stickyTurbo, false, false)
	test.ExpectEquality(t, jp.Turbos, command.ButtonY)
	jp.Apply(stickyTurbo, true, false)
	test.ExpectEquality(t, jp.Turbos, uint16(0))
}

func TestJoypadAxis(t *testing.T) {
	var jp peripherals.Joypad

	axis := command.JoypadAxis{Axis: command.AxisLeftRight, Threshold: 127}

	jp.ApplyAxis(axis, 16384)
	test.ExpectEquality(t, jp.Buttons, command.ButtonRight)
	jp.ApplyAxis(axis, 16383)
	test.ExpectEquality(t, jp.Buttons, uint16(0))
	jp.ApplyAxis(axis, -32767)
	test.ExpectEquality(t, jp.Buttons, command.ButtonLeft)
	jp.ApplyAxis(axis, 0)
	test.ExpectEquality(t, jp.Buttons, uint16(0))

	// inversion
	axis.Invert = true
	jp.ApplyAxis(axis, -32768)
	test.ExpectEquality(t, jp.Buttons, command.ButtonRight)

	// other buttons are not affected
	jp.Reset()
	jp.Apply(command.Joypad{Buttons: command.ButtonStart}, true, false)
	jp.ApplyAxis(command.JoypadAxis{Axis: command.AxisXB, Threshold: 0}, 200)
	test.ExpectEquality(t, jp.Buttons, command.ButtonStart|command.ButtonB)
}

func TestMouse(t *testing.T) {
	var m peripherals.Mouse

	m.Apply(command.Mouse{Left: true}, true)
	m.Aim(10, -5)
	v := m.Latch()
	test.ExpectEquality(t, v, uint32(0x41<<16|0x85<<8|0x0a))

	// no movement since the last latch
	m.Apply(command.Mouse{Left: true, Right: true}, true)
	m.CycleSpeed()
	v = m.Latch()
	test.ExpectEquality(t, v, uint32(0xd1<<16))

	// large movements are spread over more than one latch
	m.Aim(10+200, -5)
	test.ExpectEquality(t, m.Latch()&0xff, uint32(127))
	test.ExpectEquality(t, m.Latch()&0xff, uint32(73))
	test.ExpectEquality(t, m.Latch()&0xff, uint32(0))

	m.CycleSpeed()
	m.CycleSpeed()
	test.ExpectEquality(t, m.Speed, uint8(0))
}

func TestSuperscope(t *testing.T) {
	var s peripherals.Superscope
	s.Aim(100, 100)

	fire := command.Superscope{Fire: true}

	// fire is reported once per press
	s.Apply(fire, true)
	test.ExpectEquality(t, s.Latch(), peripherals.ScopeFire)
	test.ExpectEquality(t, s.Latch(), uint8(0))
	test.ExpectSuccess(t, s.Fire())
	s.Apply(fire, false)
	test.ExpectFailure(t, s.Fire())

	// turbo is a switch. fire is reported while held
	s.Apply(command.Superscope{Turbo: true}, true)
	s.Apply(command.Superscope{Turbo: true}, false)
	s.Apply(fire, true)
	test.ExpectEquality(t, s.Latch(), peripherals.ScopeFire|peripherals.ScopeTurbo)
	test.ExpectEquality(t, s.Latch(), peripherals.ScopeFire|peripherals.ScopeTurbo)
	s.Apply(fire, false)
	test.ExpectEquality(t, s.Latch(), peripherals.ScopeTurbo)

	// pause is reported once
	s.Apply(command.Superscope{Pause: true}, true)
	test.ExpectEquality(t, s.Latch()&peripherals.ScopePause, peripherals.ScopePause)
	test.ExpectEquality(t, s.Latch()&peripherals.ScopePause, uint8(0))

	// offscreen
	s.Aim(300, 100)
	test.ExpectEquality(t, s.Latch()&peripherals.ScopeOffscreen, peripherals.ScopeOffscreen)
	s.Aim(100, 100)
	s.Apply(command.Superscope{AimOffscreen: true}, true)
	test.ExpectSuccess(t, s.Offscreen())
	s.Apply(command.Superscope{AimOffscreen: true}, false)
	test.ExpectFailure(t, s.Offscreen())
}

func TestJustifier(t *testing.T) {
	var j peripherals.Justifier

	j.Apply(command.Justifier{Index: 0, Trigger: true}, true)
	j.Apply(command.Justifier{Index: 1, Start: true}, true)
	test.ExpectEquality(t, j.Latch(), uint32(0x0e5590))

	j.EndFrame(true)
	test.ExpectEquality(t, j.Select, uint8(1))
	test.ExpectEquality(t, j.Latch()>>8, uint32(0x0eaa))

	j.EndFrame(false)
	test.ExpectEquality(t, j.Select, uint8(0))

	j.Aim(1, 10, 10)
	test.ExpectFailure(t, j.IsOffscreen(1))
	j.Apply(command.Justifier{Index: 1, AimOffscreen: true}, true)
	test.ExpectSuccess(t, j.IsOffscreen(1))
	test.ExpectFailure(t, j.IsOffscreen(0))
}

func TestMacsRifle(t *testing.T) {
	var m peripherals.MacsRifle
	m.Apply(command.MacsRifle{Trigger: true}, true)
	test.ExpectSuccess(t, m.Trigger())
	m.Apply(command.MacsRifle{Trigger: false}, false)
	test.ExpectSuccess(t, m.Trigger())
	m.Apply(command.MacsRifle{Trigger: true}, false)
	test.ExpectFailure(t, m.Trigger())
}

func TestPseudoPointer(t *testing.T) {
	var p peripherals.PseudoPointer
	p.Reset()
	test.ExpectEquality(t, p.X, int16(128))
	test.ExpectEquality(t, p.Y, int16(112))

	right := command.PseudoPointerButton{Speed: command.Medium, Horizontal: 1}
	p.ApplyButton(right, true)
	test.ExpectSuccess(t, p.Step())
	test.ExpectEquality(t, p.X, int16(132))
	p.ApplyButton(right, false)
	test.ExpectFailure(t, p.Step())

	// variable speed accelerates
	up := command.PseudoPointerButton{Speed: command.Variable, Vertical: -1}
	p.ApplyButton(up, true)
	for i := 0; i < 4; i++ {
		p.Step()
	}
	test.ExpectEquality(t, p.Y, int16(108))
	p.Step()
	test.ExpectEquality(t, p.Y, int16(106))
	p.ApplyButton(up, false)

	// clamped to the screen
	for i := 0; i < 100; i++ {
		p.ApplyAxis(command.PseudoPointerAxis{Speed: command.Fast}, 32767)
		p.Step()
	}
	test.ExpectEquality(t, p.X, int16(255))
	p.ApplyAxis(command.PseudoPointerAxis{Speed: command.Fast}, 0)

	// tiered axis speed has a dead zone
	p.ApplyAxis(command.PseudoPointerAxis{Speed: command.Slow, Vertical: true}, 8000)
	test.ExpectFailure(t, p.Step())
	p.ApplyAxis(command.PseudoPointerAxis{Speed: command.Slow, Vertical: true, Invert: true}, 9000)
	test.ExpectSuccess(t, p.Step())
	test.ExpectEquality(t, p.Y, int16(105))

	// proportional axis speed
	p.ApplyAxis(command.PseudoPointerAxis{Speed: command.Variable, Vertical: true}, 16384)
	p.Step()
	test.ExpectEquality(t, p.Y, int16(109))
}
