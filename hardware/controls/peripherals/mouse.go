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

// Mouse button bits as they appear in the second byte of the mouse report.
const (
	MouseLeft  uint8 = 0x40
	MouseRight uint8 = 0x80
)

// Mouse is the state of one logical mouse. The mouse reports movement, not
// position. The position given by the host is compared with the position at
// the previous latch to produce the movement.
type Mouse struct {
	X, Y       int16
	RefX, RefY int16
	Buttons    uint8

	// sensitivity 0 to 2
	Speed uint8
}

func (m *Mouse) String() string {
	return fmt.Sprintf("mouse: pos=%d,%d buttons=%02x speed=%d", m.X, m.Y, m.Buttons, m.Speed)
}

// Reset the mouse. The reference position is reset to the current position
// so that no movement is reported.
func (m *Mouse) Reset() {
	m.RefX = m.X
	m.RefY = m.Y
	m.Buttons = 0
	m.Speed = 0
}

// Apply a mouse button command.
func (m *Mouse) Apply(cmd command.Mouse, pressed bool) {
	var b uint8
	if cmd.Left {
		b |= MouseLeft
	}
	if cmd.Right {
		b |= MouseRight
	}
	if pressed {
		m.Buttons |= b
	} else {
		m.Buttons &^= b
	}
}

// Aim sets the pointer position of the mouse.
func (m *Mouse) Aim(x, y int16) {
	m.X = x
	m.Y = y
}

// CycleSpeed moves to the next sensitivity setting.
func (m *Mouse) CycleSpeed() {
	m.Speed = (m.Speed + 1) % 3
}

func clampDelta(d int32) int8 {
	if d > 127 {
		return 127
	}
	if d < -127 {
		return -127
	}
	return int8(d)
}

// signMagnitude encodes a delta the way the mouse sends it. bit 7 is set for
// negative values.
func signMagnitude(d int8) uint8 {
	if d < 0 {
		return 0x80 | uint8(-d)
	}
	return uint8(d)
}

// Latch captures the mouse report as a 32 bit value, most significant bit
// first on the serial line. The reference position advances by the reported
// movement so that movement beyond the limit of one report carries over to
// the next.
func (m *Mouse) Latch() uint32 {
	dx := clampDelta(int32(m.X) - int32(m.RefX))
	dy := clampDelta(int32(m.Y) - int32(m.RefY))
	m.RefX += int16(dx)
	m.RefY += int16(dy)

	status := m.Buttons | (m.Speed << 4) | 0x01

	return uint32(status)<<16 | uint32(signMagnitude(dy))<<8 | uint32(signMagnitude(dx))
}
