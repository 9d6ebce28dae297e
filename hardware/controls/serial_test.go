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

package controls_test

import (
	"testing"

	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/test"
)

// pulse the latch high then low.
func strobe(c *controls.Controls) {
	c.SetJoypadLatch(true)
	c.SetJoypadLatch(false)
}

// read n bits from the port. the first data line is in the low half of each
// returned value and the second data line in the high half.
func readBits(c *controls.Controls, port plugging.PortID, n int) (d0 uint32, d1 uint32) {
	for i := 0; i < n; i++ {
		b := c.ReadJOYSER(port)
		d0 = d0<<1 | uint32(b&0x01)
		d1 = d1<<1 | uint32((b>>1)&0x01)
	}
	return d0, d1
}

func TestIdlePort(t *testing.T) {
	c, _ := newControls(t)

	// nothing has been latched since reset so the stream is exhausted
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1), byte(0x01))
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0x1d))

	current, _ := c.PadRead()
	test.ExpectSuccess(t, current)

	// upper bits are open bus
	c.SetOpenBus(0xff)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1), byte(0xfd))
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0xfd))
}

func TestJoypadStream(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad1 A+Start"), 1, 0)
	strobe(c)

	d0, d1 := readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonA|command.ButtonStart)
	test.ExpectEquality(t, d1, uint32(0))

	// every read after the end of the stream returns 1
	for i := 0; i < 20; i++ {
		test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1)&0x01, byte(1), i)
	}

	// the second port was not read and is unaffected
	d0, _ = readBits(c, plugging.Port2, 16)
	test.ExpectEquality(t, d0, uint32(0))
}

func TestStreamDeterminism(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad1 B+Y+L"), 1, 0)
	c.ApplyCommand(parse(t, "Joypad2 Down+R"), 1, 0)

	strobe(c)
	a1, _ := readBits(c, plugging.Port1, 24)
	a2, _ := readBits(c, plugging.Port2, 24)

	strobe(c)
	b1, _ := readBits(c, plugging.Port1, 24)
	b2, _ := readBits(c, plugging.Port2, 24)

	test.ExpectEquality(t, a1, b1)
	test.ExpectEquality(t, a2, b2)
	test.ExpectEquality(t, a1&0xff, uint32(0xff))
}

func TestCapturedStream(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad1 X"), 1, 0)
	strobe(c)

	// changes after the latch is released are not seen until the next latch
	c.ApplyCommand(parse(t, "Joypad1 X"), 0, 0)
	c.ApplyCommand(parse(t, "Joypad1 Select"), 1, 0)

	d0, _ := readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonX)

	strobe(c)
	d0, _ = readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonSelect)
}

func TestLatchedReads(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad1 B"), 1, 0)
	c.SetJoypadLatch(true)

	// while latched every read shows the live state of the first button
	for i := 0; i < 20; i++ {
		test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1)&0x01, byte(1), i)
	}

	c.ApplyCommand(parse(t, "Joypad1 B"), 0, 0)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1)&0x01, byte(0))

	// the stream starts from the first bit when the latch is released
	c.ApplyCommand(parse(t, "Joypad1 B+R"), 1, 0)
	c.SetJoypadLatch(false)
	d0, _ := readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonB|command.ButtonR)
}

func TestPlugOnLatch(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad4 B"), 1, 0)
	c.SetController(plugging.Port1, plugging.Joypad, 3)

	// the new assignment is not used until the latch is released
	c.SetJoypadLatch(true)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1)&0x01, byte(0))
	test.ExpectEquality(t, c.State()[0].Pads[0], uint16(0))

	c.SetJoypadLatch(false)
	d0, _ := readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonB)
	test.ExpectEquality(t, c.State()[0].Pads[0], command.ButtonB)
}

func TestUnpluggedPort(t *testing.T) {
	c, _ := newControls(t)

	c.SetController(plugging.Port1, plugging.None)
	strobe(c)

	d0, d1 := readBits(c, plugging.Port1, 16)
	test.ExpectEquality(t, d0, uint32(0xffff))
	test.ExpectEquality(t, d1, uint32(0))
	test.ExpectEquality(t, c.State()[0].Controller, "none")
}

func TestMultitap(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad3 A"), 1, 0)
	c.ApplyCommand(parse(t, "Joypad4 B"), 1, 0)
	c.ApplyCommand(parse(t, "Joypad5 X"), 1, 0)
	c.ApplyCommand(parse(t, "Joypad6 Y"), 1, 0)

	c.SetController(plugging.Port2, plugging.Multitap, 2, 3, 4, 5)
	test.ExpectFailure(t, c.VerifyControllers())
	strobe(c)

	// the multitap identifies itself on the second data line while latched
	c.SetJoypadLatch(true)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0x1e))
	c.SetJoypadLatch(false)

	// IOBit high presents the first two joypads
	d0, d1 := readBits(c, plugging.Port2, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonA)
	test.ExpectEquality(t, uint16(d1), command.ButtonB)

	// IOBit low presents the other two joypads
	c.SetIOBit(plugging.Port2, false)
	d0, d1 = readBits(c, plugging.Port2, 16)
	test.ExpectEquality(t, uint16(d0), command.ButtonX)
	test.ExpectEquality(t, uint16(d1), command.ButtonY)

	// both phases are exhausted
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0x1f))
	c.SetIOBit(plugging.Port2, true)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0x1f))

	// each phase has its own cursor
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 4)
	c.SetIOBit(plugging.Port2, false)
	_, d1 = readBits(c, plugging.Port2, 16)
	c.SetIOBit(plugging.Port2, true)
	e0, _ := readBits(c, plugging.Port2, 12)
	test.ExpectEquality(t, uint16(d0<<12|e0), command.ButtonA)
	test.ExpectEquality(t, uint16(d1), command.ButtonY)
}

func TestMultitapEmptySlots(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad3 A"), 1, 0)
	c.SetController(plugging.Port2, plugging.Multitap, 2, plugging.Unused, plugging.Unused, 5)
	strobe(c)

	// empty slots read zero, including past the end of the stream
	d0, d1 := readBits(c, plugging.Port2, 20)
	test.ExpectEquality(t, d0, uint32(command.ButtonA)<<4|0x0f)
	test.ExpectEquality(t, d1, uint32(0))

	st := c.State()[1]
	test.ExpectEquality(t, st.Controller, "multitap")
	test.DemandEquality(t, len(st.Pads), 4)
	test.ExpectEquality(t, st.Pads[0], command.ButtonA)
}

func TestAutoRead(t *testing.T) {
	c, _ := newControls(t)

	c.ApplyCommand(parse(t, "Joypad1 A+Start"), 1, 0)
	c.ApplyCommand(parse(t, "Joypad2 R"), 1, 0)

	w := c.AutoRead()
	test.ExpectEquality(t, w[0], command.ButtonA|command.ButtonStart)
	test.ExpectEquality(t, w[1], command.ButtonR)
	test.ExpectEquality(t, w[2], uint16(0))
	test.ExpectEquality(t, w[3], uint16(0))

	// a multitap in port 2 fills the fourth word
	c.ApplyCommand(parse(t, "Joypad3 Left"), 1, 0)
	c.SetController(plugging.Port2, plugging.Multitap, 1, 2)
	w = c.AutoRead()
	test.ExpectEquality(t, w[1], command.ButtonR)
	test.ExpectEquality(t, w[3], command.ButtonLeft)
}

func TestMouseStream(t *testing.T) {
	c, _ := newControls(t)

	c.SetController(plugging.Port1, plugging.Mouse, 0)
	strobe(c)

	c.ApplyCommand(parse(t, "Pointer Mouse1"), 10, -5)
	c.ApplyCommand(parse(t, "Mouse1 L"), 1, 0)

	// a read while latched cycles the sensitivity
	c.SetJoypadLatch(true)
	c.ReadJOYSER(plugging.Port1)
	test.ExpectEquality(t, c.Mice[0].Speed, uint8(1))
	c.SetJoypadLatch(false)

	d0, _ := readBits(c, plugging.Port1, 32)
	test.ExpectEquality(t, d0, uint32(0x0051850a))
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port1)&0x01, byte(1))

	// movement is relative to the previous report
	strobe(c)
	d0, _ = readBits(c, plugging.Port1, 32)
	test.ExpectEquality(t, d0, uint32(0x00510000))
}

func TestSuperscopeStream(t *testing.T) {
	c, _ := newControls(t)

	c.SetController(plugging.Port2, plugging.Superscope)
	test.ExpectFailure(t, c.VerifyControllers())
	c.ApplyCommand(parse(t, "Pointer Superscope"), 100, 100)
	strobe(c)

	c.ApplyCommand(parse(t, "Superscope Fire"), 1, 0)

	c.SetJoypadLatch(true)
	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2), byte(0x1d))
	c.SetJoypadLatch(false)

	d0, _ := readBits(c, plugging.Port2, 8)
	test.ExpectEquality(t, d0, uint32(0x80))
	d0, _ = readBits(c, plugging.Port2, 4)
	test.ExpectEquality(t, d0, uint32(0x0f))

	// fire is reported once for each press
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 8)
	test.ExpectEquality(t, d0, uint32(0x00))

	// held fire is reported on every latch when turbo is switched on
	c.ApplyCommand(parse(t, "Superscope ToggleTurbo"), 1, 0)
	c.ApplyCommand(parse(t, "Superscope ToggleTurbo"), 0, 0)
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 8)
	test.ExpectEquality(t, d0, uint32(0xa0))
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 8)
	test.ExpectEquality(t, d0, uint32(0xa0))

	// aiming off the screen
	c.ApplyCommand(parse(t, "Superscope Fire"), 0, 0)
	c.ApplyCommand(parse(t, "Pointer Superscope"), 300, 100)
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 8)
	test.ExpectEquality(t, d0, uint32(0x22))

	c.ControlEOF()
	_, _, ok := c.GunLatch()
	test.ExpectFailure(t, ok)

	c.ApplyCommand(parse(t, "Pointer Superscope"), 20, 30)
	c.ControlEOF()
	x, y, ok := c.GunLatch()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, int16(20))
	test.ExpectEquality(t, y, int16(30))
}

func TestJustifierStream(t *testing.T) {
	c, _ := newControls(t)

	c.SetController(plugging.Port2, plugging.Justifier, 1)
	strobe(c)

	d0, _ := readBits(c, plugging.Port2, 32)
	test.ExpectEquality(t, d0, uint32(0x000e5500))

	// the selected gun alternates every frame when two guns are connected
	c.ControlEOF()
	test.ExpectEquality(t, c.Justifier.Select, uint8(1))
	c.ApplyCommand(parse(t, "Justifier2 Trigger"), 1, 0)
	strobe(c)
	d0, _ = readBits(c, plugging.Port2, 32)
	test.ExpectEquality(t, d0, uint32(0x000eaa40))

	c.ControlEOF()
	test.ExpectEquality(t, c.Justifier.Select, uint8(0))

	// with one gun the first gun is always selected
	c.SetController(plugging.Port2, plugging.Justifier, 0)
	strobe(c)
	c.ControlEOF()
	c.ControlEOF()
	test.ExpectEquality(t, c.Justifier.Select, uint8(0))
}

func TestMacsRifle(t *testing.T) {
	c, _ := newControls(t)

	c.SetController(plugging.Port2, plugging.MacsRifle)
	strobe(c)

	test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2)&0x01, byte(0))

	// the rifle has no stream. the trigger is seen on every read
	c.ApplyCommand(parse(t, "MacsRifle Trigger"), 1, 0)
	for i := 0; i < 40; i++ {
		test.ExpectEquality(t, c.ReadJOYSER(plugging.Port2)&0x01, byte(1), i)
	}
}
