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

package controls

import (
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
)

// length in bits of the stream sent by each controller type after the latch
// is released. the multitap length is per joypad. the rifle has no stream
func streamLength(c plugging.Controller) uint8 {
	switch c {
	case plugging.Joypad, plugging.Multitap:
		return 16
	case plugging.Mouse, plugging.Justifier:
		return 32
	case plugging.Superscope:
		return 8
	}
	return 0
}

// SetJoypadLatch reflects a write to the latch bit of $4016. While the latch
// is high the serial lines show the live state of the controllers. When the
// latch is released the polled inputs are refreshed, pending port
// assignments are plugged in and the state of the controllers is captured
// for shifting out.
func (c *Controls) SetJoypadLatch(latch bool) {
	if c.latch && !latch {
		c.poll(command.ButtonCategory, command.AxisCategory, command.PointerCategory)
		c.active = c.assign
		for p := plugging.Port1; p <= plugging.Port2; p++ {
			c.capture(p)
		}
	}
	c.latch = latch
}

// SetIOBit reflects a write to the programmable I/O port at $4201. Bit 6
// drives port 1 and bit 7 drives port 2. The multitap uses the line to select
// which pair of joypads is presented on the data lines.
func (c *Controls) SetIOBit(port plugging.PortID, high bool) {
	if !port.Valid() {
		return
	}
	c.iobit[port] = high
}

// SetOpenBus sets the value of the data bus before the read. The upper bits
// of a JOYSER read are not driven by the controller port and take this
// value.
func (c *Controls) SetOpenBus(v uint8) {
	c.openBus = v
}

// capture the state of the controller in the port into the shift register.
func (c *Controls) capture(port plugging.PortID) {
	a := c.active[port]
	s := &c.serial[port]

	s.data = [4]uint16{}
	s.cursor = [2]uint8{}

	switch a.Controller {
	case plugging.Joypad:
		s.data[0] = c.Pads[a.IDs[0]].Effective(c.turboPhase)

	case plugging.Multitap:
		for i, id := range a.IDs {
			if id != plugging.Unused {
				s.data[i] = c.Pads[id].Effective(c.turboPhase)
			}
		}

	case plugging.Mouse:
		v := c.Mice[a.IDs[0]].Latch()
		s.data[0] = uint16(v >> 16)
		s.data[1] = uint16(v)

	case plugging.Superscope:
		s.data[0] = uint16(c.Scope.Latch()) << 8

	case plugging.Justifier:
		v := c.Justifier.Latch()
		s.data[0] = uint16(v >> 16)
		s.data[1] = uint16(v)
	}
}

// bit returns the bit of the stream starting at word w.
func (s *serialPort) bit(w int, n uint8, cursor uint8) uint8 {
	if cursor >= n {
		return 1
	}
	word := s.data[w+int(cursor)/16]
	return uint8(word>>(15-cursor%16)) & 0x01
}

func (s *serialPort) advance(i int) {
	if s.cursor[i] < exhausted {
		s.cursor[i]++
	}
}

// ReadJOYSER reflects a read of $4016 (port 1) or $4017 (port 2). Bit 0 is
// data line 1 and bit 1 is data line 2. Port 2 also drives bits 2 to 4 high.
// The remaining bits are open bus.
//
// Reading never fails. A port with nothing plugged in reads as an exhausted
// stream.
func (c *Controls) ReadJOYSER(port plugging.PortID) byte {
	c.padRead = true

	b := c.openBus &^ 0x03
	if port == plugging.Port2 {
		b |= 0x1c
	}

	if !port.Valid() {
		return b
	}

	d0, d1 := c.readLines(port)
	return b | d0 | d1<<1
}

func (c *Controls) readLines(port plugging.PortID) (d0 uint8, d1 uint8) {
	a := c.active[port]
	s := &c.serial[port]

	if c.latch {
		// the line follows the live state of the buttons so polled buttons
		// are refreshed on every read
		c.poll(command.ButtonCategory)

		switch a.Controller {
		case plugging.Joypad:
			if c.Pads[a.IDs[0]].Effective(c.turboPhase)&command.ButtonB == command.ButtonB {
				d0 = 1
			}
		case plugging.Multitap:
			d1 = 1
		case plugging.Mouse:
			c.Mice[a.IDs[0]].CycleSpeed()
		case plugging.Superscope:
			if c.Scope.Fire() {
				d0 = 1
			}
		case plugging.MacsRifle:
			if c.Macs.Trigger() {
				d0 = 1
			}
		}
		return d0, d1
	}

	switch a.Controller {
	case plugging.Multitap:
		// IOBit high presents slots 1 and 2. IOBit low presents slots 3 and 4
		phase := 0
		if !c.iobit[port] {
			phase = 1
		}
		slot := phase * 2
		if a.IDs[slot] != plugging.Unused {
			d0 = s.bit(slot, 16, s.cursor[phase])
		}
		if a.IDs[slot+1] != plugging.Unused {
			d1 = s.bit(slot+1, 16, s.cursor[phase])
		}
		s.advance(phase)

	case plugging.MacsRifle:
		if c.Macs.Trigger() {
			d0 = 1
		}

	default:
		d0 = s.bit(0, streamLength(a.Controller), s.cursor[0])
		s.advance(0)
	}

	return d0, d1
}

// AutoRead performs the automatic joypad read that the console makes at the
// start of vertical blank when enabled with $4200. The returned words are the
// values of the $4218/9, $421A/B, $421C/D and $421E/F register pairs.
func (c *Controls) AutoRead() [4]uint16 {
	var w [4]uint16

	c.SetJoypadLatch(true)
	c.SetJoypadLatch(false)

	for i := 0; i < 16; i++ {
		p1 := c.ReadJOYSER(plugging.Port1)
		p2 := c.ReadJOYSER(plugging.Port2)
		w[0] = w[0]<<1 | uint16(p1&0x01)
		w[1] = w[1]<<1 | uint16(p2&0x01)
		w[2] = w[2]<<1 | uint16((p1>>1)&0x01)
		w[3] = w[3]<<1 | uint16((p2>>1)&0x01)
	}

	return w
}
