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
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
)

// PortState summarises what the console sees on a port. It is intended for
// display and is passed to FrameObservers.
type PortState struct {
	Port       string `json:"port"`
	Controller string `json:"controller"`

	// effective buttons of each joypad on the port, in slot order. empty
	// multitap slots are zero
	Pads []uint16 `json:"pads,omitempty"`

	// aim or pointer position and buttons for the other controllers
	X         int16 `json:"x"`
	Y         int16 `json:"y"`
	Buttons   uint8 `json:"buttons"`
	Offscreen bool  `json:"offscreen,omitempty"`
}

// State returns the state of the two ports as the console sees them.
func (c *Controls) State() [2]PortState {
	var st [2]PortState

	for p := plugging.Port1; p <= plugging.Port2; p++ {
		a := c.active[p]
		s := PortState{
			Port:       p.String(),
			Controller: a.Controller.String(),
		}

		switch a.Controller {
		case plugging.Joypad:
			s.Pads = []uint16{c.Pads[a.IDs[0]].Effective(c.turboPhase)}
		case plugging.Multitap:
			s.Pads = make([]uint16, 4)
			for i, id := range a.IDs {
				if id != plugging.Unused {
					s.Pads[i] = c.Pads[id].Effective(c.turboPhase)
				}
			}
		case plugging.Mouse:
			m := &c.Mice[a.IDs[0]]
			s.X, s.Y, s.Buttons = m.X, m.Y, m.Buttons
		case plugging.Superscope:
			s.X, s.Y, s.Buttons = c.Scope.X, c.Scope.Y, c.Scope.Phys
			s.Offscreen = c.Scope.Offscreen()
		case plugging.Justifier:
			g := int(c.Justifier.Select)
			s.X, s.Y, s.Buttons = c.Justifier.X[g], c.Justifier.Y[g], c.Justifier.Buttons
			s.Offscreen = c.Justifier.IsOffscreen(g)
		case plugging.MacsRifle:
			s.X, s.Y, s.Buttons = c.Macs.X, c.Macs.Y, c.Macs.Buttons
		}

		st[p] = s
	}

	return st
}

// GunLatch returns the screen position at which the light gun in port 2
// latched the video counters during the last frame. The ok value is false if
// no light gun latched.
func (c *Controls) GunLatch() (x int16, y int16, ok bool) {
	return c.gunX, c.gunY, c.gunLatch
}

// PadRead returns whether the console read the serial lines during the
// current frame and during the previous frame.
func (c *Controls) PadRead() (current bool, previous bool) {
	return c.padRead, c.padReadLast
}

// Frame returns the number of frames since the last Reset().
func (c *Controls) Frame() int {
	return c.frame
}

// ControlEOF performs the end of frame processing. It should be called once
// at the end of every frame.
func (c *Controls) ControlEOF() {
	period := c.prefs.TurboPeriod.Get().(int)
	c.turboCount++
	if c.turboCount >= period {
		c.turboCount = 0
		c.turboPhase = !c.turboPhase
	}

	c.stepMultis()

	// pseudo-pointers report their position on their reserved id
	for i := range c.Pseudo {
		p := &c.Pseudo[i]
		if p.Active && p.Step() {
			c.ReportPointer(mapping.PseudoPointerID(uint8(i)), p.X, p.Y)
		}
	}

	c.poll(command.PointerCategory)

	c.updateGunLatch()

	if c.active[plugging.Port2].Controller == plugging.Justifier {
		c.Justifier.EndFrame(c.active[plugging.Port2].IDs[0] == 1)
	}

	c.padReadLast = c.padRead
	c.padRead = false

	c.frame++

	if len(c.observers) > 0 {
		st := c.State()
		for _, o := range c.observers {
			o.ObserveFrame(c.frame, st)
		}
	}
}

// the light guns latch the counters when the beam passes the point they are
// aimed at. a gun aimed off screen never sees the beam.
func (c *Controls) updateGunLatch() {
	c.gunLatch = false

	switch c.active[plugging.Port2].Controller {
	case plugging.Superscope:
		if !c.Scope.Offscreen() {
			c.gunX, c.gunY, c.gunLatch = c.Scope.X, c.Scope.Y, true
		}
	case plugging.Justifier:
		g := int(c.Justifier.Select)
		if !c.Justifier.IsOffscreen(g) {
			c.gunX, c.gunY, c.gunLatch = c.Justifier.X[g], c.Justifier.Y[g], true
		}
	case plugging.MacsRifle:
		c.gunX, c.gunY, c.gunLatch = c.Macs.X, c.Macs.Y, true
	}
}
