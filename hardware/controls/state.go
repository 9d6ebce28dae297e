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
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/hardware/controls/snapshot"
)

// Sentinal error patterns.
const (
	UnsupportedSnapshot = "controls: cannot restore snapshot: %v"
	PreferencesFailed   = "controls: preferences: %v"
)

// PreSaveState returns the state of the subsystem as a save-state record.
// Bindings are not part of the record.
func (c *Controls) PreSaveState() []byte {
	r := snapshot.Record{
		Port1Cursors:    c.serial[plugging.Port1].cursor,
		Port2Cursors:    c.serial[plugging.Port2].cursor,
		MouseSpeed:      [2]uint8{c.Mice[0].Speed, c.Mice[1].Speed},
		JustifierSelect: c.Justifier.Select,
		PadRead:         c.padRead,
		PadReadLast:     c.padReadLast,

		Latch:  c.latch,
		IOBit1: c.iobit[plugging.Port1],
		IOBit2: c.iobit[plugging.Port2],

		ScopePhys: c.Scope.Phys,
		ScopeNext: c.Scope.Next,
		ScopeRead: c.Scope.Read,

		JustifierButtons: c.Justifier.Buttons,
		TurboPhase:       c.turboPhase,

		MacsX:       c.Macs.X,
		MacsY:       c.Macs.Y,
		MacsButtons: c.Macs.Buttons,
	}

	for i := range c.Pads {
		r.Buttons[i] = c.Pads[i].Buttons
	}

	for p := range c.serial {
		r.Latched[p] = c.serial[p].data
		r.Assignments[p] = snapshot.Assignment{
			Controller: uint8(c.assign[p].Controller),
			IDs:        c.assign[p].IDs,
		}
	}

	for i := range c.Mice {
		r.MouseButtons[i] = c.Mice[i].Buttons
		r.MouseRefX[i] = c.Mice[i].RefX
		r.MouseRefY[i] = c.Mice[i].RefY
	}

	return r.Marshal()
}

// PostLoadState restores the subsystem from a save-state record made by
// PreSaveState(). A record that cannot be used, because it is too short or
// has an unknown version, soft-resets the subsystem and returns an error for
// the caller to report. The subsystem is usable in either case.
func (c *Controls) PostLoadState(buf []byte) error {
	r, err := snapshot.Unmarshal(buf)
	if err != nil {
		c.SoftReset()
		return curated.Errorf(UnsupportedSnapshot, err)
	}

	c.serial[plugging.Port1].cursor = r.Port1Cursors
	c.serial[plugging.Port2].cursor = r.Port2Cursors
	c.Justifier.Select = r.JustifierSelect & 0x01
	c.padRead = r.PadRead
	c.padReadLast = r.PadReadLast

	for i := range c.Pads {
		c.Pads[i].Buttons = r.Buttons[i]
	}

	for p := range c.serial {
		c.serial[p].data = r.Latched[p]
		a := plugging.Assignment{
			Controller: plugging.Controller(r.Assignments[p].Controller),
			IDs:        r.Assignments[p].IDs,
		}
		c.assign[p] = a.Normalise()
		c.active[p] = c.assign[p]
	}

	c.latch = r.Latch
	c.iobit[plugging.Port1] = r.IOBit1
	c.iobit[plugging.Port2] = r.IOBit2

	for i := range c.Mice {
		c.Mice[i].Speed = r.MouseSpeed[i] % 3
		c.Mice[i].Buttons = r.MouseButtons[i]
		c.Mice[i].RefX = r.MouseRefX[i]
		c.Mice[i].RefY = r.MouseRefY[i]
	}

	c.Scope.Phys = r.ScopePhys
	c.Scope.Next = r.ScopeNext
	c.Scope.Read = r.ScopeRead
	c.Justifier.Buttons = r.JustifierButtons
	c.turboPhase = r.TurboPhase

	c.Macs.X = r.MacsX
	c.Macs.Y = r.MacsY
	c.Macs.Buttons = r.MacsButtons

	return nil
}
