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
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/logger"
)

// SetController assigns a controller to a port. See plugging.Assignment for
// the meaning of the ids. The assignment is normalised and takes effect at
// the next release of the latch.
//
// The assignment is not checked against the preferences or against the other
// port. Call VerifyControllers() for that.
func (c *Controls) SetController(port plugging.PortID, controller plugging.Controller, ids ...int8) {
	if !port.Valid() {
		logger.Logf(logger.Allow, "controls", "cannot set controller for %s", port)
		return
	}
	c.assign[port] = plugging.NewAssignment(controller, ids...)
}

// SetAssignment is the same as SetController() but takes an Assignment.
func (c *Controls) SetAssignment(port plugging.PortID, a plugging.Assignment) {
	c.SetController(port, a.Controller, a.IDs[:]...)
}

// GetController returns the controller assigned to the port and its ids.
// Unused ids are plugging.Unused.
func (c *Controls) GetController(port plugging.PortID) (plugging.Controller, [4]int8) {
	if !port.Valid() {
		return plugging.None, plugging.NewNone().IDs
	}
	return c.assign[port].Controller, c.assign[port].IDs
}

// GetAssignment returns the assignment for the port.
func (c *Controls) GetAssignment(port plugging.PortID) plugging.Assignment {
	if !port.Valid() {
		return plugging.NewNone()
	}
	return c.assign[port]
}

// VerifyControllers resolves problems with the port assignments. Ports with
// a controller type disabled in the preferences are emptied. The Super
// Scope, Justifier and M.A.C.S. rifle are only allowed in port 2. A logical
// joypad or mouse can only be used once. The second use is removed.
//
// Returns true if any assignment was changed. Every change is logged.
func (c *Controls) VerifyControllers() bool {
	var changed bool
	var pads [8]bool
	var mice [2]bool

	drop := func(port plugging.PortID, reason string) {
		logger.Logf(logger.Allow, "controls", "%s: %s removed: %s", port, c.assign[port].Controller, reason)
		c.assign[port] = plugging.NewNone()
		changed = true
	}

	for port := plugging.Port1; port <= plugging.Port2; port++ {
		a := c.assign[port]

		switch a.Controller {
		case plugging.Joypad:
			if pads[a.IDs[0]] {
				drop(port, "joypad already in use")
			} else {
				pads[a.IDs[0]] = true
			}

		case plugging.Mouse:
			if !c.prefs.MouseMaster.Get().(bool) {
				drop(port, "mouse disabled")
			} else if mice[a.IDs[0]] {
				drop(port, "mouse already in use")
			} else {
				mice[a.IDs[0]] = true
			}

		case plugging.Multitap:
			if !c.prefs.MultitapMaster.Get().(bool) {
				drop(port, "multitap disabled")
				break
			}
			for i, id := range a.IDs {
				if id == plugging.Unused {
					continue
				}
				if pads[id] {
					logger.Logf(logger.Allow, "controls", "%s: multitap slot %d emptied: joypad already in use", port, i+1)
					c.assign[port].IDs[i] = plugging.Unused
					changed = true
				} else {
					pads[id] = true
				}
			}

		case plugging.Superscope:
			if !c.prefs.SuperscopeMaster.Get().(bool) {
				drop(port, "superscope disabled")
			} else if port != plugging.Port2 {
				drop(port, "superscope must be in port 2")
			}

		case plugging.Justifier:
			if !c.prefs.JustifierMaster.Get().(bool) {
				drop(port, "justifier disabled")
			} else if port != plugging.Port2 {
				drop(port, "justifier must be in port 2")
			}

		case plugging.MacsRifle:
			if !c.prefs.MacsRifleMaster.Get().(bool) {
				drop(port, "macs rifle disabled")
			} else if port != plugging.Port2 {
				drop(port, "macs rifle must be in port 2")
			}
		}
	}

	return changed
}
