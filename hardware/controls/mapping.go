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
)

// MapButton binds an input to a button command. If poll is true the host is
// asked for the state of the input when it is needed. Otherwise the host must
// call ReportButton() when the state changes.
//
// Returns false if the command is not a button command. The existing binding
// is left in place in that case.
func (c *Controls) MapButton(id mapping.ID, cmd command.Command, poll bool) bool {
	return c.mapping.MapButton(id, cmd, poll)
}

// MapAxis binds an input to an axis command. See MapButton() for the meaning
// of poll.
func (c *Controls) MapAxis(id mapping.ID, cmd command.Command, poll bool) bool {
	return c.mapping.MapAxis(id, cmd, poll)
}

// MapPointer binds an input to a pointer command. See MapButton() for the
// meaning of poll.
func (c *Controls) MapPointer(id mapping.ID, cmd command.Command, poll bool) bool {
	return c.mapping.MapPointer(id, cmd, poll)
}

// GetMapping returns the command bound to the input. Unbound inputs return
// the None command.
func (c *Controls) GetMapping(id mapping.ID) command.Command {
	return c.mapping.Lookup(id)
}

// UnmapID removes the binding for the input.
func (c *Controls) UnmapID(id mapping.ID) {
	c.mapping.Unmap(id)
}

// UnmapAll removes every binding and multi-press sequence.
func (c *Controls) UnmapAll() {
	c.stopMultis()
	c.mapping.UnmapAll()
}

// ReportButton tells the controls that a button input has changed. Reports
// for unbound inputs and for inputs bound to non-button commands are ignored,
// as are reports that don't change the state of the input.
func (c *Controls) ReportButton(id mapping.ID, pressed bool) {
	b, ok := c.mapping.Binding(id)
	if !ok || b.Command.Category() != command.ButtonCategory {
		return
	}
	if !b.Source.Store(mapping.Sample{Pressed: pressed}) {
		return
	}
	c.ApplyCommand(b.Command, boolData(pressed), 0)
}

// ReportAxis tells the controls that an axis input has changed.
func (c *Controls) ReportAxis(id mapping.ID, value int16) {
	b, ok := c.mapping.Binding(id)
	if !ok || b.Command.Category() != command.AxisCategory {
		return
	}
	b.Source.Store(mapping.Sample{Value: value})
	c.ApplyCommand(b.Command, value, 0)
}

// ReportPointer tells the controls that a pointer input has moved.
func (c *Controls) ReportPointer(id mapping.ID, x int16, y int16) {
	b, ok := c.mapping.Binding(id)
	if !ok || b.Command.Category() != command.PointerCategory {
		return
	}
	b.Source.Store(mapping.Sample{X: x, Y: y})
	c.ApplyCommand(b.Command, x, y)
}

// poll every polled input in the categories. the command is applied for
// buttons that have changed and for axes and pointers the host knows about.
func (c *Controls) poll(cats ...command.Category) {
	for _, cat := range cats {
		c.mapping.Polled(cat, func(id mapping.ID, b *mapping.Binding) {
			br, ok := b.Source.(*mapping.Bridge)
			if !ok {
				return
			}

			s, changed, found := br.Refresh(cat)
			if !found {
				return
			}

			switch cat {
			case command.ButtonCategory:
				if changed {
					c.ApplyCommand(b.Command, boolData(s.Pressed), 0)
				}
			case command.AxisCategory:
				c.ApplyCommand(b.Command, s.Value, 0)
			case command.PointerCategory:
				c.ApplyCommand(b.Command, s.X, s.Y)
			}
		})
	}
}

func boolData(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
