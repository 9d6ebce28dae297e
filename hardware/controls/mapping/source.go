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

package mapping

import "github.com/jetsetilly/joyser/hardware/controls/command"

// Poller is implemented by hosts that can be asked for the current state of
// an input. The found value is false if the host doesn't know about the
// input. In that case the other values are not used.
type Poller interface {
	PollButton(id ID) (pressed bool, found bool)
	PollPointer(id ID) (x int16, y int16, found bool)
	PollAxis(id ID) (value int16, found bool)
}

// Sample is the state of an input. Which fields are meaningful depends on the
// category of the command the input is bound to.
type Sample struct {
	Pressed bool
	Value   int16
	X, Y    int16
}

// Source is where the value of a bound input comes from.
type Source interface {
	// whether the source asks the host for values
	Polled() bool

	// the most recent value and whether a value has ever been seen
	Last() (Sample, bool)

	// record a new value. returns true if the value is different to the
	// previous value
	Store(s Sample) bool
}

// Cache is the Source for inputs the host reports as they change.
type Cache struct {
	last  Sample
	valid bool
}

// Polled implements the Source interface.
func (c *Cache) Polled() bool {
	return false
}

// Last implements the Source interface.
func (c *Cache) Last() (Sample, bool) {
	return c.last, c.valid
}

// Store implements the Source interface.
func (c *Cache) Store(s Sample) bool {
	changed := !c.valid || c.last != s
	c.last = s
	c.valid = true
	return changed
}

// Bridge is the Source for inputs the controls poll. The most recent polled
// value is remembered so that unchanged buttons are not applied again.
type Bridge struct {
	Cache
	id   ID
	host Poller
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(id ID, host Poller) *Bridge {
	return &Bridge{id: id, host: host}
}

// Polled implements the Source interface.
func (b *Bridge) Polled() bool {
	return true
}

// Refresh polls the host for the current value of the input. The category
// decides which of the host's poll functions is used. The found value is
// false if the host doesn't know the input, in which case the previous value
// is left untouched.
func (b *Bridge) Refresh(cat command.Category) (s Sample, changed bool, found bool) {
	if b.host == nil {
		return b.last, false, false
	}

	s = b.last

	switch cat {
	case command.ButtonCategory:
		s.Pressed, found = b.host.PollButton(b.id)
	case command.AxisCategory:
		s.Value, found = b.host.PollAxis(b.id)
	case command.PointerCategory:
		s.X, s.Y, found = b.host.PollPointer(b.id)
	}

	if !found {
		return b.last, false, false
	}

	return s, b.Store(s), true
}
