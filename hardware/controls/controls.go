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
	"fmt"
	"strings"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/hardware/controls/peripherals"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/hardware/preferences"
)

// Host defines the functions that must be implemented by the embedding
// application.
type Host interface {
	mapping.Poller

	// HandlePortCommand receives port commands when they are applied. The
	// meaning of data1 and data2 is the same as for ApplyCommand()
	HandlePortCommand(cmd command.Port, data1 int16, data2 int16)
}

// CommandHandler is implemented by hosts that want to receive the
// meta-commands that the controls don't handle themselves.
type CommandHandler interface {
	HandleCommand(code command.GenericCode, pressed bool)
}

// FrameObserver implementations are notified at the end of every frame with
// the state of the two ports.
type FrameObserver interface {
	ObserveFrame(frame int, state [2]PortState)
}

// the value of a read cursor that has run past the end of every bit stream
const exhausted = 0xff

// serialPort is the shift register of one port.
type serialPort struct {
	// data captured at the release of the latch. streams longer than 16 bits
	// run on into the next word
	data [4]uint16

	// read cursors. only the multitap uses the second cursor
	cursor [2]uint8
}

// running multi-press sequence.
type multiPress struct {
	index int32
	seq   [][]command.Command
	step  int
}

// Controls is the context for the controls subsystem.
type Controls struct {
	host  Host
	prefs *preferences.Preferences

	mapping *mapping.Registry

	// assign is the configuration requested by SetController(). active is the
	// configuration seen by the serial lines. assign is copied to active when
	// the latch is released
	assign [2]plugging.Assignment
	active [2]plugging.Assignment

	// logical controllers
	Pads      [8]peripherals.Joypad
	Mice      [2]peripherals.Mouse
	Scope     peripherals.Superscope
	Justifier peripherals.Justifier
	Macs      peripherals.MacsRifle
	Pseudo    [8]peripherals.PseudoPointer

	// serial lines
	latch   bool
	iobit   [2]bool
	openBus uint8
	serial  [2]serialPort

	// turbo buttons are down when turboPhase is true. the phase flips every
	// TurboPeriod frames
	turboPhase bool
	turboCount int

	// whether the console read the serial lines this frame and the previous
	// frame
	padRead     bool
	padReadLast bool

	multis []multiPress

	// the position the light gun latches the video counters at this frame
	gunX, gunY int16
	gunLatch   bool

	observers []FrameObserver
	frame     int
}

// NewControls is the preferred method of initialisation for the Controls
// type. The host may be nil if there are no polled inputs and no port
// commands. If prefs is nil the default preferences are used.
func NewControls(host Host, prefs *preferences.Preferences) (*Controls, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(PreferencesFailed, err)
		}
	}

	c := &Controls{
		host:    host,
		prefs:   prefs,
		mapping: mapping.NewRegistry(host),
	}

	c.Reset()

	return c, nil
}

// Prefs returns the preferences used by the controls.
func (c *Controls) Prefs() *preferences.Preferences {
	return c.prefs
}

// Registry returns the mapping registry. It is useful for inspecting bindings
// and for registering multi-press sequences.
func (c *Controls) Registry() *mapping.Registry {
	return c.mapping
}

// AttachFrameObserver adds an observer to be notified at the end of every
// frame.
func (c *Controls) AttachFrameObserver(o FrameObserver) {
	c.observers = append(c.observers, o)
}

func (c *Controls) String() string {
	s := strings.Builder{}
	for p := plugging.Port1; p <= plugging.Port2; p++ {
		if p > plugging.Port1 {
			s.WriteString("  ")
		}
		s.WriteString(fmt.Sprintf("%s: %s", p, c.active[p]))
		if c.assign[p] != c.active[p] {
			s.WriteString(fmt.Sprintf(" (pending %s)", c.assign[p]))
		}
	}
	s.WriteString(fmt.Sprintf("  latch: %v", c.latch))
	return s.String()
}

// Reset the subsystem to the power-on state. A joypad is plugged into each
// port and every logical controller is released. Bindings are not affected.
func (c *Controls) Reset() {
	c.assign[plugging.Port1] = plugging.NewAssignment(plugging.Joypad, 0)
	c.assign[plugging.Port2] = plugging.NewAssignment(plugging.Joypad, 1)
	c.active = c.assign

	for i := range c.Pads {
		c.Pads[i].Reset()
	}
	for i := range c.Mice {
		c.Mice[i].Reset()
	}
	c.Scope.Reset()
	c.Justifier.Reset()
	c.Macs.Reset()
	for i := range c.Pseudo {
		c.Pseudo[i].Reset()
	}

	c.turboPhase = false
	c.turboCount = 0
	c.gunLatch = false
	c.frame = 0

	c.SoftReset()
}

// SoftReset returns the serial lines to the idle state and stops any running
// multi-press sequences. Controller assignments and controller state are not
// affected.
func (c *Controls) SoftReset() {
	c.latch = false
	c.iobit = [2]bool{true, true}
	for p := range c.serial {
		c.serial[p] = serialPort{cursor: [2]uint8{exhausted, exhausted}}
	}
	c.padRead = false
	c.padReadLast = false
	c.stopMultis()
}
