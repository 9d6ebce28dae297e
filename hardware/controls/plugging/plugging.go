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

package plugging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/joyser/curated"
)

// PortID differentiates the two controller ports.
type PortID int

// List of defined PortIDs.
const (
	Port1 PortID = iota
	Port2
)

func (p PortID) String() string {
	switch p {
	case Port1:
		return "port1"
	case Port2:
		return "port2"
	}
	return fmt.Sprintf("port(%d)", int(p))
}

// Valid returns true if the PortID is one of the two controller ports.
func (p PortID) Valid() bool {
	return p == Port1 || p == Port2
}

// Controller is the type of device plugged into a port.
type Controller int

// List of valid Controller values.
const (
	None Controller = iota
	Joypad
	Mouse
	Superscope
	Justifier
	Multitap
	MacsRifle
)

var controllerNames = [...]string{
	None:       "none",
	Joypad:     "joypad",
	Mouse:      "mouse",
	Superscope: "superscope",
	Justifier:  "justifier",
	Multitap:   "multitap",
	MacsRifle:  "macsrifle",
}

func (c Controller) String() string {
	if c < 0 || int(c) >= len(controllerNames) {
		return fmt.Sprintf("controller(%d)", int(c))
	}
	return controllerNames[c]
}

// Sentinal error patterns.
const (
	UnknownController = "plugging: unknown controller: %s"
	InvalidAssignment = "plugging: invalid assignment: %s"
)

// ParseController returns the controller with the name. Names are not case
// sensitive.
func ParseController(name string) (Controller, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, c := range controllerNames {
		if c == n {
			return Controller(i), nil
		}
	}
	return None, curated.Errorf(UnknownController, name)
}

// Unused is the value of an unused logical device slot.
const Unused int8 = -1

// Assignment of a controller type and its logical devices to a port.
//
// The meaning of the IDs depends on the controller:
//
//	Joypad     IDs[0] is the logical joypad (0 to 7)
//	Mouse      IDs[0] is the logical mouse (0 or 1)
//	Justifier  IDs[0] is 0 for one gun and 1 for two guns
//	Multitap   IDs[0] to IDs[3] are logical joypads (0 to 7) or Unused
//
// Other controllers use no IDs.
type Assignment struct {
	Controller Controller
	IDs        [4]int8
}

// NewAssignment is the preferred method of initialisation for the Assignment
// type. The result is normalised.
func NewAssignment(c Controller, ids ...int8) Assignment {
	a := Assignment{Controller: c, IDs: [4]int8{Unused, Unused, Unused, Unused}}
	copy(a.IDs[:], ids)
	return a.Normalise()
}

// Normalise returns a copy of the assignment with unused slots set to Unused
// and out of range IDs resolved. An assignment that cannot be made sense of
// becomes None.
func (a Assignment) Normalise() Assignment {
	n := Assignment{Controller: a.Controller, IDs: [4]int8{Unused, Unused, Unused, Unused}}

	switch a.Controller {
	case Joypad:
		if a.IDs[0] < 0 || a.IDs[0] > 7 {
			return NewNone()
		}
		n.IDs[0] = a.IDs[0]
	case Mouse:
		if a.IDs[0] < 0 || a.IDs[0] > 1 {
			return NewNone()
		}
		n.IDs[0] = a.IDs[0]
	case Justifier:
		if a.IDs[0] == 1 {
			n.IDs[0] = 1
		} else {
			n.IDs[0] = 0
		}
	case Multitap:
		for i, id := range a.IDs {
			if id >= 0 && id <= 7 {
				n.IDs[i] = id
			}
		}
	case Superscope, MacsRifle, None:
	default:
		return NewNone()
	}

	return n
}

// NewNone returns the assignment of an empty port.
func NewNone() Assignment {
	return Assignment{Controller: None, IDs: [4]int8{Unused, Unused, Unused, Unused}}
}

// Pads returns the logical joypads used by the assignment.
func (a Assignment) Pads() []int8 {
	var p []int8
	switch a.Controller {
	case Joypad:
		p = append(p, a.IDs[0])
	case Multitap:
		for _, id := range a.IDs {
			if id != Unused {
				p = append(p, id)
			}
		}
	}
	return p
}

// String returns the text form of the assignment. Device numbers are one
// based and unused multitap slots are written as a dash, eg. "multitap 1 2 - 4".
func (a Assignment) String() string {
	s := strings.Builder{}
	s.WriteString(a.Controller.String())

	switch a.Controller {
	case Joypad, Mouse, Justifier:
		fmt.Fprintf(&s, " %d", a.IDs[0]+1)
	case Multitap:
		for _, id := range a.IDs {
			if id == Unused {
				s.WriteString(" -")
			} else {
				fmt.Fprintf(&s, " %d", id+1)
			}
		}
	}

	return s.String()
}

// ParseAssignment is the inverse of Assignment.String(). The device number
// can be omitted for joypads, mice and justifiers, in which case the first
// device is used.
func ParseAssignment(s string) (Assignment, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return NewNone(), curated.Errorf(InvalidAssignment, s)
	}

	c, err := ParseController(f[0])
	if err != nil {
		return NewNone(), curated.Errorf(InvalidAssignment, err)
	}

	ids := [4]int8{Unused, Unused, Unused, Unused}

	switch c {
	case Joypad, Mouse, Justifier:
		if len(f) > 2 {
			return NewNone(), curated.Errorf(InvalidAssignment, s)
		}
		ids[0] = 0
		if len(f) == 2 {
			n, err := strconv.Atoi(f[1])
			if err != nil {
				return NewNone(), curated.Errorf(InvalidAssignment, s)
			}
			ids[0] = int8(n - 1)
		}
	case Multitap:
		if len(f) > 5 {
			return NewNone(), curated.Errorf(InvalidAssignment, s)
		}
		for i, v := range f[1:] {
			if v == "-" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 8 {
				return NewNone(), curated.Errorf(InvalidAssignment, s)
			}
			ids[i] = int8(n - 1)
		}
	default:
		if len(f) > 1 {
			return NewNone(), curated.Errorf(InvalidAssignment, s)
		}
	}

	a := Assignment{Controller: c, IDs: ids}
	n := a.Normalise()
	if n != a {
		return NewNone(), curated.Errorf(InvalidAssignment, s)
	}

	return n, nil
}
