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

import "fmt"

// ID is a host input identifier.
type ID uint32

// Reserved identifiers.
const (
	Invalid           ID = 0xffffffff
	PseudoPointerBase ID = Invalid - 8
	PseudoButtonBase  ID = PseudoPointerBase - 256
)

// Space is the region of the identifier space an ID belongs to.
type Space int

// List of valid Space values.
const (
	Ordinary Space = iota
	PseudoButton
	PseudoPointer
	InvalidSpace
)

func (s Space) String() string {
	switch s {
	case Ordinary:
		return "ordinary"
	case PseudoButton:
		return "pseudo-button"
	case PseudoPointer:
		return "pseudo-pointer"
	}
	return "invalid"
}

// Classify returns the region of the identifier space the ID belongs to.
func Classify(id ID) Space {
	switch {
	case id == Invalid:
		return InvalidSpace
	case id >= PseudoPointerBase:
		return PseudoPointer
	case id >= PseudoButtonBase:
		return PseudoButton
	}
	return Ordinary
}

// PseudoPointerID returns the identifier on which pseudo-pointer n (0 to 7)
// reports its position.
func PseudoPointerID(n uint8) ID {
	return PseudoPointerBase + ID(n&0x07)
}

// PseudoButtonID returns the identifier on which pseudo-button n reports its
// state.
func PseudoButtonID(n uint8) ID {
	return PseudoButtonBase + ID(n)
}

func (id ID) String() string {
	switch Classify(id) {
	case PseudoPointer:
		return fmt.Sprintf("pseudo-pointer %d", id-PseudoPointerBase)
	case PseudoButton:
		return fmt.Sprintf("pseudo-button %d", id-PseudoButtonBase)
	case InvalidSpace:
		return "invalid"
	}
	return fmt.Sprintf("%#08x", uint32(id))
}
