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

package command

// Category of a command. The category decides which kind of input a command
// can be bound to.
type Category int

// List of valid Category values.
const (
	NoCategory Category = iota
	ButtonCategory
	AxisCategory
	PointerCategory
)

func (c Category) String() string {
	switch c {
	case ButtonCategory:
		return "Button"
	case AxisCategory:
		return "Axis"
	case PointerCategory:
		return "Pointer"
	}
	return "None"
}

// Command is implemented by every command type in this package. The set of
// command types is closed.
type Command interface {
	Category() Category
	String() string
	command()
}

// Name returns the text form of the command. It is the same as calling the
// String() function of the command and is provided for symmetry with Parse().
func Name(cmd Command) string {
	if cmd == nil {
		return None{}.String()
	}
	return cmd.String()
}

// Joypad button masks. The bit positions are the positions of the buttons in
// the serial data of a standard controller.
const (
	ButtonB      uint16 = 0x8000
	ButtonY      uint16 = 0x4000
	ButtonSelect uint16 = 0x2000
	ButtonStart  uint16 = 0x1000
	ButtonUp     uint16 = 0x0800
	ButtonDown   uint16 = 0x0400
	ButtonLeft   uint16 = 0x0200
	ButtonRight  uint16 = 0x0100
	ButtonA      uint16 = 0x0080
	ButtonX      uint16 = 0x0040
	ButtonL      uint16 = 0x0020
	ButtonR      uint16 = 0x0010
)

// Speed of a pseudo-pointer.
type Speed int

// List of valid Speed values.
const (
	Variable Speed = iota
	Slow
	Medium
	Fast
)

// None is the command for an unmapped input. Applying it does nothing.
type None struct{}

func (None) Category() Category { return NoCategory }
func (None) command() {}

// Joypad presses or releases one or more buttons on one of the eight logical
// joypads.
//
// If Toggle is set then the command doesn't press buttons. Instead it flips
// the turbo (or sticky) toggle state of the buttons in the mask.
type Joypad struct {
	Pad     uint8
	Buttons uint16
	Toggle  bool
	Turbo   bool
	Sticky  bool
}

func (Joypad) Category() Category { return ButtonCategory }
func (Joypad) command() {}

// Mouse presses or releases the buttons of one of the two mice.
type Mouse struct {
	Index uint8
	Left  bool
	Right bool
}

func (Mouse) Category() Category { return ButtonCategory }
func (Mouse) command() {}

// Superscope presses or releases Super Scope buttons. AimOffscreen holds the
// aim outside the screen for as long as the input is pressed.
type Superscope struct {
	Fire         bool
	Cursor       bool
	Turbo        bool
	Pause        bool
	AimOffscreen bool
}

func (Superscope) Category() Category { return ButtonCategory }
func (Superscope) command() {}

// Justifier presses or releases the buttons of one of the two Justifier guns.
type Justifier struct {
	Index        uint8
	Trigger      bool
	Start        bool
	AimOffscreen bool
}

func (Justifier) Category() Category { return ButtonCategory }
func (Justifier) command() {}

// MacsRifle presses or releases the trigger of the M.A.C.S. rifle.
type MacsRifle struct {
	Trigger bool
}

func (MacsRifle) Category() Category { return ButtonCategory }
func (MacsRifle) command() {}

// Multi starts the multi-press sequence registered at Index.
type Multi struct {
	Index int32
}

func (Multi) Category() Category { return ButtonCategory }
func (Multi) command() {}

// Generic is a named meta-command. See GenericCode.
type Generic struct {
	Code GenericCode
}

func (Generic) Category() Category { return ButtonCategory }
func (Generic) command() {}

// PseudoPointerButton moves one of the eight pseudo-pointers while the input
// is pressed. Vertical and Horizontal are -1 (up/left), 0 or 1 (down/right).
type PseudoPointerButton struct {
	Pointer    uint8
	Speed      Speed
	Vertical   int8
	Horizontal int8
}

func (PseudoPointerButton) Category() Category { return ButtonCategory }
func (PseudoPointerButton) command() {}

// JoypadAxis drives a pair of opposing joypad buttons from an axis. A
// deflection beyond the threshold presses one of the pair.
type JoypadAxis struct {
	Pad       uint8
	Axis      JoypadAxisPair
	Invert    bool
	Threshold uint8
}

func (JoypadAxis) Category() Category { return AxisCategory }
func (JoypadAxis) command() {}

// PseudoPointerAxis moves one of the eight pseudo-pointers along one axis.
type PseudoPointerAxis struct {
	Pointer  uint8
	Speed    Speed
	Invert   bool
	Vertical bool
}

func (PseudoPointerAxis) Category() Category { return AxisCategory }
func (PseudoPointerAxis) command() {}

// PseudoButtons turns an axis into two pseudo-buttons. Deflection beyond the
// threshold presses the pseudo-button for that direction.
type PseudoButtons struct {
	Threshold uint8
	Negative  uint8
	Positive  uint8
}

func (PseudoButtons) Category() Category { return AxisCategory }
func (PseudoButtons) command() {}

// AimTargets is the set of aimed devices a Pointer command positions.
type AimTargets uint8

// List of aim targets.
const (
	AimMouse1 AimTargets = 1 << iota
	AimMouse2
	AimSuperscope
	AimJustifier1
	AimJustifier2
	AimMacsRifle
)

// Pointer sets the aim position of every targeted device.
type Pointer struct {
	Targets AimTargets
}

func (Pointer) Category() Category { return PointerCategory }
func (Pointer) command() {}

// Port is a command reserved for the host. It is passed back to the host
// unchanged when applied.
type Port struct {
	Kind Category
	Data [4]byte
}

func (p Port) Category() Category { return p.Kind }
func (Port) command() {}

// JoypadAxisPair is one of the five button pairs a JoypadAxis can drive.
type JoypadAxisPair uint8

// List of valid JoypadAxisPair values.
const (
	AxisLeftRight JoypadAxisPair = iota
	AxisUpDown
	AxisYA
	AxisXB
	AxisLR
)

// Buttons returns the joypad masks for the negative and positive directions
// of the pair.
func (a JoypadAxisPair) Buttons() (negative uint16, positive uint16) {
	switch a {
	case AxisLeftRight:
		return ButtonLeft, ButtonRight
	case AxisUpDown:
		return ButtonUp, ButtonDown
	case AxisYA:
		return ButtonY, ButtonA
	case AxisXB:
		return ButtonX, ButtonB
	case AxisLR:
		return ButtonL, ButtonR
	}
	return 0, 0
}

// Deflection returns the absolute axis value that must be exceeded for a
// threshold to be passed.
func Deflection(threshold uint8) int32 {
	return (int32(threshold) + 1) * 32767 / 256
}

// Exceeds returns true if value lies beyond the threshold in either direction.
func Exceeds(value int16, threshold uint8) bool {
	v := int32(value)
	if v < 0 {
		v = -v
	}
	return v > Deflection(threshold)
}
