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

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/joyser/curated"
)

// Sentinal error patterns returned by Parse().
const (
	InvalidName = "command: invalid name: %s"
	InvalidPart = "command: invalid name: %s: %s"
)

type flag struct {
	name string
	bit  uint16
}

var joypadButtons = []flag{
	{"Up", ButtonUp},
	{"Down", ButtonDown},
	{"Left", ButtonLeft},
	{"Right", ButtonRight},
	{"A", ButtonA},
	{"B", ButtonB},
	{"X", ButtonX},
	{"Y", ButtonY},
	{"L", ButtonL},
	{"R", ButtonR},
	{"Start", ButtonStart},
	{"Select", ButtonSelect},
}

var joypadModes = []flag{
	{"Toggle", 0x01},
	{"Sticky", 0x02},
	{"Turbo", 0x04},
}

var mouseButtons = []flag{
	{"L", 0x01},
	{"R", 0x02},
}

var superscopeButtons = []flag{
	{"Fire", 0x01},
	{"Cursor", 0x02},
	{"ToggleTurbo", 0x04},
	{"Pause", 0x08},
}

var justifierButtons = []flag{
	{"Trigger", 0x01},
	{"Start", 0x02},
}

var macsButtons = []flag{
	{"Trigger", 0x01},
}

var aimTargets = []flag{
	{"Mouse1", uint16(AimMouse1)},
	{"Mouse2", uint16(AimMouse2)},
	{"Superscope", uint16(AimSuperscope)},
	{"Justifier1", uint16(AimJustifier1)},
	{"Justifier2", uint16(AimJustifier2)},
	{"MacsRifle", uint16(AimMacsRifle)},
}

var axisNames = [...][2]string{
	AxisLeftRight: {"Left", "Right"},
	AxisUpDown:    {"Up", "Down"},
	AxisYA:        {"Y", "A"},
	AxisXB:        {"X", "B"},
	AxisLR:        {"L", "R"},
}

var speedNames = [...]string{
	Variable: "Var",
	Slow:     "Slow",
	Medium:   "Med",
	Fast:     "Fast",
}

func (s Speed) String() string {
	if s < 0 || int(s) >= len(speedNames) {
		return fmt.Sprintf("Speed(%d)", int(s))
	}
	return speedNames[s]
}

// formatFlags joins the names of the set bits with a plus sign. an empty set
// is written as None.
func formatFlags(v uint16, flags []flag) string {
	s := strings.Builder{}
	for _, f := range flags {
		if v&f.bit == f.bit {
			if s.Len() > 0 {
				s.WriteRune('+')
			}
			s.WriteString(f.name)
		}
	}
	if s.Len() == 0 {
		return "None"
	}
	return s.String()
}

func parseFlags(s string, flags []flag) (uint16, bool) {
	if s == "None" {
		return 0, true
	}
	var v uint16
	for _, p := range strings.Split(s, "+") {
		found := false
		for _, f := range flags {
			if f.name == p {
				v |= f.bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return v, true
}

// parseModes consumes a word made of the joypad mode names written one after
// the other, in any order, eg. "StickyTurbo".
func parseModes(s string) (uint16, bool) {
	var v uint16
	for len(s) > 0 {
		found := false
		for _, f := range joypadModes {
			if strings.HasPrefix(s, f.name) && v&f.bit == 0 {
				v |= f.bit
				s = s[len(f.name):]
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return v, true
}

// parseIndex reads the one based device number following prefix and returns
// it zero based.
func parseIndex(head string, prefix string, count int) (uint8, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(head, prefix))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return uint8(n - 1), true
}

// thresholdPercent and percentThreshold convert between the eight bit
// threshold and the percentage used in names. percentThreshold rounds up so
// that every percentage survives the conversion in both directions.
func thresholdPercent(t uint8) int {
	return (int(t) + 1) * 100 / 256
}

func percentThreshold(pct int) uint8 {
	t := (pct*256+99)/100 - 1
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}

func parseThreshold(s string) (uint8, bool) {
	if !strings.HasPrefix(s, "T=") || !strings.HasSuffix(s, "%") {
		return 0, false
	}
	pct, err := strconv.Atoi(s[2 : len(s)-1])
	if err != nil || pct < 0 || pct > 100 {
		return 0, false
	}
	return percentThreshold(pct), true
}

func parseSpeed(s string) (Speed, bool) {
	for i, n := range speedNames {
		if n == s {
			return Speed(i), true
		}
	}
	return Variable, false
}

func (None) String() string {
	return "None"
}

func (c Joypad) String() string {
	var m uint16
	if c.Toggle {
		m |= 0x01
	}
	if c.Sticky {
		m |= 0x02
	}
	if c.Turbo {
		m |= 0x04
	}
	if m == 0 {
		return fmt.Sprintf("Joypad%d %s", c.Pad+1, formatFlags(c.Buttons, joypadButtons))
	}
	return fmt.Sprintf("Joypad%d %s %s", c.Pad+1,
		strings.ReplaceAll(formatFlags(m, joypadModes), "+", ""),
		formatFlags(c.Buttons, joypadButtons))
}

func (c Mouse) String() string {
	var m uint16
	if c.Left {
		m |= 0x01
	}
	if c.Right {
		m |= 0x02
	}
	return fmt.Sprintf("Mouse%d %s", c.Index+1, formatFlags(m, mouseButtons))
}

func aimPrefix(aim bool) string {
	if aim {
		return "AimOffscreen "
	}
	return ""
}

func (c Superscope) String() string {
	var m uint16
	if c.Fire {
		m |= 0x01
	}
	if c.Cursor {
		m |= 0x02
	}
	if c.Turbo {
		m |= 0x04
	}
	if c.Pause {
		m |= 0x08
	}
	return fmt.Sprintf("Superscope %s%s", aimPrefix(c.AimOffscreen), formatFlags(m, superscopeButtons))
}

func (c Justifier) String() string {
	var m uint16
	if c.Trigger {
		m |= 0x01
	}
	if c.Start {
		m |= 0x02
	}
	return fmt.Sprintf("Justifier%d %s%s", c.Index+1, aimPrefix(c.AimOffscreen), formatFlags(m, justifierButtons))
}

func (c MacsRifle) String() string {
	var m uint16
	if c.Trigger {
		m |= 0x01
	}
	return fmt.Sprintf("MacsRifle %s", formatFlags(m, macsButtons))
}

func (c Multi) String() string {
	return fmt.Sprintf("Multi#%d", c.Index)
}

func (c Generic) String() string {
	return c.Code.String()
}

func (c PseudoPointerButton) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "ButtonToPointer %d", c.Pointer+1)
	switch c.Vertical {
	case -1:
		s.WriteRune('u')
	case 1:
		s.WriteRune('d')
	}
	switch c.Horizontal {
	case -1:
		s.WriteRune('l')
	case 1:
		s.WriteRune('r')
	}
	fmt.Fprintf(&s, " %s", c.Speed)
	return s.String()
}

func (c JoypadAxis) String() string {
	var pair [2]string
	if int(c.Axis) < len(axisNames) {
		pair = axisNames[c.Axis]
	}
	if c.Invert {
		pair[0], pair[1] = pair[1], pair[0]
	}
	return fmt.Sprintf("Joypad%d Axis %s/%s T=%d%%", c.Pad+1, pair[0], pair[1], thresholdPercent(c.Threshold))
}

func (c PseudoPointerAxis) String() string {
	d := "h"
	if c.Vertical {
		d = "v"
	}
	if c.Invert {
		d += "-"
	}
	return fmt.Sprintf("AxisToPointer %d%s %s", c.Pointer+1, d, c.Speed)
}

func (c PseudoButtons) String() string {
	return fmt.Sprintf("AxisToButtons %d/%d T=%d%%", c.Negative, c.Positive, thresholdPercent(c.Threshold))
}

func (c Pointer) String() string {
	return fmt.Sprintf("Pointer %s", formatFlags(uint16(c.Targets), aimTargets))
}

func (c Port) String() string {
	return fmt.Sprintf("Port%s %s", c.Kind, hex.EncodeToString(c.Data[:]))
}

// Parse is the inverse of Name(). A name is a sequence of space separated
// fields:
//
//	None
//	<generic>                                    eg. Pause, SwapJoypads
//	Joypad<n> [Toggle][Sticky][Turbo] <buttons>  eg. Joypad1 Turbo A+B
//	Joypad<n> Axis <neg>/<pos> T=<pct>%          eg. Joypad2 Axis Up/Down T=50%
//	Mouse<n> L|R|L+R
//	Superscope [AimOffscreen] <buttons>          Fire Cursor ToggleTurbo Pause
//	Justifier<n> [AimOffscreen] <buttons>        Trigger Start
//	MacsRifle Trigger
//	Pointer <targets>                            Mouse1 Mouse2 Superscope Justifier1 Justifier2 MacsRifle
//	ButtonToPointer <n>[u|d][l|r] <speed>        eg. ButtonToPointer 1ul Med
//	AxisToPointer <n>h|v[-] <speed>              eg. AxisToPointer 2v- Var
//	AxisToButtons <neg>/<pos> T=<pct>%           eg. AxisToButtons 0/1 T=25%
//	Multi#<n>
//	PortButton|PortAxis|PortPointer <hex>
//
// Device numbers in names are one based. An empty button list is written as
// None. An inverted axis is written with the positive button first.
func Parse(name string) (Command, error) {
	f := strings.Fields(name)
	if len(f) == 0 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	head := f[0]
	args := f[1:]

	if len(args) == 0 {
		if head == "None" {
			return None{}, nil
		}
		if code, ok := ParseGeneric(head); ok {
			return Generic{Code: code}, nil
		}
		if strings.HasPrefix(head, "Multi#") {
			n, err := strconv.ParseInt(strings.TrimPrefix(head, "Multi#"), 10, 32)
			if err != nil || n < 0 {
				return None{}, curated.Errorf(InvalidPart, name, "multi index")
			}
			return Multi{Index: int32(n)}, nil
		}
		return None{}, curated.Errorf(InvalidName, name)
	}

	switch {
	case strings.HasPrefix(head, "Joypad"):
		pad, ok := parseIndex(head, "Joypad", 8)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "joypad number")
		}
		if args[0] == "Axis" {
			return parseJoypadAxis(name, pad, args[1:])
		}
		return parseJoypad(name, pad, args)

	case strings.HasPrefix(head, "Mouse"):
		idx, ok := parseIndex(head, "Mouse", 2)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "mouse number")
		}
		if len(args) != 1 {
			return None{}, curated.Errorf(InvalidName, name)
		}
		m, ok := parseFlags(args[0], mouseButtons)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "mouse buttons")
		}
		return Mouse{Index: idx, Left: m&0x01 == 0x01, Right: m&0x02 == 0x02}, nil

	case head == "Superscope":
		aim, buttons, ok := parseAimed(args)
		if !ok {
			return None{}, curated.Errorf(InvalidName, name)
		}
		m, ok := parseFlags(buttons, superscopeButtons)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "superscope buttons")
		}
		return Superscope{
			Fire:         m&0x01 == 0x01,
			Cursor:       m&0x02 == 0x02,
			Turbo:        m&0x04 == 0x04,
			Pause:        m&0x08 == 0x08,
			AimOffscreen: aim,
		}, nil

	case strings.HasPrefix(head, "Justifier"):
		idx, ok := parseIndex(head, "Justifier", 2)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "justifier number")
		}
		aim, buttons, ok := parseAimed(args)
		if !ok {
			return None{}, curated.Errorf(InvalidName, name)
		}
		m, ok := parseFlags(buttons, justifierButtons)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "justifier buttons")
		}
		return Justifier{Index: idx, Trigger: m&0x01 == 0x01, Start: m&0x02 == 0x02, AimOffscreen: aim}, nil

	case head == "MacsRifle":
		if len(args) != 1 {
			return None{}, curated.Errorf(InvalidName, name)
		}
		m, ok := parseFlags(args[0], macsButtons)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "rifle buttons")
		}
		return MacsRifle{Trigger: m&0x01 == 0x01}, nil

	case head == "Pointer":
		if len(args) != 1 {
			return None{}, curated.Errorf(InvalidName, name)
		}
		m, ok := parseFlags(args[0], aimTargets)
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "pointer targets")
		}
		return Pointer{Targets: AimTargets(m)}, nil

	case head == "ButtonToPointer":
		return parseButtonToPointer(name, args)

	case head == "AxisToPointer":
		return parseAxisToPointer(name, args)

	case head == "AxisToButtons":
		return parseAxisToButtons(name, args)

	case head == "PortButton", head == "PortAxis", head == "PortPointer":
		return parsePort(name, head, args)
	}

	return None{}, curated.Errorf(InvalidName, name)
}

// parseAimed splits the optional AimOffscreen field from the button list.
func parseAimed(args []string) (bool, string, bool) {
	switch len(args) {
	case 1:
		return false, args[0], true
	case 2:
		if args[0] == "AimOffscreen" {
			return true, args[1], true
		}
	}
	return false, "", false
}

func parseJoypad(name string, pad uint8, args []string) (Command, error) {
	var modes uint16
	switch len(args) {
	case 1:
	case 2:
		var ok bool
		modes, ok = parseModes(args[0])
		if !ok {
			return None{}, curated.Errorf(InvalidPart, name, "joypad mode")
		}
	default:
		return None{}, curated.Errorf(InvalidName, name)
	}

	buttons, ok := parseFlags(args[len(args)-1], joypadButtons)
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "joypad buttons")
	}

	return Joypad{
		Pad:     pad,
		Buttons: buttons,
		Toggle:  modes&0x01 == 0x01,
		Sticky:  modes&0x02 == 0x02,
		Turbo:   modes&0x04 == 0x04,
	}, nil
}

func parseJoypadAxis(name string, pad uint8, args []string) (Command, error) {
	if len(args) != 2 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	p := strings.Split(args[0], "/")
	if len(p) != 2 {
		return None{}, curated.Errorf(InvalidPart, name, "axis buttons")
	}

	cmd := JoypadAxis{Pad: pad}

	found := false
	for i, n := range axisNames {
		if n[0] == p[0] && n[1] == p[1] {
			cmd.Axis = JoypadAxisPair(i)
			found = true
			break
		}
		if n[1] == p[0] && n[0] == p[1] {
			cmd.Axis = JoypadAxisPair(i)
			cmd.Invert = true
			found = true
			break
		}
	}
	if !found {
		return None{}, curated.Errorf(InvalidPart, name, "axis buttons")
	}

	var ok bool
	cmd.Threshold, ok = parseThreshold(args[1])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "threshold")
	}

	return cmd, nil
}

// parsePointerNumber reads the leading pseudo-pointer number (1 to 8) and
// returns it zero based along with the remainder of the field.
func parsePointerNumber(s string) (uint8, string, bool) {
	if len(s) == 0 || s[0] < '1' || s[0] > '8' {
		return 0, "", false
	}
	return s[0] - '1', s[1:], true
}

func parseButtonToPointer(name string, args []string) (Command, error) {
	if len(args) != 2 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	ptr, dir, ok := parsePointerNumber(args[0])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "pointer number")
	}

	cmd := PseudoPointerButton{Pointer: ptr}

	if len(dir) > 0 {
		switch dir[0] {
		case 'u':
			cmd.Vertical = -1
			dir = dir[1:]
		case 'd':
			cmd.Vertical = 1
			dir = dir[1:]
		}
	}
	if len(dir) > 0 {
		switch dir[0] {
		case 'l':
			cmd.Horizontal = -1
			dir = dir[1:]
		case 'r':
			cmd.Horizontal = 1
			dir = dir[1:]
		}
	}
	if len(dir) > 0 {
		return None{}, curated.Errorf(InvalidPart, name, "pointer direction")
	}

	cmd.Speed, ok = parseSpeed(args[1])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "pointer speed")
	}

	return cmd, nil
}

func parseAxisToPointer(name string, args []string) (Command, error) {
	if len(args) != 2 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	ptr, dir, ok := parsePointerNumber(args[0])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "pointer number")
	}

	cmd := PseudoPointerAxis{Pointer: ptr}

	switch dir {
	case "h":
	case "h-":
		cmd.Invert = true
	case "v":
		cmd.Vertical = true
	case "v-":
		cmd.Vertical = true
		cmd.Invert = true
	default:
		return None{}, curated.Errorf(InvalidPart, name, "pointer axis")
	}

	cmd.Speed, ok = parseSpeed(args[1])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "pointer speed")
	}

	return cmd, nil
}

func parseAxisToButtons(name string, args []string) (Command, error) {
	if len(args) != 2 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	p := strings.Split(args[0], "/")
	if len(p) != 2 {
		return None{}, curated.Errorf(InvalidPart, name, "pseudo-buttons")
	}

	neg, err := strconv.ParseUint(p[0], 10, 8)
	if err != nil {
		return None{}, curated.Errorf(InvalidPart, name, "pseudo-buttons")
	}
	pos, err := strconv.ParseUint(p[1], 10, 8)
	if err != nil {
		return None{}, curated.Errorf(InvalidPart, name, "pseudo-buttons")
	}

	t, ok := parseThreshold(args[1])
	if !ok {
		return None{}, curated.Errorf(InvalidPart, name, "threshold")
	}

	return PseudoButtons{Threshold: t, Negative: uint8(neg), Positive: uint8(pos)}, nil
}

func parsePort(name string, head string, args []string) (Command, error) {
	if len(args) != 1 {
		return None{}, curated.Errorf(InvalidName, name)
	}

	cmd := Port{}
	switch head {
	case "PortButton":
		cmd.Kind = ButtonCategory
	case "PortAxis":
		cmd.Kind = AxisCategory
	case "PortPointer":
		cmd.Kind = PointerCategory
	}

	b, err := hex.DecodeString(args[0])
	if err != nil || len(b) != len(cmd.Data) {
		return None{}, curated.Errorf(InvalidPart, name, "port data")
	}
	copy(cmd.Data[:], b)

	return cmd, nil
}
