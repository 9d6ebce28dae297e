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

import "fmt"

// GenericCode identifies a meta-command. Some meta-commands are handled by
// the controls themselves (SwapJoypads, IncTurboSpeed, DecTurboSpeed and the
// mouse speed commands) and the rest are passed to the host.
type GenericCode int

// List of valid GenericCode values.
const (
	ExitEmu GenericCode = iota
	Pause
	Reset
	SoftReset
	EmuTurbo
	ToggleEmuTurbo
	IncEmuTurbo
	DecEmuTurbo
	IncFrameRate
	DecFrameRate
	IncFrameTime
	DecFrameTime
	IncTurboSpeed
	DecTurboSpeed
	SwapJoypads
	Mouse1Speed
	Mouse2Speed
	ClipWindows
	ToggleBG0
	ToggleBG1
	ToggleBG2
	ToggleBG3
	ToggleSprites
	ToggleTransparency
	Screenshot
	SaveSPC
	LoadFreezeFile
	SaveFreezeFile
	LoadOopsFile
	Rewind
	BeginRecordingMovie
	EndRecordingMovie
	LoadMovie
	SeekToFrame
	Debugger
	QuickLoad000
	QuickLoad001
	QuickLoad002
	QuickLoad003
	QuickLoad004
	QuickLoad005
	QuickLoad006
	QuickLoad007
	QuickLoad008
	QuickLoad009
	QuickSave000
	QuickSave001
	QuickSave002
	QuickSave003
	QuickSave004
	QuickSave005
	QuickSave006
	QuickSave007
	QuickSave008
	QuickSave009

	numGenericCodes
)

var genericNames = [...]string{
	"ExitEmu",
	"Pause",
	"Reset",
	"SoftReset",
	"EmuTurbo",
	"ToggleEmuTurbo",
	"IncEmuTurbo",
	"DecEmuTurbo",
	"IncFrameRate",
	"DecFrameRate",
	"IncFrameTime",
	"DecFrameTime",
	"IncTurboSpeed",
	"DecTurboSpeed",
	"SwapJoypads",
	"Mouse1Speed",
	"Mouse2Speed",
	"ClipWindows",
	"ToggleBG0",
	"ToggleBG1",
	"ToggleBG2",
	"ToggleBG3",
	"ToggleSprites",
	"ToggleTransparency",
	"Screenshot",
	"SaveSPC",
	"LoadFreezeFile",
	"SaveFreezeFile",
	"LoadOopsFile",
	"Rewind",
	"BeginRecordingMovie",
	"EndRecordingMovie",
	"LoadMovie",
	"SeekToFrame",
	"Debugger",
	"QuickLoad000",
	"QuickLoad001",
	"QuickLoad002",
	"QuickLoad003",
	"QuickLoad004",
	"QuickLoad005",
	"QuickLoad006",
	"QuickLoad007",
	"QuickLoad008",
	"QuickLoad009",
	"QuickSave000",
	"QuickSave001",
	"QuickSave002",
	"QuickSave003",
	"QuickSave004",
	"QuickSave005",
	"QuickSave006",
	"QuickSave007",
	"QuickSave008",
	"QuickSave009",
}

// the names table must have an entry for every code
var _ = [1]struct{}{}[len(genericNames)-int(numGenericCodes)]

func (c GenericCode) String() string {
	if c < 0 || c >= numGenericCodes {
		return fmt.Sprintf("Generic(%d)", int(c))
	}
	return genericNames[c]
}

// Valid returns true if the code is a defined meta-command.
func (c GenericCode) Valid() bool {
	return c >= 0 && c < numGenericCodes
}

// GenericNames returns the names of every meta-command, in code order.
func GenericNames() []string {
	n := make([]string, len(genericNames))
	copy(n, genericNames[:])
	return n
}

// ParseGeneric returns the meta-command with the name. Names are case sensitive.
func ParseGeneric(name string) (GenericCode, bool) {
	for i, n := range genericNames {
		if n == name {
			return GenericCode(i), true
		}
	}
	return 0, false
}
