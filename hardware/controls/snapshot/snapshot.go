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

package snapshot

import (
	"encoding/binary"

	"github.com/jetsetilly/joyser/curated"
)

// Size of the record in bytes.
const Size = 91

// Version is the record version written by Marshal().
const Version = 1

// Offsets of the fields in the record.
const (
	OffVersion         = 0
	OffPort1Cursors    = 1
	OffPort2Cursors    = 7
	OffMouseSpeed      = 13
	OffJustifierSelect = 15
	OffPadRead         = 24
	OffPadReadLast     = 25
	OffInternal        = 26
	OffMacs            = 86
)

// Offsets of the fields in the internal block, relative to OffInternal.
const (
	offButtons          = 0
	offLatched          = 16
	offAssignments      = 32
	offFlags            = 42
	offMouseButtons     = 43
	offMouseRef         = 45
	offScope            = 53
	offJustifierButtons = 56
	offTurboPhase       = 57
	internalSize        = 60
)

// bits in the internal flags byte.
const (
	flagLatch  = 0x01
	flagIOBit1 = 0x02
	flagIOBit2 = 0x04
)

// Sentinal error patterns.
const (
	UnsupportedVersion = "snapshot: unsupported version (%d)"
	TooShort           = "snapshot: record too short (%d bytes)"
)

// Assignment is the stored form of a port assignment.
type Assignment struct {
	Controller uint8
	IDs        [4]int8
}

// Record is the decoded form of the save-state record.
type Record struct {
	Version         uint8
	Port1Cursors    [2]uint8
	Port2Cursors    [2]uint8
	MouseSpeed      [2]uint8
	JustifierSelect uint8
	PadRead         bool
	PadReadLast     bool

	// live joypad buttons
	Buttons [8]uint16

	// latched serial data
	Latched [2][4]uint16

	Assignments [2]Assignment

	Latch  bool
	IOBit1 bool
	IOBit2 bool

	MouseButtons [2]uint8
	MouseRefX    [2]int16
	MouseRefY    [2]int16

	ScopePhys uint8
	ScopeNext uint8
	ScopeRead uint8

	JustifierButtons uint8
	TurboPhase       bool

	MacsX       int16
	MacsY       int16
	MacsButtons uint8
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Marshal returns the record in its fixed layout. The version byte is always
// written as Version.
func (r Record) Marshal() []byte {
	buf := make([]byte, Size)

	buf[OffVersion] = Version
	copy(buf[OffPort1Cursors:], r.Port1Cursors[:])
	copy(buf[OffPort2Cursors:], r.Port2Cursors[:])
	copy(buf[OffMouseSpeed:], r.MouseSpeed[:])
	buf[OffJustifierSelect] = r.JustifierSelect
	buf[OffPadRead] = boolByte(r.PadRead)
	buf[OffPadReadLast] = boolByte(r.PadReadLast)

	in := buf[OffInternal : OffInternal+internalSize]

	for i, b := range r.Buttons {
		binary.LittleEndian.PutUint16(in[offButtons+i*2:], b)
	}

	for p := range r.Latched {
		for i, w := range r.Latched[p] {
			binary.LittleEndian.PutUint16(in[offLatched+p*8+i*2:], w)
		}
	}

	for p, a := range r.Assignments {
		o := offAssignments + p*5
		in[o] = a.Controller
		for i, id := range a.IDs {
			in[o+1+i] = byte(id)
		}
	}

	var flags byte
	if r.Latch {
		flags |= flagLatch
	}
	if r.IOBit1 {
		flags |= flagIOBit1
	}
	if r.IOBit2 {
		flags |= flagIOBit2
	}
	in[offFlags] = flags

	copy(in[offMouseButtons:], r.MouseButtons[:])
	for i := range r.MouseRefX {
		binary.LittleEndian.PutUint16(in[offMouseRef+i*4:], uint16(r.MouseRefX[i]))
		binary.LittleEndian.PutUint16(in[offMouseRef+i*4+2:], uint16(r.MouseRefY[i]))
	}

	in[offScope] = r.ScopePhys
	in[offScope+1] = r.ScopeNext
	in[offScope+2] = r.ScopeRead
	in[offJustifierButtons] = r.JustifierButtons
	in[offTurboPhase] = boolByte(r.TurboPhase)

	binary.LittleEndian.PutUint16(buf[OffMacs:], uint16(r.MacsX))
	binary.LittleEndian.PutUint16(buf[OffMacs+2:], uint16(r.MacsY))
	buf[OffMacs+4] = r.MacsButtons

	return buf
}

// Unmarshal decodes a record. The version is checked before anything else.
// Reserved bytes are ignored.
func Unmarshal(buf []byte) (Record, error) {
	var r Record

	if len(buf) < 1 {
		return r, curated.Errorf(TooShort, len(buf))
	}

	r.Version = buf[OffVersion]
	if r.Version != Version {
		return r, curated.Errorf(UnsupportedVersion, r.Version)
	}

	if len(buf) < Size {
		return r, curated.Errorf(TooShort, len(buf))
	}

	copy(r.Port1Cursors[:], buf[OffPort1Cursors:])
	copy(r.Port2Cursors[:], buf[OffPort2Cursors:])
	copy(r.MouseSpeed[:], buf[OffMouseSpeed:])
	r.JustifierSelect = buf[OffJustifierSelect]
	r.PadRead = buf[OffPadRead] != 0
	r.PadReadLast = buf[OffPadReadLast] != 0

	in := buf[OffInternal : OffInternal+internalSize]

	for i := range r.Buttons {
		r.Buttons[i] = binary.LittleEndian.Uint16(in[offButtons+i*2:])
	}

	for p := range r.Latched {
		for i := range r.Latched[p] {
			r.Latched[p][i] = binary.LittleEndian.Uint16(in[offLatched+p*8+i*2:])
		}
	}

	for p := range r.Assignments {
		o := offAssignments + p*5
		r.Assignments[p].Controller = in[o]
		for i := range r.Assignments[p].IDs {
			r.Assignments[p].IDs[i] = int8(in[o+1+i])
		}
	}

	flags := in[offFlags]
	r.Latch = flags&flagLatch == flagLatch
	r.IOBit1 = flags&flagIOBit1 == flagIOBit1
	r.IOBit2 = flags&flagIOBit2 == flagIOBit2

	copy(r.MouseButtons[:], in[offMouseButtons:])
	for i := range r.MouseRefX {
		r.MouseRefX[i] = int16(binary.LittleEndian.Uint16(in[offMouseRef+i*4:]))
		r.MouseRefY[i] = int16(binary.LittleEndian.Uint16(in[offMouseRef+i*4+2:]))
	}

	r.ScopePhys = in[offScope]
	r.ScopeNext = in[offScope+1]
	r.ScopeRead = in[offScope+2]
	r.JustifierButtons = in[offJustifierButtons]
	r.TurboPhase = in[offTurboPhase] != 0

	r.MacsX = int16(binary.LittleEndian.Uint16(buf[OffMacs:]))
	r.MacsY = int16(binary.LittleEndian.Uint16(buf[OffMacs+2:]))
	r.MacsButtons = buf[OffMacs+4]

	return r, nil
}
