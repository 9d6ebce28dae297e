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

package snapshot_test

import (
	"testing"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/snapshot"
	"github.com/jetsetilly/joyser/test"
)

func TestLayout(t *testing.T) {
	r := snapshot.Record{
		Port1Cursors:     [2]uint8{3, 4},
		Port2Cursors:     [2]uint8{5, 6},
		MouseSpeed:       [2]uint8{1, 2},
		JustifierSelect:  1,
		PadRead:          true,
		Buttons:          [8]uint16{0x8000, 0, 0, 0, 0, 0, 0, 0x0010},
		Latched:          [2][4]uint16{{0x1234}, {0, 0, 0, 0xabcd}},
		Assignments:      [2]snapshot.Assignment{{Controller: 5, IDs: [4]int8{0, 1, -1, 3}}, {Controller: 1, IDs: [4]int8{2, -1, -1, -1}}},
		IOBit2:           true,
		MouseRefX:        [2]int16{-2, 0},
		ScopeRead:        0x82,
		JustifierButtons: 0x90,
		TurboPhase:       true,
		MacsX:            -1,
		MacsY:            0x0102,
		MacsButtons:      1,
	}

	b := r.Marshal()
	test.DemandEquality(t, len(b), snapshot.Size)

	test.ExpectEquality(t, b[0], byte(snapshot.Version))
	test.ExpectEquality(t, b[1], byte(3))
	test.ExpectEquality(t, b[2], byte(4))
	test.ExpectEquality(t, b[7], byte(5))
	test.ExpectEquality(t, b[8], byte(6))
	test.ExpectEquality(t, b[13], byte(1))
	test.ExpectEquality(t, b[14], byte(2))
	test.ExpectEquality(t, b[15], byte(1))
	test.ExpectEquality(t, b[24], byte(1))
	test.ExpectEquality(t, b[25], byte(0))

	// internal block
	test.ExpectEquality(t, b[26], byte(0x00))
	test.ExpectEquality(t, b[27], byte(0x80))
	test.ExpectEquality(t, b[26+14], byte(0x10))
	test.ExpectEquality(t, b[26+16], byte(0x34))
	test.ExpectEquality(t, b[26+17], byte(0x12))
	test.ExpectEquality(t, b[26+30], byte(0xcd))
	test.ExpectEquality(t, b[26+31], byte(0xab))
	test.ExpectEquality(t, b[26+32], byte(5))
	test.ExpectEquality(t, b[26+35], byte(0xff))
	test.ExpectEquality(t, b[26+37], byte(1))
	test.ExpectEquality(t, b[26+42], byte(0x04))
	test.ExpectEquality(t, b[26+45], byte(0xfe))
	test.ExpectEquality(t, b[26+46], byte(0xff))
	test.ExpectEquality(t, b[26+55], byte(0x82))
	test.ExpectEquality(t, b[26+56], byte(0x90))
	test.ExpectEquality(t, b[26+57], byte(1))

	// rifle
	test.ExpectEquality(t, b[86], byte(0xff))
	test.ExpectEquality(t, b[87], byte(0xff))
	test.ExpectEquality(t, b[88], byte(0x02))
	test.ExpectEquality(t, b[89], byte(0x01))
	test.ExpectEquality(t, b[90], byte(1))

	s, err := snapshot.Unmarshal(b)
	test.DemandSuccess(t, err)
	r.Version = snapshot.Version
	test.ExpectEquality(t, s, r)
}

func TestReservedIgnored(t *testing.T) {
	b := snapshot.Record{}.Marshal()
	for _, o := range []int{3, 4, 5, 6, 9, 10, 11, 12, 16, 20, 23, 26 + 58, 26 + 59} {
		b[o] = 0xff
	}
	r, err := snapshot.Unmarshal(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, snapshot.Record{Version: snapshot.Version})
}

func TestVersion(t *testing.T) {
	b := snapshot.Record{}.Marshal()
	b[0] = 2
	_, err := snapshot.Unmarshal(b)
	test.ExpectSuccess(t, curated.Is(err, snapshot.UnsupportedVersion))

	// the version is checked before the length
	_, err = snapshot.Unmarshal([]byte{0})
	test.ExpectSuccess(t, curated.Is(err, snapshot.UnsupportedVersion))

	_, err = snapshot.Unmarshal([]byte{snapshot.Version, 0, 0})
	test.ExpectSuccess(t, curated.Is(err, snapshot.TooShort))

	_, err = snapshot.Unmarshal(nil)
	test.ExpectSuccess(t, curated.Is(err, snapshot.TooShort))
}
