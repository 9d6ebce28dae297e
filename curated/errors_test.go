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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/test"
)

const testPattern = "snapshot: record too short (%d bytes)"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "snapshot: record too short (10 bytes)")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf("savestate: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	plain := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Has(plain, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("controls: unsupported version (%d)", 3)
	f := curated.Errorf("controls: %v", e)
	test.ExpectEquality(t, f.Error(), "controls: unsupported version (3)")
}

func TestUnwrap(t *testing.T) {
	plain := errors.New("plain error")
	e := curated.Errorf("config: %v", plain)
	test.ExpectSuccess(t, errors.Is(e, plain))
}
