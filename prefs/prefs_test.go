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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/joyser/prefs"
	"github.com/jetsetilly/joyser/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("true"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(4))
	test.ExpectEquality(t, v.Get().(int), 4)
	test.ExpectSuccess(t, v.Set("12"))
	test.ExpectEquality(t, v.Get().(int), 12)
	test.ExpectSuccess(t, v.Set(float64(3)))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectFailure(t, v.Set(float64(3.5)))
	test.ExpectFailure(t, v.Set("three"))
	test.ExpectEquality(t, v.Get().(int), 3)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 || nv.(int) > 15 {
			return fmt.Errorf("out of range")
		}
		return nil
	})

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(16))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestCollection(t *testing.T) {
	var a prefs.Bool
	var b prefs.Int

	c := prefs.NewCollection()
	test.ExpectSuccess(t, c.Add("controls.mouse", &a))
	test.ExpectSuccess(t, c.Add("controls.turbo", &b))
	test.ExpectFailure(t, c.Add("controls.Mouse", &b))

	test.ExpectSuccess(t, c.Set("Controls.Mouse", true))
	test.ExpectSuccess(t, c.Set("controls.turbo", "2"))
	test.ExpectFailure(t, c.Set("controls.missing", "2"))
	test.ExpectEquality(t, c.String(), "controls.mouse :: true\ncontrols.turbo :: 2\n")

	test.ExpectSuccess(t, c.Reset())
	test.ExpectEquality(t, a.Get().(bool), false)
}
