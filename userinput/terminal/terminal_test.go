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

package terminal_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/test"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/jetsetilly/joyser/userinput/terminal"
)

// reporter records reports in the form "key:x+" for presses and "key:x-"
// for releases. every input is bound.
type reporter struct {
	reports []string
}

func (r *reporter) ReportButton(id mapping.ID, pressed bool) {
	s := "-"
	if pressed {
		s = "+"
	}
	r.reports = append(r.reports, fmt.Sprintf("%s%s", userinput.IDName(id), s))
}

func (r *reporter) ReportAxis(id mapping.ID, value int16) {}

func (r *reporter) ReportPointer(id mapping.ID, x int16, y int16) {}

func (r *reporter) GetMapping(id mapping.ID) command.Command {
	return command.Generic{Code: command.Pause}
}

func (r *reporter) take() []string {
	s := r.reports
	r.reports = nil
	return s
}

func expectReports(t *testing.T, r *reporter, expected ...string) {
	t.Helper()
	got := r.take()
	test.ExpectEquality(t, fmt.Sprint(got), fmt.Sprint(expected))
}

func TestPressAndRelease(t *testing.T) {
	r := &reporter{}
	term := terminal.NewTerminal(2)

	term.Feed([]byte("ab\r"))
	test.ExpectFailure(t, term.Service(r))
	expectReports(t, r, "key:a+", "key:b+", "key:enter+")
	test.ExpectEquality(t, fmt.Sprint(term.Held()), "[a b enter]")

	term.Service(r)
	expectReports(t, r)

	term.Service(r)
	expectReports(t, r, "key:a-", "key:b-", "key:enter-")
	test.ExpectEquality(t, len(term.Held()), 0)
}

func TestAutoRepeat(t *testing.T) {
	r := &reporter{}
	term := terminal.NewTerminal(2)

	term.Feed([]byte("x"))
	term.Service(r)
	expectReports(t, r, "key:x+")

	// a repeated key keeps the key held without a second press
	term.Feed([]byte("x"))
	term.Service(r)
	expectReports(t, r)
	term.Feed([]byte("x"))
	term.Service(r)
	expectReports(t, r)

	term.Service(r)
	expectReports(t, r)
	term.Service(r)
	expectReports(t, r, "key:x-")
}

func TestSpecialKeys(t *testing.T) {
	r := &reporter{}
	term := terminal.NewTerminal(1)

	term.Feed([]byte{0x1b, '[', 'A', 0x1b, '[', 'D', ' ', '\t', 0x7f, 0x1b, 0x01})
	term.Service(r)
	expectReports(t, r, "key:up+", "key:left+", "key:space+", "key:tab+", "key:backspace+", "key:escape+")

	term.Service(r)
	expectReports(t, r, "key:backspace-", "key:escape-", "key:left-", "key:space-", "key:tab-", "key:up-")
}

func TestQuit(t *testing.T) {
	r := &reporter{}
	term := terminal.NewTerminal(terminal.DefaultHold)

	term.Feed([]byte{'q', 0x03})
	test.ExpectSuccess(t, term.Service(r))
	expectReports(t, r, "key:q+")
	test.ExpectFailure(t, term.Service(r))
}
