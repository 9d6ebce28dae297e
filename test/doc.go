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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions report a failure with t.Errorf() and allow the test
// to continue. The Demand* functions report with t.Fatalf() and stop the
// test immediately. Demand* should be used when the rest of the test makes no
// sense if the condition does not hold, for example when a snapshot buffer
// could not be created.
//
// ExpectSuccess() and ExpectFailure() work with bool and error values. A nil
// value is considered a success, because of how errors are usually reported.
//
// All functions accept optional tags. The tags are printed with the failure
// message and are useful when the test is inside a loop:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, c.got, c.want, i)
//	}
//
// CompareWriter implements the io.Writer interface and should be used to
// capture output for comparison.
package test
