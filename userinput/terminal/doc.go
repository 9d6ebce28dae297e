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

// Package terminal is a host backend that reads key presses from a posix
// terminal.
//
// A terminal does not report key releases. A key is released after it has
// been held for a number of frames without being pressed again. Auto-repeat
// from the terminal keeps the key held.
//
// Keys are read on a separate goroutine and given to the controls by the
// Service() function, which should be called once per frame from the
// emulation goroutine.
package terminal
