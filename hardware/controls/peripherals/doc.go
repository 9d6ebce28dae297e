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

// Package peripherals holds the live state of the logical controllers: eight
// joypads, two mice, the Super Scope, two Justifiers, the M.A.C.S. rifle and
// eight pseudo-pointers.
//
// The types in this package know how a command changes their state and how
// their state is presented on the serial line when latched. They know
// nothing about ports or bindings.
package peripherals
