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

// Package plugging describes what is plugged into the two controller ports.
//
// An Assignment names a controller type and the logical devices it uses. For
// example, a joypad in port 1 might be logical joypad 3, and a multitap in
// port 2 might carry logical joypads 4 to 7. The logical devices hold the
// input state. The assignment decides which of them are read by the
// console.
package plugging
