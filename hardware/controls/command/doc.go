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

// Package command defines the commands that input identifiers can be bound
// to. A command is a small immutable value describing what should happen to
// the emulated controllers, or to the emulator itself, when the bound input
// changes.
//
// Every command has a category. Button commands are driven by a pressed or
// released value, axis commands by a signed deflection in the range -32767 to
// 32767, and pointer commands by a screen position.
//
// Commands have a text form that can be parsed back into the same command. See
// Parse() for the grammar. Port commands are the exception: they belong to the
// host and their text form is only a hexadecimal encoding of the host data.
package command
