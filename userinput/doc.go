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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated console.
//
// It is a translation layer between a host backend and the controls package.
// Backends turn their native events into the Event types of this package and
// the Controllers type reports them to the controls on an input identifier.
// Identifiers are described by ID names, for example "key:x", "pad1:a" or
// "pad2:leftx", which are used in configuration files.
//
// Backends that can be asked for the state of an input, rather than sending
// events, implement the controls.Host interface and use the same
// identifiers with polled bindings.
package userinput
