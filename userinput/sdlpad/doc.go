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

// Package sdlpad is a host backend for game controllers using SDL.
//
// Pads implements the controls.Host interface. Bindings for game controller
// inputs should be made with polling enabled, using the identifiers made by
// userinput.GamepadButtonID() and userinput.GamepadAxisID(). The controls
// ask for the state of the controller when the console latches the
// controller ports.
//
// Service() must be called regularly, from the same goroutine that opened the
// Pads, so that SDL can process controllers being connected and
// disconnected.
package sdlpad
