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

// Package monitor serves the state of the controller ports over websockets.
//
// A Monitor is attached to the controls as a FrameObserver. At the end of
// each frame the state of the ports is sent to every connected client as a
// JSON message, if it has changed since the last message or if a second has
// passed. A client is sent the most recent state when it connects.
//
// Messages have the form:
//
//	{"type":"state","frame":120,"ports":[{"port":"port1","controller":"joypad","pads":[128],...},...]}
//
// The frame observer is called on the emulation goroutine and never blocks.
// A client that cannot keep up is disconnected.
package monitor
