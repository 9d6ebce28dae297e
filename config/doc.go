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

// Package config loads the configuration of the controls from a file.
//
// The file can be TOML, YAML or JSON. An example in TOML:
//
//	[controls]
//	multitap = true
//	turboperiod = 2
//
//	[ports]
//	port1 = "joypad 1"
//	port2 = "multitap 2 3 - -"
//
//	[defaults]
//	keyboard = true
//	gamepads = 1
//
//	[bindings]
//	"key:x" = "Joypad1 A"
//	"pad1:leftx" = "Joypad1 Axis Left/Right T=50%"
//	"mouse:pointer" = "Pointer Superscope"
//	"key:m" = "Multi#0"
//
//	[poll]
//	"pad1:leftx" = true
//
//	[multi]
//	0 = ["Joypad1 Down", "Joypad1 Down+Right", "Joypad1 Right, Joypad1 Y"]
//
// The controls section takes the keys listed by preferences.Keys(). Ports
// take the text form of a plugging.Assignment. Inputs in the bindings and
// poll sections are named as described by userinput.ParseID() and commands
// are given by name. Each step of a multi-press sequence is a comma
// separated list of button commands.
//
// The default keyboard layout and default gamepad layouts are bound before
// the bindings section, so the bindings section can override them. Gamepad n
// is bound to joypad n with polling.
package config
