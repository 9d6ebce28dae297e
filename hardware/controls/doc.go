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

// Package controls connects host input to the two controller ports of the
// console.
//
// The Controls type is the context for everything in the subsystem. It owns
// the mapping of host input identifiers to commands, the live state of every
// logical controller, the assignment of controllers to the two ports and the
// state of the serial lines that the console reads through the JOYSER0 and
// JOYSER1 registers.
//
// Host input arrives in one of two ways. Inputs mapped with poll set to false
// are pushed by the host with ReportButton(), ReportAxis() and
// ReportPointer(). Inputs mapped with poll set to true are pulled from the
// host, through the Host interface, when the controls need them: at the
// release of the joypad latch and at the end of every frame.
//
// The console side is driven by the emulation of the CPU. SetJoypadLatch()
// reflects writes to the latch bit of $4016, ReadJOYSER() reflects reads of
// $4016 and $4017, SetIOBit() reflects writes to the programmable I/O port at
// $4201 and AutoRead() performs the automatic joypad read that fills the
// $4218 to $421F registers. ControlEOF() should be called once at the end of
// every frame.
//
// Changes to the port assignments made with SetController() take effect the
// next time the latch is released. This mirrors the behaviour of plugging a
// controller into a running console.
//
// The Controls type has no internal locking. All functions must be called from
// the emulation goroutine. Host backends running elsewhere should pass their
// input to the emulation goroutine over a channel.
package controls
