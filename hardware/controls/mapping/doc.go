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

// Package mapping binds host input identifiers to commands.
//
// An identifier is an opaque 32 bit number chosen by the host. The top of the
// identifier space is reserved: the last value is never valid, the eight
// values below it carry the positions of the pseudo-pointers and the 256
// values below those carry the state of pseudo-buttons. Reports on reserved
// identifiers are made by the controls themselves, as a side effect of
// applying pseudo-pointer and pseudo-button commands, so that the host can
// bind them like any other input.
//
// Every binding has a source. A Cache holds the last value reported by the
// host. A Bridge asks the host for the current value whenever the controls
// need it.
package mapping
