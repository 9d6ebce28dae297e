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

// Package prefs defines typed preference values. Each value type (Bool, Int)
// can be set from its natural Go type or from a string, and can have hook
// functions that run before and after a new value is stored. A pre-hook that
// returns an error prevents the value from changing, which is how range
// limits are enforced.
//
// Values are grouped under dotted key names with the Collection type. The
// Collection does not know where values come from. The config package fills a
// Collection from a configuration file.
//
// Values are stored atomically so that a preference can be changed from a host
// goroutine while the emulation goroutine is reading it.
package prefs
