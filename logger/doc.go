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

// Package logger is the central log repository for Joyser. Log entries are
// held in a ring buffer of limited size and are only written out on request.
//
// Every entry has a tag and a detail. The tag should be the name of the
// package or sub-system making the entry (eg. "controls" or "sdlpad"). The
// detail can be a string, an error, a fmt.Stringer or any other value that can
// be formatted with the %v verb.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// Whether an entry is made is controlled by the Permission argument. Code
// that should always log uses logger.Allow. Code that runs on the hot
// emulation path can pass an implementation of Permission that disallows
// logging for the duration of, say, a rewind or a regression test.
//
// In addition to the central logger, isolated loggers can be created with
// NewLogger(). These are mostly useful for testing.
package logger
