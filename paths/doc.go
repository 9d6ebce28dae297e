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

// Package paths contains functions to prepare paths to joyser resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// of the default configuration file.
//
//	p := paths.ResourcePath("joyser.toml")
//
// If the base resource path, ".joyser", is present in the program's current
// directory then that is the base path that will be used. Otherwise the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// modern Linux system the example above returns:
//
//	/home/user/.config/joyser/joyser.toml
package paths
