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

package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".joyser"

// ConfigFile is the name of the configuration file in the resource directory.
const ConfigFile = "joyser.toml"

// ResourcePath returns the resource joined to the base resource path. Empty
// elements are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, baseResourcePath[1:])
}

// DefaultConfig returns the path of the configuration file in the resource
// directory. The bool is false if the file does not exist.
func DefaultConfig() (string, bool) {
	p := ResourcePath(ConfigFile)
	if _, err := os.Stat(p); err != nil {
		return p, false
	}
	return p, true
}
