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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/joyser/curated"
)

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: key already in collection (%s)"
	NoSuchKey    = "prefs: no such key (%s)"
	SetFailed    = "prefs: %s: %v"
)

// Collection associates preference values with dotted key names.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the collection. Keys are case insensitive.
func (c *Collection) Add(key string, p Pref) error {
	key = strings.ToLower(key)
	if _, ok := c.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	c.entries[key] = p
	return nil
}

// Keys returns the sorted list of keys in the collection.
func (c *Collection) Keys() []string {
	k := make([]string, 0, len(c.entries))
	for key := range c.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Set the value of the preference with the key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[strings.ToLower(key)]
	if !ok {
		return curated.Errorf(NoSuchKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(SetFailed, key, err)
	}
	return nil
}

// Reset all preferences in the collection to their zero value.
func (c *Collection) Reset() error {
	for _, p := range c.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String returns every key and value in the collection, one per line.
func (c *Collection) String() string {
	s := strings.Builder{}
	for _, k := range c.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k]))
	}
	return s.String()
}
