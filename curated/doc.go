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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is kept with the error and is used to identify it. Patterns
// that callers are expected to test for should be exported as a const string
// by the package that raises the error. For example, the controls package
// exports:
//
//	const UnsupportedSnapshot = "controls: snapshot: unsupported version (%d)"
//
// and a caller can then test for it:
//
//	if curated.Is(err, controls.UnsupportedSnapshot) {
//		logger.Log(logger.Allow, "savestate", err)
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. An error becomes part of a chain when it is used as a
// placeholder value for the pattern of another curated error.
//
//	e := curated.Errorf("snapshot: record too short (%d bytes)", 10)
//	f := curated.Errorf("savestate: %v", e)
//
//	curated.Has(f, "snapshot: record too short (%d bytes)") // true
//	curated.Is(f, "snapshot: record too short (%d bytes)")  // false
//
// The Error() function normalises the chain so that it does not contain
// duplicate adjacent parts. Chains are thought of as parts separated by the
// sub-string ": ". This means that a function does not need to worry about
// whether the error it has received has already been prefixed with the
// package name:
//
//	controls: controls: unsupported version (3)
//
// is printed as
//
//	controls: unsupported version (3)
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can see through a chain.
package curated
