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

package terminal

import (
	"io"
	"os"
	"sort"

	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/logger"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	TerminalError = "terminal: %v"
)

// DefaultHold is the number of frames a key is held for after it is pressed.
const DefaultHold = 8

// ASCII values with special meaning.
const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyTab       = 0x09
	keyLF        = 0x0a
	keyCR        = 0x0d
	keyEsc       = 0x1b
	keyDelete    = 0x7f

	escCursor = '['
)

// a key press that stops the emulation
const quitKey = "ctrl-c"

// Terminal reads key presses from a terminal and reports them to the
// controls.
type Terminal struct {
	input   *os.File
	canAttr unix.Termios
	rawAttr unix.Termios

	keys chan string

	// frames remaining for each held key
	held map[string]int
	hold int

	ctrl userinput.Controllers
}

// Open puts the terminal into raw mode and starts reading key presses. The
// terminal must be restored with Close().
func Open(input *os.File, hold int) (*Terminal, error) {
	t := NewTerminal(hold)
	t.input = input

	if err := termios.Tcgetattr(input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &t.rawAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	go t.read(input)

	return t, nil
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type when key presses are given to Feed() rather than read from a terminal.
func NewTerminal(hold int) *Terminal {
	if hold < 1 {
		hold = 1
	}
	return &Terminal{
		keys: make(chan string, 64),
		held: make(map[string]int),
		hold: hold,
	}
}

// Close returns the terminal to canonical mode.
func (t *Terminal) Close() error {
	if t.input == nil {
		return nil
	}
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// the reading goroutine ends when the input is closed
func (t *Terminal) read(input io.Reader) {
	var b [16]byte
	for {
		n, err := input.Read(b[:])
		if n > 0 {
			t.Feed(b[:n])
		}
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "terminal", err)
			}
			return
		}
	}
}

// Feed decodes bytes received from the terminal into key presses. Safe to
// call from any goroutine.
func (t *Terminal) Feed(b []byte) {
	for _, k := range decode(b) {
		select {
		case t.keys <- k:
		default:
			logger.Logf(logger.Allow, "terminal", "dropped key press: %s", k)
		}
	}
}

func decode(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		switch c := b[i]; c {
		case keyCtrlC:
			keys = append(keys, quitKey)
		case keyBackspace, keyDelete:
			keys = append(keys, "backspace")
		case keyTab:
			keys = append(keys, "tab")
		case keyCR, keyLF:
			keys = append(keys, "enter")
		case ' ':
			keys = append(keys, "space")
		case keyEsc:
			if i+2 < len(b) && b[i+1] == escCursor {
				if k, ok := cursorKey(b[i+2]); ok {
					keys = append(keys, k)
					i += 2
					continue
				}
			}
			keys = append(keys, "escape")
		default:
			if c > ' ' && c <= '~' {
				keys = append(keys, string(rune(c)))
			}
		}
	}

	return keys
}

func cursorKey(c byte) (string, bool) {
	switch c {
	case 'A':
		return "up", true
	case 'B':
		return "down", true
	case 'C':
		return "right", true
	case 'D':
		return "left", true
	case 'H':
		return "home", true
	case 'F':
		return "end", true
	}
	return "", false
}

// Service reports key presses and releases to the controls. It should be
// called once per frame. Returns true if the user has asked to quit.
func (t *Terminal) Service(r userinput.Reporter) bool {
	// release keys that have been held long enough. in sorted order so that
	// releases are reported in a consistent order
	var release []string
	for k, n := range t.held {
		if n <= 1 {
			release = append(release, k)
		} else {
			t.held[k] = n - 1
		}
	}
	sort.Strings(release)
	for _, k := range release {
		delete(t.held, k)
		t.ctrl.HandleUserInput(userinput.EventKeyboard{Key: k, Down: false}, r)
	}

	quit := false

	for {
		select {
		case k := <-t.keys:
			if k == quitKey {
				t.ctrl.HandleUserInput(userinput.EventQuit{}, r)
				quit = quit || t.ctrl.Quit
				continue
			}
			_, repeat := t.held[k]
			t.held[k] = t.hold
			t.ctrl.HandleUserInput(userinput.EventKeyboard{Key: k, Down: true, Repeat: repeat}, r)
		default:
			return quit
		}
	}
}

// Held returns the keys that are currently held down.
func (t *Terminal) Held() []string {
	keys := make([]string, 0, len(t.held))
	for k := range t.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
