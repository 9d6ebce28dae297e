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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/joyser/config"
	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/logger"
	"github.com/jetsetilly/joyser/monitor"
	"github.com/jetsetilly/joyser/paths"
	"github.com/jetsetilly/joyser/statsview"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/jetsetilly/joyser/userinput/sdlpad"
	"github.com/jetsetilly/joyser/userinput/terminal"
)

// number of quicksave slots
const quickSlots = 10

// host connects the controls to the gamepads and services the meta-commands
// that the controls pass on.
type host struct {
	pads *sdlpad.Pads

	// meta-commands are serviced at the end of the frame
	pending []command.GenericCode

	quit   bool
	paused bool
	saves  [quickSlots][]byte
}

func (h *host) PollButton(id mapping.ID) (bool, bool) {
	if h.pads == nil {
		return false, false
	}
	return h.pads.PollButton(id)
}

func (h *host) PollAxis(id mapping.ID) (int16, bool) {
	if h.pads == nil {
		return 0, false
	}
	return h.pads.PollAxis(id)
}

func (h *host) PollPointer(id mapping.ID) (int16, int16, bool) {
	return 0, 0, false
}

func (h *host) HandlePortCommand(cmd command.Port, data1 int16, data2 int16) {
	logger.Logf(logger.Allow, "joyser", "%s (%d, %d)", cmd, data1, data2)
}

func (h *host) HandleCommand(code command.GenericCode, pressed bool) {
	if pressed {
		h.pending = append(h.pending, code)
	}
}

// service the meta-commands collected during the frame.
func (h *host) service(c *controls.Controls) {
	for _, code := range h.pending {
		switch {
		case code == command.ExitEmu:
			h.quit = true
		case code == command.Pause:
			h.paused = !h.paused
		case code == command.Reset:
			c.Reset()
		case code == command.SoftReset:
			c.SoftReset()
		case code >= command.QuickSave000 && code <= command.QuickSave009:
			slot := int(code - command.QuickSave000)
			h.saves[slot] = c.PreSaveState()
			logger.Logf(logger.Allow, "joyser", "saved state to slot %d", slot)
		case code >= command.QuickLoad000 && code <= command.QuickLoad009:
			slot := int(code - command.QuickLoad000)
			if h.saves[slot] == nil {
				logger.Logf(logger.Allow, "joyser", "no state in slot %d", slot)
				continue
			}
			if err := c.PostLoadState(h.saves[slot]); err != nil {
				logger.Log(logger.Allow, "joyser", err)
			}
		default:
			logger.Logf(logger.Allow, "joyser", "unsupported command: %s", code)
		}
	}
	h.pending = h.pending[:0]
}

type runCmd struct {
	Config    string `help:"configuration file. defaults to joyser.toml in the resource directory" type:"path"`
	Gamepads  bool   `help:"read gamepads with SDL"`
	Hold      int    `help:"frames a terminal key is held for" default:"8"`
	Monitor   string `help:"address to serve the controller state on (eg. localhost:12700)"`
	Statsview string `help:"run the statsview server on the address (eg. localhost:12600)"`
	Log       bool   `help:"echo log to stderr"`
}

func newControls(h *host, path string) (*controls.Controls, error) {
	c, err := controls.NewControls(h, nil)
	if err != nil {
		return nil, err
	}

	if path == "" {
		if p, ok := paths.DefaultConfig(); ok {
			path = p
		}
	}

	if path == "" {
		if err := userinput.DefaultKeyboard(c); err != nil {
			return nil, err
		}
		if err := userinput.DefaultGamepad(c, 0, 0, true); err != nil {
			return nil, err
		}
		return c, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(c); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *runCmd) Run() error {
	if r.Log {
		logger.SetEcho(os.Stderr)
	}

	if r.Statsview != "" {
		statsview.Launch(os.Stdout, r.Statsview)
	}

	h := &host{}

	if r.Gamepads {
		pads, err := sdlpad.Open()
		if err != nil {
			return err
		}
		defer pads.Close()
		h.pads = pads
	}

	c, err := newControls(h, r.Config)
	if err != nil {
		return err
	}

	if r.Monitor != "" {
		m := monitor.NewMonitor()
		if err := m.Listen(r.Monitor); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			m.Shutdown(ctx)
		}()
		c.AttachFrameObserver(m)
	}

	term, err := terminal.Open(os.Stdin, r.Hold)
	if err != nil {
		return err
	}
	defer term.Close()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	var last [4]uint16

	for !h.quit {
		select {
		case <-intChan:
			h.quit = true
			continue
		case <-ticker.C:
		}

		if h.pads != nil && h.pads.Service() {
			h.quit = true
		}
		if term.Service(c) {
			h.quit = true
		}

		h.service(c)
		if h.paused {
			continue
		}

		w := c.AutoRead()
		c.ControlEOF()

		if w != last {
			// the terminal is in raw mode so the carriage return is explicit
			fmt.Printf("\r%04x %04x %04x %04x", w[0], w[1], w[2], w[3])
			last = w
		}
	}

	fmt.Print("\r\n")

	return nil
}

type commandsCmd struct{}

func (r *commandsCmd) Run() error {
	for _, n := range command.GenericNames() {
		fmt.Println(n)
	}
	return nil
}

type bindingsCmd struct {
	Config string `arg name:"config" help:"configuration file" type:"path"`
}

func (r *bindingsCmd) Run() error {
	cfg, err := config.Load(r.Config)
	if err != nil {
		return err
	}

	for p, a := range cfg.Ports {
		fmt.Printf("%s: %s\n", p, a)
	}
	for _, b := range cfg.Bindings {
		fmt.Println(b)
	}

	return nil
}

type dumpCmd struct {
	Config string `help:"configuration file" type:"path"`
	Output string `help:"file to write the dot graph to. '-' for stdout"`
}

func (r *dumpCmd) Run() error {
	c, err := newControls(&host{}, r.Config)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if r.Output != "-" {
		fn := r.Output
		if fn == "" {
			fn = paths.UniqueFilename("controls", "dot")
		}
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
		fmt.Printf("graph written to %s\n", fn)
	}

	memviz.Map(w, c)

	return nil
}

var root struct {
	Run      runCmd      `cmd help:"read the controls from the terminal and gamepads"`
	Commands commandsCmd `cmd help:"list the meta-commands"`
	Bindings bindingsCmd `cmd help:"list the bindings in a configuration file"`
	Dump     dumpCmd     `cmd help:"write a graph of the controls state"`
}

func main() {
	cli := kong.Parse(&root,
		kong.Name("joyser"),
		kong.Description("SNES controller port input layer"),
	)
	err := cli.Run()
	cli.FatalIfErrorf(err)
}
