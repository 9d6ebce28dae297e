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

package sdlpad

import (
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/logger"
	"github.com/jetsetilly/joyser/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	InitFailed = "sdlpad: %v"
)

// Pads is the collection of game controllers attached to the host. A
// controller keeps its position in the collection while it is attached.
type Pads struct {
	pads []*sdl.GameController
}

// Open initialises SDL and opens every attached game controller.
func Open() (*Pads, error) {
	err := sdl.Init(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	p := &Pads{}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.open(i)
	}

	if len(p.pads) == 0 {
		logger.Log(logger.Allow, "sdlpad", "no gamepads found")
	}

	return p, nil
}

func (p *Pads) open(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return
	}

	// a controller that has been opened before is not opened again
	id := pad.Joystick().InstanceID()
	for _, q := range p.pads {
		if q != nil && q.Joystick().InstanceID() == id {
			return
		}
	}

	// reuse the slot of a controller that has been disconnected
	for i := range p.pads {
		if p.pads[i] == nil {
			p.pads[i] = pad
			logger.Logf(logger.Allow, "sdlpad", "gamepad %d: %s", i+1, pad.Name())
			return
		}
	}

	if len(p.pads) >= userinput.MaxGamepads {
		pad.Close()
		return
	}

	p.pads = append(p.pads, pad)
	logger.Logf(logger.Allow, "sdlpad", "gamepad %d: %s", len(p.pads), pad.Name())
}

func (p *Pads) remove(id sdl.JoystickID) {
	for i, q := range p.pads {
		if q != nil && q.Joystick().InstanceID() == id {
			logger.Logf(logger.Allow, "sdlpad", "gamepad %d: removed", i+1)
			q.Close()
			p.pads[i] = nil
		}
	}
}

// Close every game controller and shut down SDL.
func (p *Pads) Close() {
	for _, q := range p.pads {
		if q != nil {
			q.Close()
		}
	}
	p.pads = nil
	sdl.Quit()
}

// Count returns the number of slots in the collection, including slots of
// controllers that have been disconnected.
func (p *Pads) Count() int {
	return len(p.pads)
}

// Service processes SDL events. Returns true if SDL has been asked to quit.
func (p *Pads) Service() bool {
	quit := false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				p.open(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				p.remove(ev.Which)
			}
		}
	}

	return quit
}

func (p *Pads) pad(id mapping.ID, axis bool) (*sdl.GameController, int, bool) {
	n, ctrl, isAxis, ok := userinput.DecodeGamepad(id)
	if !ok || isAxis != axis || n >= len(p.pads) || p.pads[n] == nil {
		return nil, 0, false
	}
	return p.pads[n], ctrl, true
}

// PollButton implements the controls.Host interface.
func (p *Pads) PollButton(id mapping.ID) (bool, bool) {
	pad, ctrl, ok := p.pad(id, false)
	if !ok {
		return false, false
	}
	return pad.Button(sdl.GameControllerButton(ctrl)) == 1, true
}

// PollAxis implements the controls.Host interface.
func (p *Pads) PollAxis(id mapping.ID) (int16, bool) {
	pad, ctrl, ok := p.pad(id, true)
	if !ok {
		return 0, false
	}
	return pad.Axis(sdl.GameControllerAxis(ctrl)), true
}

// PollPointer implements the controls.Host interface. Game controllers have
// no pointers.
func (p *Pads) PollPointer(id mapping.ID) (int16, int16, bool) {
	return 0, 0, false
}

// HandlePortCommand implements the controls.Host interface. Game
// controllers have no use for port commands so they are logged.
func (p *Pads) HandlePortCommand(cmd command.Port, data1 int16, data2 int16) {
	logger.Logf(logger.Allow, "sdlpad", "%s: %d %d", cmd, data1, data2)
}
