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

package controls

import (
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/hardware/controls/mapping"
	"github.com/jetsetilly/joyser/hardware/controls/plugging"
	"github.com/jetsetilly/joyser/hardware/preferences"
	"github.com/jetsetilly/joyser/logger"
)

// ApplyCommand performs the command. The meaning of data1 and data2 depends
// on the category of the command:
//
//	button   data1 is non-zero for pressed and zero for released
//	axis     data1 is the deflection in the range -32767 to 32767
//	pointer  data1 and data2 are the x and y screen coordinates
//
// Screen coordinates run from 0,0 at the top left to 255,223 or 255,239 at
// the bottom right, depending on the video mode.
func (c *Controls) ApplyCommand(cmd command.Command, data1 int16, data2 int16) {
	pressed := data1 != 0

	switch cmd := cmd.(type) {
	case nil, command.None:

	case command.Joypad:
		c.Pads[cmd.Pad&0x07].Apply(cmd, pressed, c.prefs.UpAndDown.Get().(bool))

	case command.Mouse:
		c.Mice[cmd.Index&0x01].Apply(cmd, pressed)

	case command.Superscope:
		c.Scope.Apply(cmd, pressed)

	case command.Justifier:
		c.Justifier.Apply(cmd, pressed)

	case command.MacsRifle:
		c.Macs.Apply(cmd, pressed)

	case command.Multi:
		if pressed {
			c.startMulti(cmd.Index)
		}

	case command.Generic:
		c.applyGeneric(cmd.Code, pressed)

	case command.PseudoPointerButton:
		c.Pseudo[cmd.Pointer&0x07].ApplyButton(cmd, pressed)

	case command.JoypadAxis:
		c.Pads[cmd.Pad&0x07].ApplyAxis(cmd, data1)

	case command.PseudoPointerAxis:
		c.Pseudo[cmd.Pointer&0x07].ApplyAxis(cmd, data1)

	case command.PseudoButtons:
		c.ReportButton(mapping.PseudoButtonID(cmd.Negative), -int32(data1) > command.Deflection(cmd.Threshold))
		c.ReportButton(mapping.PseudoButtonID(cmd.Positive), int32(data1) > command.Deflection(cmd.Threshold))

	case command.Pointer:
		c.aim(cmd.Targets, data1, data2)

	case command.Port:
		if c.host != nil {
			c.host.HandlePortCommand(cmd, data1, data2)
		} else {
			logger.Logf(logger.Allow, "controls", "no host for port command: %s", cmd)
		}
	}
}

func (c *Controls) aim(targets command.AimTargets, x int16, y int16) {
	if targets&command.AimMouse1 == command.AimMouse1 {
		c.Mice[0].Aim(x, y)
	}
	if targets&command.AimMouse2 == command.AimMouse2 {
		c.Mice[1].Aim(x, y)
	}
	if targets&command.AimSuperscope == command.AimSuperscope {
		c.Scope.Aim(x, y)
	}
	if targets&command.AimJustifier1 == command.AimJustifier1 {
		c.Justifier.Aim(0, x, y)
	}
	if targets&command.AimJustifier2 == command.AimJustifier2 {
		c.Justifier.Aim(1, x, y)
	}
	if targets&command.AimMacsRifle == command.AimMacsRifle {
		c.Macs.Aim(x, y)
	}
}

// meta-commands handled by the controls act on press. everything else is
// given to the host
func (c *Controls) applyGeneric(code command.GenericCode, pressed bool) {
	switch code {
	case command.SwapJoypads:
		if pressed {
			c.assign[plugging.Port1], c.assign[plugging.Port2] = c.assign[plugging.Port2], c.assign[plugging.Port1]
			logger.Logf(logger.Allow, "controls", "swapped ports: %s: %s, %s: %s",
				plugging.Port1, c.assign[plugging.Port1], plugging.Port2, c.assign[plugging.Port2])
		}
		return

	case command.IncTurboSpeed:
		if pressed {
			c.adjustTurbo(-1)
		}
		return

	case command.DecTurboSpeed:
		if pressed {
			c.adjustTurbo(1)
		}
		return

	case command.Mouse1Speed:
		if pressed {
			c.Mice[0].CycleSpeed()
		}
		return

	case command.Mouse2Speed:
		if pressed {
			c.Mice[1].CycleSpeed()
		}
		return
	}

	if h, ok := c.host.(CommandHandler); ok {
		h.HandleCommand(code, pressed)
		return
	}

	if pressed {
		logger.Logf(logger.Allow, "controls", "unhandled command: %s", code)
	}
}

// a faster turbo is a shorter period
func (c *Controls) adjustTurbo(delta int) {
	p := c.prefs.TurboPeriod.Get().(int) + delta
	if p < preferences.MinTurboPeriod || p > preferences.MaxTurboPeriod {
		return
	}
	if err := c.prefs.TurboPeriod.Set(p); err != nil {
		logger.Log(logger.Allow, "controls", err)
		return
	}
	logger.Logf(logger.Allow, "controls", "turbo period: %d frames", p)
}

func (c *Controls) startMulti(index int32) {
	seq, ok := c.mapping.Multi(index)
	if !ok {
		logger.Logf(logger.Allow, "controls", "no multi-press sequence: %d", index)
		return
	}

	// a sequence already running is not restarted
	for _, m := range c.multis {
		if m.index == index {
			return
		}
	}

	c.multis = append(c.multis, multiPress{index: index, seq: seq})
	c.pressStep(seq[0], true)
}

func (c *Controls) pressStep(step []command.Command, pressed bool) {
	for _, cmd := range step {
		c.ApplyCommand(cmd, boolData(pressed), 0)
	}
}

// stop every running multi-press sequence. the buttons of the current step are
// released.
func (c *Controls) stopMultis() {
	for _, m := range c.multis {
		c.pressStep(m.seq[m.step], false)
	}
	c.multis = c.multis[:0]
}

// advance every running multi-press sequence by one step.
func (c *Controls) stepMultis() {
	n := c.multis[:0]
	for _, m := range c.multis {
		c.pressStep(m.seq[m.step], false)
		m.step++
		if m.step < len(m.seq) {
			c.pressStep(m.seq[m.step], true)
			n = append(n, m)
		}
	}
	c.multis = n
}
