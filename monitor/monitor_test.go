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

package monitor_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/hardware/controls/command"
	"github.com/jetsetilly/joyser/monitor"
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	c, err := controls.NewControls(nil, nil)
	require.NoError(t, err)

	m := monitor.NewMonitor()
	c.AttachFrameObserver(m)
	c.ControlEOF()

	srv := httptest.NewServer(m)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	// the most recent state is sent on connection
	var msg monitor.Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "state", msg.Type)
	require.Equal(t, 1, msg.Frame)
	require.Equal(t, "port1", msg.Ports[0].Port)
	require.Equal(t, "joypad", msg.Ports[0].Controller)
	require.Equal(t, []uint16{0}, msg.Ports[1].Pads)
	require.Equal(t, 1, m.Clients())

	// frames with no change are not sent
	c.ControlEOF()
	cmd, err := command.Parse("Joypad1 A+Start")
	require.NoError(t, err)
	c.ApplyCommand(cmd, 1, 0)
	c.ControlEOF()

	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, 3, msg.Frame)
	require.Equal(t, []uint16{command.ButtonA | command.ButtonStart}, msg.Ports[0].Pads)

	// unless a second has passed
	for i := 0; i < 60; i++ {
		c.ControlEOF()
	}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, 63, msg.Frame)

	require.NoError(t, m.Shutdown(context.Background()))
	require.Equal(t, 0, m.Clients())
}

func TestListen(t *testing.T) {
	m := monitor.NewMonitor()
	require.NoError(t, m.Listen("127.0.0.1:0"))
	require.NoError(t, m.Shutdown(context.Background()))

	err := monitor.NewMonitor().Listen("127.0.0.1:notaport")
	require.Error(t, err)
	require.True(t, curated.Is(err, monitor.ListenFailed))
}
