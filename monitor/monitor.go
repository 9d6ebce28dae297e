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

package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/joyser/curated"
	"github.com/jetsetilly/joyser/hardware/controls"
	"github.com/jetsetilly/joyser/logger"
)

// Sentinal error patterns.
const (
	ListenFailed = "monitor: %v"
)

// number of frames after which the state is sent even if it hasn't changed
const syncFrames = 60

// size of each client's queue of messages
const clientQueue = 256

// Message is sent to clients.
type Message struct {
	Type  string                `json:"type"`
	Frame int                   `json:"frame"`
	Ports [2]controls.PortState `json:"ports"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Monitor broadcasts the state of the ports to websocket clients.
type Monitor struct {
	crit    sync.Mutex
	clients map[*client]bool

	// most recent message and the ports part of it for comparison
	last      []byte
	lastPorts []byte
	lastFrame int

	upgrader websocket.Upgrader
	server   *http.Server
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	return &Monitor{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Listen starts an HTTP server on the address. Websocket connections are
// accepted on the /ws path.
func (m *Monitor) Listen(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(ListenFailed, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", m)
	m.server = &http.Server{Handler: mux}

	go func() {
		err := m.server.Serve(l)
		if err != nil && err != http.ErrServerClosed {
			logger.Log(logger.Allow, "monitor", err)
		}
	}()

	logger.Logf(logger.Allow, "monitor", "listening on %s", l.Addr())

	return nil
}

// Shutdown stops the server started by Listen() and disconnects every
// client.
func (m *Monitor) Shutdown(ctx context.Context) error {
	var err error
	if m.server != nil {
		err = m.server.Shutdown(ctx)
	}

	m.crit.Lock()
	defer m.crit.Unlock()
	for c := range m.clients {
		m.drop(c)
	}

	return err
}

// Clients returns the number of connected clients.
func (m *Monitor) Clients() int {
	m.crit.Lock()
	defer m.crit.Unlock()
	return len(m.clients)
}

// ServeHTTP upgrades the connection to a websocket and adds the client.
// Implements the http.Handler interface.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, clientQueue),
	}

	m.crit.Lock()
	m.clients[c] = true
	if m.last != nil {
		c.send <- m.last
	}
	n := len(m.clients)
	m.crit.Unlock()

	logger.Logf(logger.Allow, "monitor", "client connected (total: %d)", n)

	go m.writePump(c)
	go m.readPump(c)
}

func (m *Monitor) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// clients send nothing useful. reading is needed to notice the connection
// closing
func (m *Monitor) readPump(c *client) {
	defer func() {
		m.crit.Lock()
		m.drop(c)
		n := len(m.clients)
		m.crit.Unlock()
		logger.Logf(logger.Allow, "monitor", "client disconnected (total: %d)", n)
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// drop the client. the critical section must be held
func (m *Monitor) drop(c *client) {
	if _, ok := m.clients[c]; ok {
		delete(m.clients, c)
		close(c.send)
	}
}

// ObserveFrame implements the controls.FrameObserver interface.
func (m *Monitor) ObserveFrame(frame int, state [2]controls.PortState) {
	ports, err := json.Marshal(state)
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		return
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	if bytes.Equal(ports, m.lastPorts) && frame-m.lastFrame < syncFrames {
		return
	}

	msg, err := json.Marshal(Message{Type: "state", Frame: frame, Ports: state})
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		return
	}

	m.last = msg
	m.lastPorts = ports
	m.lastFrame = frame

	for c := range m.clients {
		select {
		case c.send <- msg:
		default:
			logger.Log(logger.Allow, "monitor", "client too slow: disconnected")
			m.drop(c)
		}
	}
}
