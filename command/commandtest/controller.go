// Package commandtest provides a fake velocity controller for tests.
package commandtest

import (
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Controller accepts connections on a loopback port and writes command lines
// to the most recent one.
type Controller struct {
	ln   net.Listener
	mu   sync.Mutex
	conn net.Conn
	got  chan struct{}
}

func NewController() (*Controller, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	c := &Controller{ln: ln, got: make(chan struct{}, 1)}
	go c.accept()
	return c, nil
}

func (c *Controller) accept() {
	for {
		conn, err := c.ln.Accept()
		if err != nil {
			return
		}
		c.mu.Lock()
		if c.conn != nil {
			c.conn.Close()
		}
		c.conn = conn
		c.mu.Unlock()
		select {
		case c.got <- struct{}{}:
		default:
		}
	}
}

func (c *Controller) Addr() string {
	return c.ln.Addr().String()
}

// WaitConnected blocks until a client has connected since the last call.
func (c *Controller) WaitConnected(timeout time.Duration) error {
	select {
	case <-c.got:
		return nil
	case <-time.After(timeout):
		return errors.New("no client connected")
	}
}

// Send writes each line followed by a newline.
func (c *Controller) Send(lines ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errors.New("no client connected")
	}
	for _, line := range lines {
		if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// Drop closes the current connection, as a controller crash would.
func (c *Controller) Drop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *Controller) Close() {
	c.ln.Close()
	c.Drop()
}
