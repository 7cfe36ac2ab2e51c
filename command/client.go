package command

import (
	"bufio"
	"context"
	"io"
	"net"
	"time"

	"github.com/jpillora/backoff"
	log "github.com/s00500/env_logger"
)

// Client dials the velocity controller and keeps redialing when the
// connection is lost.
type Client struct {
	addr  string
	retry *backoff.Backoff
}

func NewClient(addr string, reconnectMin, reconnectMax time.Duration) *Client {
	return &Client{
		addr: addr,
		retry: &backoff.Backoff{
			Min:    reconnectMin,
			Max:    reconnectMax,
			Factor: 2,
			Jitter: false,
		},
	}
}

// Run delivers decoded commands on out until ctx is done. Losing the
// controller sends an Emergency so the robot does not keep driving on a stale
// velocity.
func (c *Client) Run(ctx context.Context, out chan<- Command) {
	dialer := net.Dialer{}
	log.Info("Dialing controller at ", c.addr)
	for {
		conn, err := dialer.DialContext(ctx, "tcp", c.addr)
		if err != nil {
			log.Debug("Controller dial failed: ", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retry.Duration()):
			}
			continue
		}
		c.retry.Reset()
		log.Info("Connected to controller at: ", conn.RemoteAddr().String())

		err = c.read(ctx, conn, out)
		if ctx.Err() != nil {
			return
		}
		log.Errorf("Controller: error reading: %v", err)
		select {
		case out <- Command{Kind: Emergency}:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) read(ctx context.Context, conn net.Conn, out chan<- Command) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		cmd, err := Parse(line)
		if log.Should(err) {
			continue
		}
		log.Debug("Controller sent ", cmd.Kind)
		select {
		case out <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}
