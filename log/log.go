// Package log ships short pose lines to a UDP collector next to the regular
// env_logger output.
package log

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/jpillora/backoff"
	log "github.com/s00500/env_logger"
)

// Sink queues lines and writes them to a UDP socket from its own goroutine.
// Lines are dropped rather than blocking the caller when the queue is full.
type Sink struct {
	name    string
	addr    string
	ch      chan []byte
	retry   *backoff.Backoff
	dropped uint64
}

func NewSink(name, addr string, buffer int, reconnectMin, reconnectMax time.Duration) *Sink {
	return &Sink{
		name: name,
		addr: addr,
		ch:   make(chan []byte, buffer),
		retry: &backoff.Backoff{
			Min:    reconnectMin,
			Max:    reconnectMax,
			Factor: 2,
			Jitter: false,
		},
	}
}

// Run dials the collector and drains the queue until ctx is done, redialing
// with backoff whenever the socket fails.
func (s *Sink) Run(ctx context.Context) {
	for {
		conn, err := net.Dial("udp", s.addr)
		if err != nil {
			log.Warn(s.name, " log: ", err)
			if !s.wait(ctx) {
				return
			}
			continue
		}
		s.retry.Reset()
		log.Info(s.name, " logging on ", s.addr)

		err = s.runner(ctx, conn)
		conn.Close()
		if err == nil {
			return
		}
		log.Warn(s.name, " log: ", err)
		if !s.wait(ctx) {
			return
		}
	}
}

func (s *Sink) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(s.retry.Duration()):
		return true
	}
}

func (s *Sink) runner(ctx context.Context, conn net.Conn) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-s.ch:
			if _, err := conn.Write(m); err != nil {
				return err
			}
		}
	}
}

// Write queues a copy of line, so the caller may reuse its buffer.
func (s *Sink) Write(line []byte) bool {
	m := make([]byte, len(line))
	copy(m, line)
	select {
	case s.ch <- m:
		return true
	default:
		atomic.AddUint64(&s.dropped, 1)
		return false
	}
}

func (s *Sink) Log(message ...any) {
	s.Write([]byte(fmt.Sprint(message...)))
}

func (s *Sink) Logf(format string, a ...any) {
	s.Log(fmt.Sprintf(format, a...))
}

// Dropped counts lines lost to a full queue.
func (s *Sink) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}
