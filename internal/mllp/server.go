package mllp

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"net"
	"sync"
	"time"
)

// Handler produces the response for one received message. Returning an
// empty string suppresses the response frame.
type Handler func(message string) string

// Server accepts MLLP connections and feeds each received frame to a
// handler. Connections are served concurrently; each may carry multiple
// frames.
type Server struct {
	Handler     Handler
	ReadTimeout time.Duration // per-frame deadline, default 30s

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
	closed   bool
}

// Listen binds the server to addr. A non-nil tlsCfg enables TLS.
func (s *Server) Listen(addr string, tlsCfg *tls.Config) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
	}
	s.mu.Lock()
	s.listener = ln
	s.conns = map[net.Conn]struct{}{}
	s.mu.Unlock()
	return ln.Addr(), nil
}

// Serve accepts connections until Shutdown closes the listener.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("mllp: server not listening")
	}
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			return err
		}
		s.track(conn, true)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.track(conn, false)
			defer conn.Close()
			s.serveConn(conn)
		}()
	}
}

// Shutdown stops accepting, closes open connections and waits for
// handlers to drain, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.listener
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	if ln != nil {
		ln.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) track(conn net.Conn, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
	} else {
		delete(s.conns, conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	timeout := s.ReadTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		conn.SetReadDeadline(time.Now().Add(timeout))
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			for {
				frame, rest, ok := cutFrame(buf.Bytes())
				if !ok {
					break
				}
				buf.Reset()
				buf.Write(rest)
				if resp := s.Handler(frame); resp != "" {
					conn.SetWriteDeadline(time.Now().Add(timeout))
					if _, err := conn.Write(Frame(resp)); err != nil {
						return
					}
				}
			}
		}
		if err != nil {
			return
		}
	}
}

// cutFrame extracts the first complete frame from buf, returning the
// unframed message and the remaining bytes.
func cutFrame(buf []byte) (message string, rest []byte, ok bool) {
	end := bytes.IndexByte(buf, endBlock)
	if end < 0 {
		return "", nil, false
	}
	frame := buf[:end]
	rest = buf[end+1:]
	if len(rest) > 0 && rest[0] == carriage {
		rest = rest[1:]
	}
	return Unframe(frame), append([]byte(nil), rest...), true
}
