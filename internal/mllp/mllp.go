// Package mllp implements the Minimal Lower Layer Protocol framing
// used to carry HL7 messages over TCP, with optional TLS and mutual
// TLS.
package mllp

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
	"time"
)

// Framing bytes: a start-of-block before the payload and an
// end-of-block plus carriage return after it.
const (
	startBlock = 0x0b // VT
	endBlock   = 0x1c // FS
	carriage   = 0x0d // CR
)

// Frame wraps one wire message in the MLLP envelope.
func Frame(message string) []byte {
	buf := make([]byte, 0, len(message)+3)
	buf = append(buf, startBlock)
	buf = append(buf, message...)
	return append(buf, endBlock, carriage)
}

// Unframe strips the envelope from a received buffer: a leading
// start-of-block if present, and everything from the first end-of-block
// onward.
func Unframe(data []byte) string {
	if len(data) > 0 && data[0] == startBlock {
		data = data[1:]
	}
	if i := bytes.IndexByte(data, endBlock); i >= 0 {
		data = data[:i]
	}
	return string(data)
}

// TLSOptions configures transport security for a Client. A nil value
// means plain TCP.
type TLSOptions struct {
	CACert     string // path to a CA bundle PEM; empty uses the system pool
	ClientCert string // client certificate PEM, enables mutual TLS
	ClientKey  string // client private key PEM
	Insecure   bool   // skip server certificate verification
}

func (o *TLSOptions) config() (*tls.Config, error) {
	cfg := &tls.Config{}
	if o.Insecure {
		cfg.InsecureSkipVerify = true
	} else if o.CACert != "" {
		pem, err := os.ReadFile(o.CACert)
		if err != nil {
			return nil, fmt.Errorf("mllp: read ca cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("mllp: no certificates in %s", o.CACert)
		}
		cfg.RootCAs = pool
	}
	if o.ClientCert != "" {
		cert, err := tls.LoadX509KeyPair(o.ClientCert, o.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("mllp: load client cert: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

// Client sends framed messages to one peer.
type Client struct {
	Addr    string        // host:port
	Timeout time.Duration // per-exchange deadline, default 10s
	TLS     *TLSOptions
}

// Result reports one completed exchange.
type Result struct {
	Response string // empty when the exchange did not wait for one
	Elapsed  time.Duration
}

// Send connects, writes one framed message and, when waitForAck is
// set, reads the framed response. The context bounds connection
// establishment; the Timeout bounds the whole exchange.
func (c *Client) Send(ctx context.Context, message string, waitForAck bool) (Result, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	start := time.Now()

	dialer := &net.Dialer{Timeout: timeout}
	var (
		conn net.Conn
		err  error
	)
	if c.TLS != nil {
		cfg, cfgErr := c.TLS.config()
		if cfgErr != nil {
			return Result{}, cfgErr
		}
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: cfg}).DialContext(ctx, "tcp", c.Addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", c.Addr)
	}
	if err != nil {
		return Result{}, fmt.Errorf("mllp: connect %s: %w", c.Addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(start.Add(timeout)); err != nil {
		return Result{}, err
	}
	if _, err := conn.Write(Frame(message)); err != nil {
		return Result{}, fmt.Errorf("mllp: send: %w", err)
	}
	if !waitForAck {
		return Result{Elapsed: time.Since(start)}, nil
	}

	raw, err := readFrame(conn)
	if err != nil {
		return Result{}, fmt.Errorf("mllp: read response: %w", err)
	}
	return Result{Response: raw, Elapsed: time.Since(start)}, nil
}

// readFrame accumulates until the end-of-block byte arrives or the peer
// closes the connection.
func readFrame(conn net.Conn) (string, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if bytes.IndexByte(buf.Bytes(), endBlock) >= 0 {
				break
			}
		}
		if err != nil {
			if buf.Len() > 0 {
				break
			}
			return "", err
		}
	}
	return Unframe(buf.Bytes()), nil
}
