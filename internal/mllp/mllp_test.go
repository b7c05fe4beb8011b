package mllp

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFrameUnframe(t *testing.T) {
	msg := "MSH|^~\\&|A\rPID|1"
	framed := Frame(msg)
	if framed[0] != startBlock {
		t.Error("frame missing start block")
	}
	if framed[len(framed)-2] != endBlock || framed[len(framed)-1] != carriage {
		t.Error("frame missing trailer")
	}
	if got := Unframe(framed); got != msg {
		t.Errorf("Unframe(Frame(m)) = %q, want %q", got, msg)
	}
	// Unframe tolerates missing pieces.
	if got := Unframe([]byte(msg)); got != msg {
		t.Errorf("bare payload = %q", got)
	}
	if got := Unframe(nil); got != "" {
		t.Errorf("empty = %q", got)
	}
}

func TestClientServerExchange(t *testing.T) {
	srv := &Server{Handler: func(message string) string {
		if !strings.HasPrefix(message, "MSH|") {
			t.Errorf("server received %q", message)
		}
		return "MSH|^~\\&|C|D|A|B|||ACK^A01|1|P|2.5\rMSA|AA|1"
	}}
	addr, err := srv.Listen("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	go srv.Serve()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	client := &Client{Addr: addr.String(), Timeout: 2 * time.Second}
	res, err := client.Send(context.Background(),
		"MSH|^~\\&|A|B|C|D|||ADT^A01|1|P|2.5\rPID|1", true)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !strings.Contains(res.Response, "MSA|AA|1") {
		t.Errorf("response = %q, want an AA ack", res.Response)
	}
	if res.Elapsed <= 0 {
		t.Error("elapsed not measured")
	}
}

func TestClientSendNoWait(t *testing.T) {
	received := make(chan string, 1)
	srv := &Server{Handler: func(message string) string {
		received <- message
		return ""
	}}
	addr, err := srv.Listen("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	go srv.Serve()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	client := &Client{Addr: addr.String(), Timeout: 2 * time.Second}
	if _, err := client.Send(context.Background(), "MSH|^~\\&|A", false); err != nil {
		t.Fatalf("Send: %v", err)
	}
	select {
	case got := <-received:
		if got != "MSH|^~\\&|A" {
			t.Errorf("server received %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the message")
	}
}

func TestClientConnectError(t *testing.T) {
	client := &Client{Addr: "127.0.0.1:1", Timeout: 500 * time.Millisecond}
	if _, err := client.Send(context.Background(), "MSH|^~\\&|A", true); err == nil {
		t.Error("expected connection error")
	}
}

func TestCutFrameMultiple(t *testing.T) {
	buf := append(Frame("first"), Frame("second")...)
	msg, rest, ok := cutFrame(buf)
	if !ok || msg != "first" {
		t.Fatalf("first cut = %q, ok=%v", msg, ok)
	}
	msg, rest, ok = cutFrame(rest)
	if !ok || msg != "second" {
		t.Fatalf("second cut = %q, ok=%v", msg, ok)
	}
	if _, _, ok = cutFrame(rest); ok {
		t.Error("third cut should fail")
	}
}
