// Package common holds small shared utilities used by the daemon.
package common

import (
	"fmt"
	"sync"
	"time"
)

// Metrics counts message exchanges on a listener. Safe for concurrent
// use by connection handlers.
type Metrics struct {
	mu       sync.Mutex
	start    time.Time
	end      time.Time
	bytes    int64
	messages int64
	rejected int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Start() {
	m.mu.Lock()
	if m.start.IsZero() {
		m.start = time.Now()
		m.end = time.Time{}
	}
	m.mu.Unlock()
}

func (m *Metrics) Stop() {
	m.mu.Lock()
	if !m.start.IsZero() && m.end.IsZero() {
		m.end = time.Now()
	}
	m.mu.Unlock()
}

// AddMessage records one accepted message of the given wire size.
func (m *Metrics) AddMessage(size int64) {
	m.mu.Lock()
	if size > 0 {
		m.bytes += size
	}
	m.messages++
	m.mu.Unlock()
}

// IncRejected records a message that failed to parse.
func (m *Metrics) IncRejected() {
	m.mu.Lock()
	m.rejected++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Duration: m.elapsedLocked(),
		Bytes:    m.bytes,
		Messages: m.messages,
		Rejected: m.rejected,
	}
}

func (m *Metrics) elapsedLocked() time.Duration {
	if m.start.IsZero() {
		return 0
	}
	if !m.end.IsZero() {
		return m.end.Sub(m.start)
	}
	return time.Since(m.start)
}

type MetricsSnapshot struct {
	Duration time.Duration
	Bytes    int64
	Messages int64
	Rejected int64
}

func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("%d message(s), %d rejected, %s in %s",
		s.Messages, s.Rejected, FormatBytes(s.Bytes), s.Duration.Round(time.Second))
}

func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div := float64(unit)
	exp := 0
	for n := float64(b) / div; n >= unit && exp < 6; n /= unit {
		div *= unit
		exp++
	}
	prefixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.2f %s", float64(b)/div, prefixes[exp])
}
