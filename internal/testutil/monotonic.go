// Package testutil provides deterministic test doubles shared across the
// engine's test suites.
package testutil

import (
	"sync"
	"time"
)

// FakeMonotonic is a hand-cranked monotonic source for clock tests.
//
// Unlike the host monotonic clock it only moves when a test advances it,
// so the same scenario produces identical readings on every run.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FakeMonotonic struct {
	mu sync.Mutex
	ns int64
}

// NewFakeMonotonic creates a source reading 0.
func NewFakeMonotonic() *FakeMonotonic {
	return &FakeMonotonic{}
}

// Read returns the current reading in nanoseconds.
func (f *FakeMonotonic) Read() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ns
}

// Advance moves the reading forward. Negative durations are ignored: a
// monotonic source never runs backward, and neither does its fake.
func (f *FakeMonotonic) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ns += int64(d)
}
