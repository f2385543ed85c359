package engine

import (
	"sync"
	"time"
)

// Clock supplies the current time to frame loops and input
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// MockClock is a manually advanced clock for tests
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock frozen at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps the clock to t
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Stopwatch measures real time between frames
type Stopwatch struct {
	clock Clock
	last  time.Time
}

// NewStopwatch starts measuring from the clock's current time
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, last: clock.Now()}
}

// Lap returns the time since the previous Lap, never negative
func (s *Stopwatch) Lap() time.Duration {
	now := s.clock.Now()
	d := now.Sub(s.last)
	s.last = now
	if d < 0 {
		return 0
	}
	return d
}
