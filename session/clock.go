package session

import (
	"sync"
	"time"
)

// TimeProvider supplies wall time for tick timing and clock seeds
type TimeProvider interface {
	Now() time.Time
}

// systemClock reads the real clock
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// MockClock provides a controllable time source for testing
// Every Now call returns the current time, then moves it forward by step
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewMockClock creates a mock clock at start that advances step per reading
func NewMockClock(start time.Time, step time.Duration) *MockClock {
	return &MockClock{current: start, step: step}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.current
	m.current = m.current.Add(m.step)
	return now
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
