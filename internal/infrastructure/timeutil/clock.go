// Package timeutil provides the injectable clock and timestamp helpers used
// for date validation, token expiry and offer timestamps.
package timeutil

import (
	"sync"
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock reads the system time, optionally converted to a fixed location.
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a RealClock reporting local system time.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// NewRealClockIn creates a RealClock reporting time in loc.
// "Today" for departure date validation is computed in this location.
func NewRealClockIn(loc *time.Location) *RealClock {
	return &RealClock{loc: loc}
}

// Now returns the current system time.
func (c RealClock) Now() time.Time {
	if c.loc != nil {
		return time.Now().In(c.loc)
	}
	return time.Now()
}

// MockClock returns a controllable time for testing. It is safe for concurrent use.
type MockClock struct {
	mu        sync.RWMutex
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return NewMockClock(t)
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.fixedTime = t
	m.mu.Unlock()
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.fixedTime = m.fixedTime.Add(d)
	m.mu.Unlock()
}

// AdvanceDays moves the mock clock forward by the given number of days.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
