// Package timeutil abstracts the wall clock. Anything day-relative, like the
// 30-day booking horizon of the inventories or itinerary timestamps, reads
// time through a Clock so tests can pin it.
package timeutil

import "time"

// Clock is the injected time source.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns the production clock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock stands still until told otherwise, keeping generated flight and
// hotel catalogs reproducible across a test run.
type MockClock struct {
	current time.Time
}

// NewMockClock pins the clock at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString pins the clock at an RFC3339 timestamp, panicking on
// malformed input. Test-only convenience.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("timeutil: bad mock clock time: " + err.Error())
	}
	return NewMockClock(t)
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Set jumps the clock to an absolute time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the clock forward the given number of minutes.
func (m *MockClock) AdvanceMinutes(n int) {
	m.Advance(time.Duration(n) * time.Minute)
}

// AdvanceHours moves the clock forward the given number of hours.
func (m *MockClock) AdvanceHours(n int) {
	m.Advance(time.Duration(n) * time.Hour)
}

// AdvanceDays moves the clock forward whole days, crossing the catalog
// rebuild boundary in the inventories.
func (m *MockClock) AdvanceDays(n int) {
	m.Advance(time.Duration(n) * 24 * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
