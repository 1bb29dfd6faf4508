package engine

import (
	"sync"
	"time"
)

// Ticker delivers frame ticks
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the frame scheduler's time source
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// RealClock provides system time with monotonic readings and runtime tickers
type RealClock struct{}

// NewRealClock creates a clock backed by package time
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualClock is a controllable time source for tests
// Tickers fire only from Advance, with time.Ticker's drop-if-full semantics
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a manual clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTicker{
		clock:    m,
		c:        make(chan time.Time, 1),
		interval: d,
		next:     m.now.Add(d),
	}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance moves time forward and fires every ticker whose deadline passed
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
	for _, t := range m.tickers {
		for !t.next.After(m.now) {
			select {
			case t.c <- t.next:
			default:
			}
			t.next = t.next.Add(t.interval)
		}
	}
}

// Active returns the number of tickers not yet stopped
func (m *ManualClock) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

func (m *ManualClock) remove(t *manualTicker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, other := range m.tickers {
		if other == t {
			m.tickers = append(m.tickers[:i], m.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock    *ManualClock
	c        chan time.Time
	interval time.Duration
	next     time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.clock.remove(t) }
