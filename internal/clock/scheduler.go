// Package clock provides fixed-rate callback scheduling so simulations can
// stay synchronous and be driven by a real ticker or, in tests, by hand.
package clock

import (
	"sync"
	"time"
)

// Scheduler invokes a callback at a fixed cadence.
// Start replaces any previously started callback; at most one is active.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// Ticker is a Scheduler backed by time.Ticker. Each Start runs fn on a
// dedicated goroutine; Stop blocks until that goroutine has exited, so no
// callback runs after Stop returns.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTicker creates an idle ticker scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start begins calling fn every interval, stopping any previous schedule first.
func (t *Ticker) Start(interval time.Duration, fn func()) {
	if interval <= 0 {
		interval = time.Second / 60
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	go func() {
		defer close(done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				fn()
			}
		}
	}()
}

// Stop halts the current schedule. Safe to call when idle.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}

// Manual is a Scheduler for tests: callbacks fire only on Advance.
type Manual struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	starts   int
}

// NewManual creates an idle manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Start records fn as the active callback.
func (m *Manual) Start(interval time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = fn
	m.interval = interval
	m.starts++
}

// Stop clears the active callback.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = nil
}

// Advance fires the active callback n times. It returns the number of
// callbacks actually run (0 when stopped).
func (m *Manual) Advance(n int) int {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()
	if fn == nil {
		return 0
	}
	for i := 0; i < n; i++ {
		fn()
	}
	return n
}

// Active reports whether a callback is scheduled.
func (m *Manual) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fn != nil
}

// Starts returns how many times Start has been called.
func (m *Manual) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Interval returns the interval passed to the latest Start.
func (m *Manual) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}
