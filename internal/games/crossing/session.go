package crossing

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/clock"
)

// Session runs a World from a scheduler while commands arrive from other
// goroutines. All world access goes through mu; life serializes Reset and
// Close so a closed session never has a running scheduler.
type Session struct {
	life     sync.Mutex
	mu       sync.Mutex
	world    *World
	sched    clock.Scheduler
	interval time.Duration
	dt       float64
	closed   bool
}

// NewSession wraps world. Ticks fire tickRate times per second once Reset
// is called; each tick advances the world by 1/tickRate seconds.
func NewSession(world *World, sched clock.Scheduler, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Session{
		world:    world,
		sched:    sched,
		interval: time.Second / time.Duration(tickRate),
		dt:       1.0 / float64(tickRate),
	}
}

// Reset restarts the run and replaces the tick source, so exactly one
// timer drives the world afterwards. Reset must not be called from inside
// a tick.
func (s *Session) Reset() {
	s.life.Lock()
	defer s.life.Unlock()

	s.sched.Stop()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.world.Reset()
	s.mu.Unlock()

	s.sched.Start(s.interval, s.tick)
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.Step(s.dt)
}

// Move applies a player command between ticks.
func (s *Session) Move(dir Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Move(dir)
}

// SetBest seeds the world's best score.
func (s *Session) SetBest(best int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.SetBest(best)
}

// Snapshot returns a copy of the world state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Snapshot()
}

// Terminal reports whether the current run is over.
func (s *Session) Terminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Terminal()
}

// Close stops the tick source. The session cannot be restarted.
func (s *Session) Close() {
	s.life.Lock()
	defer s.life.Unlock()

	s.sched.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.world.Stop()
}
