package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// GameOverEvent describes the end of a run.
type GameOverEvent struct {
	Score   int
	Best    int
	NewBest bool
}

// EventSink receives the world's outbound events. Calls happen on the
// goroutine that mutates the world and must not call back into it.
type EventSink interface {
	ScoreChanged(score int)
	GameOver(ev GameOverEvent)
	CurrencyAwarded(amount int)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) ScoreChanged(int) {}

func (NopSink) GameOver(GameOverEvent) {}

func (NopSink) CurrencyAwarded(int) {}

// Recorder buffers events as core.Event values until drained.
type Recorder struct {
	events []core.Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ScoreChanged(score int) {
	r.events = append(r.events, core.Event{Kind: core.EventScoreChanged, Value: score})
}

func (r *Recorder) GameOver(ev GameOverEvent) {
	r.events = append(r.events, core.Event{Kind: core.EventGameOver, Value: ev.Score, NewBest: ev.NewBest})
}

func (r *Recorder) CurrencyAwarded(amount int) {
	r.events = append(r.events, core.Event{Kind: core.EventCurrencyAward, Value: amount})
}

// Drain returns buffered events and empties the buffer.
func (r *Recorder) Drain() []core.Event {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}
