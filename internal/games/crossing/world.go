// Package crossing implements an endless road-crossing game: a procedurally
// generated field of sidewalks and roads, traffic that spawns at a per-lane
// rate, and a player who advances one lane at a time.
package crossing

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Direction is a player movement command. There is no downward move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Player is the position of the player inside the visible window.
type Player struct {
	Column int `json:"column"`
	Lane   int `json:"lane"`
}

// World is the complete simulation state of one run. It is not safe for
// concurrent use; wrap it in a Session when ticks and commands arrive on
// different goroutines.
type World struct {
	cfg        config.CrossingConfig
	columns    int
	rows       int
	playerSize float64

	rng     *rand.Rand
	gen     *LaneGenerator
	spawner *Spawner
	sink    EventSink
	policy  DeathPolicy

	lanes    []Lane
	vehicles []Vehicle
	player   Player

	score    int
	crossed  int
	best     int
	terminal bool
	running  bool
	ticks    int
}

// NewWorld creates a world from cfg and resets it. A nil sink discards events.
func NewWorld(cfg config.CrossingConfig, seed int64, sink EventSink) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	specs, err := resolveVehicleSpecs(cfg.Vehicles)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	rng := rand.New(rand.NewSource(seed))
	policy := DeathBoundingBox
	if cfg.Rules.DeathOnRoadLane {
		policy = DeathStrictLane
	}

	w := &World{
		cfg:        cfg,
		columns:    cfg.Field.Columns,
		rows:       cfg.Field.VisibleRows,
		playerSize: cfg.Player.Size,
		rng:        rng,
		gen:        NewLaneGenerator(rng, cfg.Field.Columns, cfg),
		spawner:    NewSpawner(rng, cfg.Field.Columns, specs),
		sink:       sink,
		policy:     policy,
	}
	w.Reset()
	return w, nil
}

// Reset starts a new run: fresh lanes, no vehicles, player at the bottom
// centre, score zero. The best score survives.
func (w *World) Reset() {
	w.gen.Reset()
	w.lanes = make([]Lane, 0, w.rows)
	w.vehicles = nil
	w.player = Player{Column: w.columns / 2, Lane: 0}
	w.score = 0
	w.crossed = 0
	w.terminal = false
	w.running = true
	w.ticks = 0

	for len(w.lanes) < w.rows {
		w.lanes = append(w.lanes, w.gen.Next(len(w.lanes)))
	}

	// The starting cell is always free.
	start := &w.lanes[0]
	kept := start.Obstacles[:0]
	for _, o := range start.Obstacles {
		if o.Column != w.player.Column {
			kept = append(kept, o)
		}
	}
	start.Obstacles = kept
}

// MaxStepSeconds bounds the time one Step may advance. Longer steps are
// clamped so a stalled caller cannot flood the field with traffic.
const MaxStepSeconds = 0.25

// Step advances the simulation by dt seconds. It does nothing while the
// world is stopped or terminal, or when dt is not a positive finite value.
func (w *World) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) || !w.running || w.terminal {
		return
	}
	dt = min(dt, MaxStepSeconds)
	w.ticks++

	for i := range w.vehicles {
		v := &w.vehicles[i]
		v.X += float64(v.direction) * v.speed * dt
	}

	kept := w.vehicles[:0]
	for _, v := range w.vehicles {
		if !v.offField(w.columns) {
			kept = append(kept, v)
		}
	}
	w.vehicles = kept

	for i := range w.lanes {
		w.vehicles = append(w.vehicles, w.spawner.MaybeSpawn(&w.lanes[i], i, dt)...)
	}

	w.CheckDeath()
}

// Move applies a player command and reports whether the player moved.
// Rejected commands change nothing and emit nothing.
func (w *World) Move(dir Direction) bool {
	if w.terminal {
		return false
	}

	switch dir {
	case DirLeft, DirRight:
		col := w.player.Column - 1
		if dir == DirRight {
			col = w.player.Column + 1
		}
		if col < 0 || col >= w.columns || w.lanes[w.player.Lane].Blocks(col) {
			return false
		}
		w.player.Column = col

	case DirUp:
		next := w.player.Lane + 1
		if next >= len(w.lanes) || w.lanes[next].Blocks(w.player.Column) {
			return false
		}
		crossed := w.lanes[next].Kind == LaneSidewalk && w.lanes[w.player.Lane].Kind == LaneRoad
		w.player.Lane = next
		w.recenter()
		if crossed {
			w.crossed++
			w.score = w.crossed
			w.sink.ScoreChanged(w.score)
		}

	default:
		return false
	}

	w.CheckDeath()
	return true
}

// Stop halts ticking without ending the run. Resumption is a full Reset.
func (w *World) Stop() {
	w.running = false
}

// SetBest seeds the best score, typically from persistent storage.
func (w *World) SetBest(best int) {
	if best > w.best {
		w.best = best
	}
}

// SetDeathPolicy switches the death rule for subsequent checks.
func (w *World) SetDeathPolicy(p DeathPolicy) {
	w.policy = p
}

// DeathPolicy returns the active death rule.
func (w *World) DeathPolicy() DeathPolicy { return w.policy }

// Lanes returns the visible lane buffer, bottom lane first.
func (w *World) Lanes() []Lane { return w.lanes }

// Vehicles returns the live vehicles.
func (w *World) Vehicles() []Vehicle { return w.vehicles }

// Player returns the player's position.
func (w *World) Player() Player { return w.player }

// Score returns the number of roads crossed this run.
func (w *World) Score() int { return w.score }

// Crossed returns the crossed-road counter.
func (w *World) Crossed() int { return w.crossed }

// Best returns the best score seen by this world.
func (w *World) Best() int { return w.best }

// Terminal reports whether the run is over.
func (w *World) Terminal() bool { return w.terminal }

// Running reports whether ticks advance the world.
func (w *World) Running() bool { return w.running }

// Ticks returns the number of steps applied this run.
func (w *World) Ticks() int { return w.ticks }

// Columns returns the playfield width.
func (w *World) Columns() int { return w.columns }

// VisibleRows returns the window height.
func (w *World) VisibleRows() int { return w.rows }

// Phase returns the lane generator cursor.
func (w *World) Phase() Phase { return w.gen.Phase() }

// Level returns the difficulty level of the next generated lane, 0..1.
func (w *World) Level() float64 {
	return w.gen.Difficulty().Level(w.score + len(w.lanes))
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.CrossingConfig { return w.cfg }
