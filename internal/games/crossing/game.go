package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Variant IDs registered with the arcade.
const (
	VariantFull    = "crossing"
	VariantClassic = "crossing_classic"
)

// Settings set via CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	strictLanes      bool
	skin             string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStrictLanes forces the strict lane death rule when enabled.
func SetStrictLanes(enabled bool) {
	strictLanes = enabled
}

// SetSkin overrides the configured player skin.
func SetSkin(name string) {
	skin = name
}

func init() {
	registry.Register(VariantFull, func() registry.Game { return New(VariantFull) })
	registry.Register(VariantClassic, func() registry.Game { return New(VariantClassic) })
}

// Game adapts a World to the arcade's fixed-tick game interface.
type Game struct {
	variant  string
	runtime  core.RuntimeConfig
	cfg      config.CrossingConfig
	world    *World
	recorder *Recorder
	best     int
	paused   bool
}

// New creates a crossing game for the given variant ID.
func New(variant string) *Game {
	return &Game{variant: variant}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Road Crossing (Classic)"
	}
	return "Road Crossing"
}

// LoadConfig resolves the configuration for a variant: file or defaults,
// then the variant's rules, then CLI overrides.
func LoadConfig(variant string) config.CrossingConfig {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}

	applyVariant(&cfg, variant)
	config.ApplyCrossingPreset(&cfg, difficultyPreset)
	if strictLanes {
		cfg.Rules.DeathOnRoadLane = true
	}
	if skin != "" {
		cfg.Player.Skin = skin
	}
	return cfg
}

// applyVariant narrows the config to the classic ruleset: one vehicle
// class, no crosswalks and no coin rewards.
func applyVariant(cfg *config.CrossingConfig, variant string) {
	if variant != VariantClassic {
		return
	}
	cfg.Rules.Rewards = false
	cfg.Rules.Crosswalks = false
	if len(cfg.Vehicles) > 0 {
		car := cfg.Vehicles[0]
		for _, v := range cfg.Vehicles {
			if v.Class == VehicleCar.String() {
				car = v
				break
			}
		}
		car.Weight = 1
		cfg.Vehicles = []config.VehicleSpec{car}
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig(g.variant)
	g.recorder = NewRecorder()
	g.paused = false

	w, err := NewWorld(g.cfg, runtime.Seed, g.recorder)
	if err != nil {
		g.cfg = config.DefaultCrossingConfig()
		applyVariant(&g.cfg, g.variant)
		w, err = NewWorld(g.cfg, runtime.Seed, g.recorder)
		if err != nil {
			panic("crossing: default config rejected: " + err.Error())
		}
	}
	w.SetBest(g.best)
	g.world = w
}

// Step advances the game by one tick. Commands in the frame are applied
// before the world moves, at most one horizontal and one upward step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.world.Move(DirLeft)
	case right && !left:
		g.world.Move(DirRight)
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionJump) {
		g.world.Move(DirUp)
	}

	g.world.Step(g.runtime.TickSeconds())
	g.best = g.world.Best()

	return core.StepResult{State: g.State(), Events: g.recorder.Drain()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Best:     g.world.Best(),
		GameOver: g.world.Terminal(),
		Paused:   g.paused,
	}
}

// SetBestScore seeds the best score, typically from the score store.
func (g *Game) SetBestScore(best int) {
	if best > g.best {
		g.best = best
	}
	if g.world != nil {
		g.world.SetBest(best)
	}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns the current world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}
