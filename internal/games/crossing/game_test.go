package crossing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{VariantFull, VariantClassic} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestClassicVariantConfig(t *testing.T) {
	cfg := LoadConfig(VariantClassic)
	if len(cfg.Vehicles) != 1 || cfg.Vehicles[0].Class != "car" {
		t.Errorf("classic vehicles = %+v, expected a single car", cfg.Vehicles)
	}
	if cfg.Rules.Rewards || cfg.Rules.Crosswalks {
		t.Error("classic variant has no rewards and no crosswalks")
	}

	full := LoadConfig(VariantFull)
	if len(full.Vehicles) != 3 || !full.Rules.Rewards {
		t.Error("full variant keeps every vehicle class and rewards")
	}
}

func TestCLIOverrides(t *testing.T) {
	SetStrictLanes(true)
	SetSkin("star")
	SetDifficultyPreset("fixed")
	defer func() {
		SetStrictLanes(false)
		SetSkin("")
		SetDifficultyPreset("")
	}()

	cfg := LoadConfig(VariantFull)
	if !cfg.Rules.DeathOnRoadLane {
		t.Error("strict override lost")
	}
	if cfg.Player.Skin != "star" {
		t.Errorf("skin = %q, expected star", cfg.Player.Skin)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := New(VariantFull)
	g1.Reset(testRuntime(12345))
	g2 := New(VariantFull)
	g2.Reset(testRuntime(12345))

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		switch i % 90 {
		case 10:
			in.Set(core.ActionLeft)
		case 30:
			in.Set(core.ActionUp)
		case 50:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and inputs produced different games")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New(VariantFull)
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	none := core.NewInputFrame()

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	ticks := g.World().Ticks()
	g.Step(none)
	if g.World().Ticks() != ticks {
		t.Error("paused game advanced")
	}

	g.Step(pause)
	g.Step(none)
	if g.State().Paused || g.World().Ticks() == ticks {
		t.Error("unpaused game should advance")
	}
}

func TestGameConflictingHorizontalInput(t *testing.T) {
	g := New(VariantFull)
	g.Reset(testRuntime(1))
	g.World().lanes = field("srrsrsrrsrs")
	col := g.World().Player().Column

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.Step(in)

	if g.World().Player().Column != col {
		t.Error("left+right in one tick should cancel out")
	}

	in.Clear()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.World().Player().Column != col+1 {
		t.Errorf("column = %d, expected %d", g.World().Player().Column, col+1)
	}
}

func TestGameSurfacesEvents(t *testing.T) {
	g := New(VariantFull)
	g.Reset(testRuntime(1))
	g.SetBestScore(5)

	w := g.World()
	w.lanes = field("srsrrsrrsrs")
	w.player = Player{Column: 3, Lane: 1}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	res := g.Step(up)
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventScoreChanged || res.Events[0].Value != 1 {
		t.Fatalf("events = %+v, expected one score change to 1", res.Events)
	}

	w.lanes = field("srsrrsrrsrs")
	w.player = Player{Column: 3, Lane: 1}
	w.vehicles = []Vehicle{car(3.5, 1)}
	res = g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	var kinds []core.EventKind
	for _, ev := range res.Events {
		kinds = append(kinds, ev.Kind)
	}
	want := []core.EventKind{core.EventGameOver, core.EventCurrencyAward}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("event kinds = %v, expected %v", kinds, want)
	}
	if res.State.Best != 5 {
		t.Errorf("best = %d, expected the seeded 5", res.State.Best)
	}

	// Terminal games emit nothing further.
	if res := g.Step(up); len(res.Events) != 0 {
		t.Errorf("terminal step emitted %+v", res.Events)
	}
}

func TestGameBestSurvivesReset(t *testing.T) {
	g := New(VariantFull)
	g.Reset(testRuntime(1))
	g.SetBestScore(7)
	g.Reset(testRuntime(2))

	if g.State().Best != 7 {
		t.Errorf("best = %d after reset, expected 7", g.State().Best)
	}
}

func TestGameRender(t *testing.T) {
	g := New(VariantFull)
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, SkinRune("classic")) {
		t.Error("player glyph missing from render")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing from render")
	}

	// Tiny screens must not panic.
	g.Render(core.NewScreen(5, 3))
}

func TestSkinRune(t *testing.T) {
	seen := map[rune]bool{}
	for _, s := range Skins() {
		seen[SkinRune(s)] = true
	}
	if len(seen) != len(Skins()) {
		t.Error("skins should have distinct glyphs")
	}
	if SkinRune("unknown") != SkinRune("classic") {
		t.Error("unknown skins fall back to classic")
	}
}
