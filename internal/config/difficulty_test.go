package config

import (
	"math"
	"testing"
)

func TestDifficultyDefaultCurves(t *testing.T) {
	cfg := DefaultCrossingConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Lanes)

	tests := []struct {
		distance  int
		speed     float64
		spawnRate float64
	}{
		{0, 2.0, 0.6},
		{10, 2.5, 0.7},
		{80, 6.0, 1.4},
		{200, 6.0, 2.0}, // both clamped
	}

	for _, tc := range tests {
		if got := d.Speed(tc.distance); math.Abs(got-tc.speed) > 1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tc.distance, got, tc.speed)
		}
		if got := d.SpawnRate(tc.distance); math.Abs(got-tc.spawnRate) > 1e-9 {
			t.Errorf("SpawnRate(%d) = %v, expected %v", tc.distance, got, tc.spawnRate)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := DefaultCrossingConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Lanes)

	prevSpeed, prevRate := 0.0, 0.0
	for dist := 0; dist < 500; dist++ {
		s, r := d.Speed(dist), d.SpawnRate(dist)
		if s < prevSpeed || r < prevRate {
			t.Fatalf("difficulty decreased at distance %d", dist)
		}
		if s > cfg.Lanes.Speed.Max || r > cfg.Lanes.SpawnRate.Max {
			t.Fatalf("ceiling exceeded at distance %d: %v %v", dist, s, r)
		}
		prevSpeed, prevRate = s, r
	}
}

func TestDifficultyFixedAndOffset(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Difficulty.Enabled = false
	d := NewDifficultyManager(cfg.Difficulty, cfg.Lanes)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if d.Speed(0) != d.Speed(1000) {
		t.Error("fixed difficulty should not progress")
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 0.5
	d = NewDifficultyManager(cfg.Difficulty, cfg.Lanes)
	if got := d.EffectiveDistance(0); got != 70 {
		t.Errorf("EffectiveDistance(0) = %d, expected 70", got)
	}
	if got := d.Level(70); got != 1 {
		t.Errorf("Level(70) = %v, expected 1", got)
	}
}
