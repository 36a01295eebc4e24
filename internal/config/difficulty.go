package config

// DifficultyManager calculates road lane parameters from the distance a
// lane is generated at.
type DifficultyManager struct {
	cfg   DifficultyConfig
	lanes CrossingLanes
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, lanes CrossingLanes) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		lanes: lanes,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// EffectiveDistance converts a raw lane distance into the distance fed to
// the road scaling curves. The initial level shifts the start along the
// curve; a disabled manager stays at the start forever.
func (d *DifficultyManager) EffectiveDistance(distance int) int {
	offset := int(clampF(d.cfg.InitialLevel, 0, 1) * float64(d.cfg.MaxAt))
	if !d.cfg.Enabled {
		return offset
	}
	if distance < 0 {
		distance = 0
	}
	return offset + distance
}

// Speed returns the traffic speed for a road lane generated at distance.
func (d *DifficultyManager) Speed(distance int) float64 {
	return d.lanes.Speed.At(d.EffectiveDistance(distance))
}

// SpawnRate returns the spawn rate for a road lane generated at distance.
func (d *DifficultyManager) SpawnRate(distance int) float64 {
	return d.lanes.SpawnRate.At(d.EffectiveDistance(distance))
}

// Level returns the current difficulty level (0.0 to 1.0) for HUD display.
func (d *DifficultyManager) Level(distance int) float64 {
	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(d.EffectiveDistance(distance))/maxAt, 0, 1)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
