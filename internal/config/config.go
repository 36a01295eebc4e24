// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing arcade.
package config

import (
	"fmt"
	"math"
)

// CrossingConfig contains all configuration for the road crossing game.
type CrossingConfig struct {
	Field      CrossingField    `yaml:"field"`
	Player     CrossingPlayer   `yaml:"player"`
	Rules      CrossingRules    `yaml:"rules"`
	Lanes      CrossingLanes    `yaml:"lanes"`
	Vehicles   []VehicleSpec    `yaml:"vehicles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossingField defines the playfield grid. It is fixed for the lifetime
// of a run.
type CrossingField struct {
	Columns     int `yaml:"columns"`
	VisibleRows int `yaml:"visible_rows"`
}

// CrossingPlayer defines the player's collision size and look.
type CrossingPlayer struct {
	Size float64 `yaml:"size"` // Collision box edge, in cells
	Skin string  `yaml:"skin"` // Visual only
}

// CrossingRules toggles rule variants.
type CrossingRules struct {
	DeathOnRoadLane bool `yaml:"death_on_road_lane"` // Standing on any road lane is fatal
	Rewards         bool `yaml:"rewards"`            // Award coins on game over
	RewardPerPoint  int  `yaml:"reward_per_point"`
	Crosswalks      bool `yaml:"crosswalks"` // Mark crosswalk cells on road lanes
}

// CrossingLanes defines lane generation parameters.
type CrossingLanes struct {
	RoadRunMin       int         `yaml:"road_run_min"`
	RoadRunMax       int         `yaml:"road_run_max"`
	MaxObstacles     int         `yaml:"max_obstacles"`     // Per sidewalk lane
	CrosswalkWeights []int       `yaml:"crosswalk_weights"` // Weight of 0, 1, 2... crosswalk cells
	Speed            RoadScaling `yaml:"speed"`             // Cells per second
	SpawnRate        RoadScaling `yaml:"spawn_rate"`        // Vehicles per second
}

// RoadScaling grows a road parameter linearly with distance up to a ceiling.
type RoadScaling struct {
	Base    float64 `yaml:"base"`
	PerLane float64 `yaml:"per_lane"`
	Max     float64 `yaml:"max"`
}

// At returns the parameter value at the given lane distance.
func (s RoadScaling) At(distance int) float64 {
	return math.Min(s.Max, s.Base+float64(distance)*s.PerLane)
}

// VehicleSpec describes one vehicle class. Sizes are in cells.
type VehicleSpec struct {
	Class  string  `yaml:"class"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Weight int     `yaml:"weight"` // Relative spawn frequency
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // False freezes road parameters at the initial level
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt        int     `yaml:"max_at"`        // Lane distance at which the initial level offset is measured
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports the first configuration error that would make the
// simulation ill-formed.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Field.Columns < 1:
		return fmt.Errorf("config: field.columns must be >= 1, got %d", c.Field.Columns)
	case c.Field.VisibleRows < 3:
		return fmt.Errorf("config: field.visible_rows must be >= 3, got %d", c.Field.VisibleRows)
	case c.Player.Size <= 0 || c.Player.Size > 1:
		return fmt.Errorf("config: player.size must be in (0, 1], got %v", c.Player.Size)
	case c.Lanes.RoadRunMin < 1 || c.Lanes.RoadRunMax < c.Lanes.RoadRunMin:
		return fmt.Errorf("config: invalid road run range %d..%d", c.Lanes.RoadRunMin, c.Lanes.RoadRunMax)
	case c.Lanes.MaxObstacles < 0:
		return fmt.Errorf("config: lanes.max_obstacles must be >= 0, got %d", c.Lanes.MaxObstacles)
	case c.Lanes.Speed.Max <= 0 || c.Lanes.SpawnRate.Max < 0:
		return fmt.Errorf("config: road speed and spawn rate ceilings must be positive")
	case c.Rules.RewardPerPoint < 0:
		return fmt.Errorf("config: rules.reward_per_point must be >= 0, got %d", c.Rules.RewardPerPoint)
	case len(c.Vehicles) == 0:
		return fmt.Errorf("config: at least one vehicle class is required")
	}

	for _, w := range c.Lanes.CrosswalkWeights {
		if w < 0 {
			return fmt.Errorf("config: crosswalk weights must be >= 0")
		}
	}

	total := 0
	for _, v := range c.Vehicles {
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("config: vehicle %q has non-positive size", v.Class)
		}
		if v.Weight < 0 {
			return fmt.Errorf("config: vehicle %q has negative weight", v.Class)
		}
		total += v.Weight
	}
	if total == 0 {
		return fmt.Errorf("config: vehicle weights sum to zero")
	}
	return nil
}
