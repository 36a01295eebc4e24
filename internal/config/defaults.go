package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default road crossing configuration.
// Vehicle sizes come from 54×39, 72×46 and 104×46 point sprites on a
// 60 point tile.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Field: CrossingField{
			Columns:     7,
			VisibleRows: 11,
		},
		Player: CrossingPlayer{
			Size: 0.75,
			Skin: "classic",
		},
		Rules: CrossingRules{
			DeathOnRoadLane: false,
			Rewards:         true,
			RewardPerPoint:  1,
			Crosswalks:      true,
		},
		Lanes: CrossingLanes{
			RoadRunMin:       1,
			RoadRunMax:       3,
			MaxObstacles:     2,
			CrosswalkWeights: []int{60, 30, 10},
			Speed: RoadScaling{
				Base:    2.0,
				PerLane: 0.05,
				Max:     6.0,
			},
			SpawnRate: RoadScaling{
				Base:    0.6,
				PerLane: 0.01,
				Max:     2.0,
			},
		},
		Vehicles: []VehicleSpec{
			{Class: "car", Width: 0.9, Height: 0.65, Weight: 65},
			{Class: "minibus", Width: 1.2, Height: 0.7667, Weight: 20},
			{Class: "bus", Width: 1.7333, Height: 0.7667, Weight: 15},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAt:        140, // Spawn rate reaches its ceiling here
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing", "crossing_classic":
		return defaultCrossingYAML
	default:
		return nil
	}
}
