package crossing

import "testing"

func pilotSnapshot(kinds ...string) Snapshot {
	s := Snapshot{
		Columns:    7,
		Rows:       len(kinds),
		PlayerSize: 0.75,
		Policy:     DeathBoundingBox.String(),
		Player:     Player{Column: 3, Lane: 0},
	}
	for _, k := range kinds {
		l := LaneSnapshot{Kind: k}
		if k == "road" {
			l.Direction, l.Speed = 1, 2
		}
		s.Lanes = append(s.Lanes, l)
	}
	return s
}

func TestAutopilotClimbsClearRoad(t *testing.T) {
	s := pilotSnapshot("sidewalk", "road", "sidewalk")

	d, ok := NewAutopilot().Decide(s)
	if !ok || d != DirUp {
		t.Errorf("Decide() = %v, %v, expected up", d, ok)
	}
}

func TestAutopilotWaitsForTraffic(t *testing.T) {
	s := pilotSnapshot("sidewalk", "road", "sidewalk")
	s.Vehicles = []VehicleSnapshot{{Lane: 1, X: 2.5, Width: 0.9, Height: 0.65, Direction: 1, Speed: 2}}

	if d, ok := NewAutopilot().Decide(s); ok {
		t.Errorf("Decide() = %v, expected to wait for the car", d)
	}

	// Car already past the player: safe to go.
	s.Vehicles[0].X = 5.5
	if d, ok := NewAutopilot().Decide(s); !ok || d != DirUp {
		t.Errorf("Decide() = %v, %v, expected up", d, ok)
	}
}

func TestAutopilotSidestepsObstacle(t *testing.T) {
	s := pilotSnapshot("sidewalk", "sidewalk")
	s.Lanes[1].Obstacles = []Obstacle{{Column: 3, Kind: ObstacleTree}}

	d, ok := NewAutopilot().Decide(s)
	if !ok || (d != DirLeft && d != DirRight) {
		t.Errorf("Decide() = %v, %v, expected a sidestep", d, ok)
	}

	// Wall on the left: must go right.
	s.Lanes[0].Obstacles = []Obstacle{{Column: 2, Kind: ObstacleBox}}
	if d, ok := NewAutopilot().Decide(s); !ok || d != DirRight {
		t.Errorf("Decide() = %v, %v, expected right", d, ok)
	}
}

func TestAutopilotEscapesDanger(t *testing.T) {
	s := pilotSnapshot("sidewalk", "road", "sidewalk")
	s.Player = Player{Column: 3, Lane: 1}
	s.Lanes[2].Obstacles = []Obstacle{{Column: 3, Kind: ObstacleBox}}
	s.Vehicles = []VehicleSnapshot{{Lane: 1, X: 1.9, Width: 0.9, Height: 0.65, Direction: 1, Speed: 2}}

	// The car sweeps columns 2 and 3; column 4 stays clear.
	d, ok := NewAutopilot().Decide(s)
	if !ok || d != DirRight {
		t.Fatalf("Decide() = %v, %v, expected right", d, ok)
	}
}

func TestAutopilotIdleWhenTerminal(t *testing.T) {
	s := pilotSnapshot("sidewalk", "road")
	s.Terminal = true

	if _, ok := NewAutopilot().Decide(s); ok {
		t.Error("terminal snapshot should produce no move")
	}
}

func TestAutopilotRespectsStrictPolicy(t *testing.T) {
	s := pilotSnapshot("sidewalk", "road", "sidewalk")
	s.Policy = DeathStrictLane.String()

	if d, ok := NewAutopilot().Decide(s); ok && d == DirUp {
		t.Error("strict policy: roads are never safe")
	}
}
