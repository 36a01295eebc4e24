package crossing

// LaneSnapshot is the serializable view of a lane.
type LaneSnapshot struct {
	Kind       string     `json:"kind"`
	Direction  int        `json:"direction,omitempty"`
	Speed      float64    `json:"speed,omitempty"`
	SpawnRate  float64    `json:"spawn_rate,omitempty"`
	Crosswalks []int      `json:"crosswalks,omitempty"`
	Obstacles  []Obstacle `json:"obstacles,omitempty"`
}

// VehicleSnapshot is the serializable view of a vehicle.
type VehicleSnapshot struct {
	Lane      int     `json:"lane"`
	X         float64 `json:"x"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Direction int     `json:"direction"`
	Speed     float64 `json:"speed"`
	Class     string  `json:"class"`
}

// Snapshot captures the world for determinism tests, spectators and bots.
type Snapshot struct {
	Tick       int               `json:"tick"`
	Columns    int               `json:"columns"`
	Rows       int               `json:"rows"`
	Score      int               `json:"score"`
	Best       int               `json:"best"`
	Terminal   bool              `json:"terminal"`
	Running    bool              `json:"running"`
	Policy     string            `json:"policy"`
	PlayerSize float64           `json:"player_size"`
	Player     Player            `json:"player"`
	Lanes      []LaneSnapshot    `json:"lanes"`
	Vehicles   []VehicleSnapshot `json:"vehicles"`
}

// Snapshot returns a deep copy of the visible world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       w.ticks,
		Columns:    w.columns,
		Rows:       w.rows,
		Score:      w.score,
		Best:       w.best,
		Terminal:   w.terminal,
		Running:    w.running,
		Policy:     w.policy.String(),
		PlayerSize: w.playerSize,
		Player:     w.player,
		Lanes:      make([]LaneSnapshot, len(w.lanes)),
		Vehicles:   make([]VehicleSnapshot, len(w.vehicles)),
	}
	for i, l := range w.lanes {
		s.Lanes[i] = LaneSnapshot{
			Kind:       l.Kind.String(),
			Direction:  l.Direction,
			Speed:      l.Speed,
			SpawnRate:  l.SpawnRate,
			Crosswalks: append([]int(nil), l.Crosswalks...),
			Obstacles:  append([]Obstacle(nil), l.Obstacles...),
		}
	}
	for i, v := range w.vehicles {
		s.Vehicles[i] = VehicleSnapshot{
			Lane:      v.Lane,
			X:         v.X,
			Width:     v.width,
			Height:    v.height,
			Direction: v.direction,
			Speed:     v.speed,
			Class:     v.class.String(),
		}
	}
	return s
}

// Blocked reports whether the snapshot lane blocks column.
func (l LaneSnapshot) Blocked(column int) bool {
	for _, o := range l.Obstacles {
		if o.Column == column {
			return true
		}
	}
	return false
}
