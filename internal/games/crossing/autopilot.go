package crossing

import "math"

// Autopilot picks moves from snapshots. It drives the spectator demo and
// soak tests; it is cautious rather than optimal.
type Autopilot struct {
	LookAhead float64 // Seconds of traffic motion to consider
	Margin    float64 // Extra clearance around the player, in cells
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{LookAhead: 0.6, Margin: 0.3}
}

// Decide returns the next move, or false to wait this tick.
func (a *Autopilot) Decide(s Snapshot) (Direction, bool) {
	if s.Terminal || len(s.Lanes) == 0 {
		return 0, false
	}

	p := s.Player
	next := p.Lane + 1
	canClimb := next < len(s.Lanes) && !s.Lanes[next].Blocked(p.Column)

	if canClimb && a.safe(s, next, p.Column) {
		return DirUp, true
	}

	// Danger here, or a wall above: look sideways.
	if !a.safe(s, p.Lane, p.Column) || (next < len(s.Lanes) && !canClimb) {
		if steps := a.sidesteps(s); len(steps) > 0 {
			return steps[0], true
		}
	}
	return 0, false
}

// sidesteps lists horizontal moves into safe cells, preferring the one
// that leads under an open cell of the lane above.
func (a *Autopilot) sidesteps(s Snapshot) []Direction {
	p := s.Player
	var good, ok []Direction
	for _, d := range []Direction{DirLeft, DirRight} {
		col := p.Column - 1
		if d == DirRight {
			col = p.Column + 1
		}
		if col < 0 || col >= s.Columns || s.Lanes[p.Lane].Blocked(col) || !a.safe(s, p.Lane, col) {
			continue
		}
		if next := p.Lane + 1; next < len(s.Lanes) && !s.Lanes[next].Blocked(col) {
			good = append(good, d)
		} else {
			ok = append(ok, d)
		}
	}
	return append(good, ok...)
}

// safe reports whether no vehicle in lane will come near column within the
// look-ahead window.
func (a *Autopilot) safe(s Snapshot, lane, column int) bool {
	if s.Lanes[lane].Kind != LaneRoad.String() {
		return true
	}
	if s.Policy == DeathStrictLane.String() {
		return false
	}

	half := s.PlayerSize/2 + a.Margin
	lo, hi := float64(column)+0.5-half, float64(column)+0.5+half

	for _, v := range s.Vehicles {
		if v.Lane != lane {
			continue
		}
		end := v.X + float64(v.Direction)*v.Speed*a.LookAhead
		vlo := math.Min(v.X, end) - v.Width/2
		vhi := math.Max(v.X, end) + v.Width/2
		if vlo < hi && lo < vhi {
			return false
		}
	}
	return true
}
