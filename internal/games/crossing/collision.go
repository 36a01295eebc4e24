package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// DeathPolicy selects how the player dies.
type DeathPolicy int

const (
	// DeathBoundingBox kills the player when a vehicle's box overlaps theirs.
	DeathBoundingBox DeathPolicy = iota
	// DeathStrictLane kills the player the moment they stand on a road.
	DeathStrictLane
)

// String returns the policy name.
func (p DeathPolicy) String() string {
	if p == DeathStrictLane {
		return "strict"
	}
	return "bbox"
}

// PlayerBox returns the player's collision box, centred on their cell.
func (w *World) PlayerBox() core.RectF {
	return core.CenteredRectF(
		float64(w.player.Column)+0.5,
		float64(w.player.Lane)+0.5,
		w.playerSize, w.playerSize,
	)
}

// CheckDeath evaluates the active death policy and reports whether the run
// is over. Once terminal it keeps returning true without side effects.
func (w *World) CheckDeath() bool {
	if w.terminal {
		return true
	}
	if w.collides() {
		w.gameOver()
	}
	return w.terminal
}

func (w *World) collides() bool {
	lane := w.lanes[w.player.Lane]
	if w.policy == DeathStrictLane && lane.Kind == LaneRoad {
		return true
	}

	box := w.PlayerBox()
	for _, v := range w.vehicles {
		if v.Lane == w.player.Lane && v.Box().Intersects(box) {
			return true
		}
	}
	return false
}

func (w *World) gameOver() {
	w.terminal = true
	w.running = false

	newBest := w.score > w.best
	if newBest {
		w.best = w.score
	}
	w.sink.GameOver(GameOverEvent{Score: w.score, Best: w.best, NewBest: newBest})

	if w.cfg.Rules.Rewards {
		w.sink.CurrencyAwarded(w.score * w.cfg.Rules.RewardPerPoint)
	}
}
