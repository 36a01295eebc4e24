package crossing

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// LaneKind classifies a lane as safe or hazardous.
type LaneKind int

const (
	LaneSidewalk LaneKind = iota
	LaneRoad
)

// String returns the lane kind name.
func (k LaneKind) String() string {
	if k == LaneRoad {
		return "road"
	}
	return "sidewalk"
}

// ObstacleKind is the look of a static sidewalk obstacle.
type ObstacleKind int

const (
	ObstacleBox ObstacleKind = iota
	ObstacleTree
	ObstacleHydrant

	obstacleKindCount = 3
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTree:
		return "tree"
	case ObstacleHydrant:
		return "hydrant"
	default:
		return "box"
	}
}

// Obstacle blocks one sidewalk cell.
type Obstacle struct {
	Column int          `json:"column"`
	Kind   ObstacleKind `json:"kind"`
}

// Lane is one horizontal row of the playfield.
type Lane struct {
	Kind LaneKind

	// Road only
	Direction        int     // -1 or +1
	Speed            float64 // Cells per second
	SpawnRate        float64 // Vehicles per second
	SpawnAccumulator float64 // In [0, 1) after every spawn decision
	Crosswalks       []int   // Marked columns, informational

	// Sidewalk only; columns are unique
	Obstacles []Obstacle
}

// Blocks reports whether the lane stops the player from entering column.
// Road lanes never block.
func (l Lane) Blocks(column int) bool {
	if l.Kind != LaneSidewalk {
		return false
	}
	for _, o := range l.Obstacles {
		if o.Column == column {
			return true
		}
	}
	return false
}

// HasCrosswalk reports whether column is marked as a crosswalk.
func (l Lane) HasCrosswalk(column int) bool {
	for _, c := range l.Crosswalks {
		if c == column {
			return true
		}
	}
	return false
}

// PhaseKind is the state of the lane generation cursor.
type PhaseKind int

const (
	PhaseNeedSidewalk PhaseKind = iota
	PhaseRoads
)

// Phase is the generation cursor: either the next lane must be a
// sidewalk, or Remaining road lanes are still owed.
type Phase struct {
	Kind      PhaseKind
	Remaining int
}

// LaneGenerator produces the endless lane sequence: isolated sidewalks
// separated by runs of road lanes whose length is drawn from the
// configured range.
type LaneGenerator struct {
	rng        *rand.Rand
	columns    int
	lanes      config.CrossingLanes
	crosswalks bool
	difficulty *config.DifficultyManager
	phase      Phase
}

// NewLaneGenerator creates a generator positioned before the first sidewalk.
func NewLaneGenerator(rng *rand.Rand, columns int, cfg config.CrossingConfig) *LaneGenerator {
	return &LaneGenerator{
		rng:        rng,
		columns:    columns,
		lanes:      cfg.Lanes,
		crosswalks: cfg.Rules.Crosswalks,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Lanes),
		phase:      Phase{Kind: PhaseNeedSidewalk},
	}
}

// Reset rewinds the cursor so the next lane is a sidewalk.
func (g *LaneGenerator) Reset() {
	g.phase = Phase{Kind: PhaseNeedSidewalk}
}

// Phase returns the current generation cursor.
func (g *LaneGenerator) Phase() Phase {
	return g.phase
}

// Difficulty returns the manager used to scale road lanes.
func (g *LaneGenerator) Difficulty() *config.DifficultyManager {
	return g.difficulty
}

// Next emits the next lane. distance drives road difficulty.
func (g *LaneGenerator) Next(distance int) Lane {
	if g.phase.Kind == PhaseNeedSidewalk {
		g.phase = Phase{Kind: PhaseRoads, Remaining: g.roadRun()}
		return g.sidewalk()
	}

	remaining := g.phase.Remaining - 1
	if remaining <= 0 {
		g.phase = Phase{Kind: PhaseNeedSidewalk}
	} else {
		g.phase = Phase{Kind: PhaseRoads, Remaining: remaining}
	}
	return g.road(distance)
}

func (g *LaneGenerator) roadRun() int {
	lo, hi := g.lanes.RoadRunMin, g.lanes.RoadRunMax
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *LaneGenerator) sidewalk() Lane {
	lane := Lane{Kind: LaneSidewalk}

	// Leave at least one column open so every sidewalk can be entered.
	count := g.rng.Intn(g.lanes.MaxObstacles + 1)
	if count > g.columns-1 {
		count = g.columns - 1
	}
	for _, col := range g.distinctColumns(count) {
		lane.Obstacles = append(lane.Obstacles, Obstacle{
			Column: col,
			Kind:   ObstacleKind(g.rng.Intn(obstacleKindCount)),
		})
	}
	return lane
}

func (g *LaneGenerator) road(distance int) Lane {
	dir := 1
	if g.rng.Intn(2) == 0 {
		dir = -1
	}

	lane := Lane{
		Kind:      LaneRoad,
		Direction: dir,
		Speed:     g.difficulty.Speed(distance),
		SpawnRate: g.difficulty.SpawnRate(distance),
	}

	if g.crosswalks && len(g.lanes.CrosswalkWeights) > 0 {
		count := weightedIndex(g.rng, g.lanes.CrosswalkWeights)
		lane.Crosswalks = g.distinctColumns(count)
	}
	return lane
}

// distinctColumns draws up to count unique columns by rejection sampling.
// The attempt budget is bounded, so a degenerate request returns fewer
// columns instead of looping.
func (g *LaneGenerator) distinctColumns(count int) []int {
	if count > g.columns {
		count = g.columns
	}
	if count <= 0 {
		return nil
	}

	used := make(map[int]bool, count)
	cols := make([]int, 0, count)
	for attempts := 8 * count; len(cols) < count && attempts > 0; attempts-- {
		c := g.rng.Intn(g.columns)
		if used[c] {
			continue
		}
		used[c] = true
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// weightedIndex draws an index with probability proportional to its weight.
// Returns 0 when all weights are zero.
func weightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	roll := rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
