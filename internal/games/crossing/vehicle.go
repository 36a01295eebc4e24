package crossing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// VehicleClass is the size/appearance category of a vehicle.
type VehicleClass int

const (
	VehicleCar VehicleClass = iota
	VehicleMinibus
	VehicleBus
)

// String returns the class name used in config files.
func (c VehicleClass) String() string {
	switch c {
	case VehicleMinibus:
		return "minibus"
	case VehicleBus:
		return "bus"
	default:
		return "car"
	}
}

// ParseVehicleClass maps a config class name to a VehicleClass.
func ParseVehicleClass(s string) (VehicleClass, error) {
	switch s {
	case "car":
		return VehicleCar, nil
	case "minibus":
		return VehicleMinibus, nil
	case "bus":
		return VehicleBus, nil
	default:
		return 0, fmt.Errorf("crossing: unknown vehicle class %q", s)
	}
}

// vehicleSpec is a resolved config.VehicleSpec.
type vehicleSpec struct {
	class         VehicleClass
	width, height float64
	weight        int
}

func resolveVehicleSpecs(in []config.VehicleSpec) ([]vehicleSpec, error) {
	out := make([]vehicleSpec, 0, len(in))
	for _, s := range in {
		class, err := ParseVehicleClass(s.Class)
		if err != nil {
			return nil, err
		}
		out = append(out, vehicleSpec{class: class, width: s.Width, height: s.Height, weight: s.Weight})
	}
	return out, nil
}

// Vehicle is a moving occupant of a road lane. Direction, speed and class
// are fixed at spawn time and exposed read-only.
type Vehicle struct {
	X    float64 // Horizontal center, in cells
	Lane int     // Index into the visible lane buffer

	direction     int
	speed         float64
	class         VehicleClass
	width, height float64
}

// Direction returns -1 or +1.
func (v Vehicle) Direction() int { return v.direction }

// Speed returns cells per second.
func (v Vehicle) Speed() float64 { return v.speed }

// Class returns the vehicle class.
func (v Vehicle) Class() VehicleClass { return v.class }

// Width returns the vehicle length along the lane, in cells.
func (v Vehicle) Width() float64 { return v.width }

// Height returns the vehicle extent across the lane, in cells.
func (v Vehicle) Height() float64 { return v.height }

// Box returns the collision box in playfield coordinates.
func (v Vehicle) Box() core.RectF {
	return core.CenteredRectF(v.X, float64(v.Lane)+0.5, v.width, v.height)
}

// offField reports whether the vehicle has left the playfield by more than
// its own width plus a fixed margin.
func (v Vehicle) offField(columns int) bool {
	margin := v.width + 2.0
	return v.X < -margin || v.X > float64(columns)+margin
}

// Spawner emits vehicles on road lanes at each lane's configured rate.
type Spawner struct {
	rng     *rand.Rand
	columns int
	specs   []vehicleSpec
	weights []int
}

// NewSpawner creates a spawner over the given vehicle specs.
func NewSpawner(rng *rand.Rand, columns int, specs []vehicleSpec) *Spawner {
	weights := make([]int, len(specs))
	for i, s := range specs {
		weights[i] = s.weight
	}
	return &Spawner{rng: rng, columns: columns, specs: specs, weights: weights}
}

// maxSpawnsPerCall caps the vehicles one lane can emit in a single call.
const maxSpawnsPerCall = 8

// MaybeSpawn advances the lane's spawn accumulator by dt and returns the
// vehicles due this tick. Several vehicles may spawn in one call when the
// rate outpaces the tick, up to maxSpawnsPerCall; credit beyond the cap is
// dropped so the accumulator stays in [0, 1).
func (s *Spawner) MaybeSpawn(lane *Lane, laneIndex int, dt float64) []Vehicle {
	if lane.Kind != LaneRoad || !(dt > 0) || math.IsInf(dt, 0) {
		return nil
	}

	lane.SpawnAccumulator += dt * lane.SpawnRate
	var out []Vehicle
	for lane.SpawnAccumulator >= 1.0 && len(out) < maxSpawnsPerCall {
		lane.SpawnAccumulator -= 1.0
		out = append(out, s.spawn(*lane, laneIndex))
	}
	if lane.SpawnAccumulator >= 1.0 || !(lane.SpawnAccumulator >= 0) {
		lane.SpawnAccumulator = math.Mod(lane.SpawnAccumulator, 1.0)
		if !(lane.SpawnAccumulator >= 0) {
			lane.SpawnAccumulator = 0
		}
	}
	return out
}

// spawn places a vehicle fully off-screen on the side it drives in from.
func (s *Spawner) spawn(lane Lane, laneIndex int) Vehicle {
	spec := s.specs[weightedIndex(s.rng, s.weights)]

	x := -spec.width
	if lane.Direction < 0 {
		x = float64(s.columns) + spec.width
	}

	return Vehicle{
		X:         x,
		Lane:      laneIndex,
		direction: lane.Direction,
		speed:     lane.Speed,
		class:     spec.class,
		width:     spec.width,
		height:    spec.height,
	}
}
