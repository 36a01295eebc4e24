package crossing

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func TestShiftAndTrim(t *testing.T) {
	in := Frame{
		Lanes:    field("srrsr"),
		Vehicles: []Vehicle{car(1, 1), car(2, 2), car(3, 4)},
		Player:   Player{Column: 3, Lane: 3},
	}
	orig := Frame{
		Lanes:    append([]Lane(nil), in.Lanes...),
		Vehicles: append([]Vehicle(nil), in.Vehicles...),
		Player:   in.Player,
	}

	out := ShiftAndTrim(in, 2)

	if !reflect.DeepEqual(in, orig) {
		t.Error("ShiftAndTrim modified its input")
	}
	if !reflect.DeepEqual(out.Lanes, field("rsr")) {
		t.Errorf("lanes = %+v, expected the top three", out.Lanes)
	}
	if len(out.Vehicles) != 2 {
		t.Fatalf("vehicles = %d, expected 2 (lane 1 car dropped)", len(out.Vehicles))
	}
	if out.Vehicles[0].Lane != 0 || out.Vehicles[0].X != 2 {
		t.Errorf("vehicle 0 = %+v, expected lane 0 at X=2", out.Vehicles[0])
	}
	if out.Vehicles[1].Lane != 2 || out.Vehicles[1].X != 3 {
		t.Errorf("vehicle 1 = %+v, expected lane 2 at X=3", out.Vehicles[1])
	}
	if out.Player != (Player{Column: 3, Lane: 1}) {
		t.Errorf("player = %+v, expected column 3 lane 1", out.Player)
	}
}

func TestShiftAndTrimEdges(t *testing.T) {
	in := Frame{
		Lanes:    field("srs"),
		Vehicles: []Vehicle{car(1, 1)},
		Player:   Player{Column: 2, Lane: 1},
	}

	if out := ShiftAndTrim(in, 0); !reflect.DeepEqual(out, in) {
		t.Error("shift by 0 should be the identity")
	}

	out := ShiftAndTrim(in, 5)
	if len(out.Lanes) != 0 || len(out.Vehicles) != 0 {
		t.Errorf("over-shift should empty the frame, got %d lanes %d vehicles", len(out.Lanes), len(out.Vehicles))
	}
	if out.Player.Lane != 0 {
		t.Errorf("player lane = %d, expected clamp to 0", out.Player.Lane)
	}
}

func TestRecenterScrolls(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig())
	w.lanes = field("srrsrsrrsrs")
	w.vehicles = []Vehicle{car(1, 0), car(2, 4)}
	w.player = Player{Column: 3, Lane: 5}
	top := w.lanes[10]

	w.recenter()

	if len(w.lanes) != 11 {
		t.Fatalf("lanes = %d, expected 11", len(w.lanes))
	}
	if w.player.Lane != 4 {
		t.Errorf("player lane = %d, expected 4", w.player.Lane)
	}
	if !reflect.DeepEqual(w.lanes[9], top) {
		t.Error("old top lane should move down one slot")
	}
	if len(w.vehicles) != 1 || w.vehicles[0].Lane != 3 {
		t.Errorf("vehicles = %+v, expected one car re-indexed to lane 3", w.vehicles)
	}
}

func TestRecenterBelowThreshold(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig())
	w.lanes = field("srrsrsrrsrs")
	w.player = Player{Column: 3, Lane: 4}
	before := append([]Lane(nil), w.lanes...)

	w.recenter()

	if w.player.Lane != 4 || !reflect.DeepEqual(w.lanes, before) {
		t.Error("recenter below the threshold should not scroll")
	}
}

func TestRecenterRestoresWindowSize(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig())

	// Short buffer is topped up.
	w.lanes = field("srrs")
	w.player = Player{Column: 3, Lane: 1}
	w.recenter()
	if len(w.lanes) != 11 {
		t.Errorf("lanes = %d after top-up, expected 11", len(w.lanes))
	}

	// Long buffer is trimmed from the bottom.
	w.lanes = field("srrsrsrrsrsrrsr")
	w.vehicles = []Vehicle{car(1, 1), car(2, 6)}
	w.player = Player{Column: 3, Lane: 4}
	w.recenter()
	if len(w.lanes) != 11 {
		t.Errorf("lanes = %d after trim, expected 11", len(w.lanes))
	}
	if w.player.Lane != 0 {
		t.Errorf("player lane = %d, expected 0 after trimming 4 lanes", w.player.Lane)
	}
	if len(w.vehicles) != 1 || w.vehicles[0].Lane != 2 {
		t.Errorf("vehicles = %+v, expected one car on lane 2", w.vehicles)
	}
}

func TestAssertWindowPanics(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig())
	w.vehicles = []Vehicle{car(1, 42)}

	defer func() {
		if recover() == nil {
			t.Error("out-of-window vehicle should panic")
		}
	}()
	w.assertWindow()
}
