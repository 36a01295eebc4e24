package crossing

import "fmt"

// Frame is the scrollable part of the world: the lane buffer and everything
// indexed into it.
type Frame struct {
	Lanes    []Lane
	Vehicles []Vehicle
	Player   Player
}

// ShiftAndTrim scrolls the frame up by n lanes. The n bottom lanes are
// dropped together with their vehicles, remaining vehicles and the player
// are re-indexed, and the player lane never goes below 0. The input frame
// is not modified.
func ShiftAndTrim(f Frame, n int) Frame {
	if n <= 0 {
		return f
	}
	if n > len(f.Lanes) {
		n = len(f.Lanes)
	}

	out := Frame{
		Lanes:    append([]Lane(nil), f.Lanes[n:]...),
		Vehicles: make([]Vehicle, 0, len(f.Vehicles)),
		Player:   f.Player,
	}
	for _, v := range f.Vehicles {
		if v.Lane < n {
			continue
		}
		v.Lane -= n
		out.Vehicles = append(out.Vehicles, v)
	}

	out.Player.Lane -= n
	if out.Player.Lane < 0 {
		out.Player.Lane = 0
	}
	return out
}

func (w *World) frame() Frame {
	return Frame{Lanes: w.lanes, Vehicles: w.vehicles, Player: w.player}
}

func (w *World) setFrame(f Frame) {
	w.lanes = f.Lanes
	w.vehicles = f.Vehicles
	w.player = f.Player
}

// recenter keeps the player below the middle of the window by scrolling,
// then restores the buffer to exactly the visible row count.
func (w *World) recenter() {
	if w.player.Lane >= w.rows/2 {
		w.setFrame(ShiftAndTrim(w.frame(), 1))
		w.lanes = append(w.lanes, w.gen.Next(w.score+len(w.lanes)))
	}

	for len(w.lanes) < w.rows {
		w.lanes = append(w.lanes, w.gen.Next(w.score+len(w.lanes)))
	}
	if extra := len(w.lanes) - w.rows; extra > 0 {
		w.setFrame(ShiftAndTrim(w.frame(), extra))
	}

	w.assertWindow()
}

// assertWindow panics when the scrolling bookkeeping has drifted.
func (w *World) assertWindow() {
	if len(w.lanes) != w.rows {
		panic(fmt.Sprintf("crossing: window has %d lanes, expected %d", len(w.lanes), w.rows))
	}
	if w.player.Lane < 0 || w.player.Lane >= w.rows {
		panic(fmt.Sprintf("crossing: player lane %d outside window of %d", w.player.Lane, w.rows))
	}
	for _, v := range w.vehicles {
		if v.Lane < 0 || v.Lane >= w.rows {
			panic(fmt.Sprintf("crossing: vehicle lane %d outside window of %d", v.Lane, w.rows))
		}
	}
}
