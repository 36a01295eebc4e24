package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action string = %q", Action(999).String())
	}
}
