package engine

import (
	"testing"

	"termpong/core"
)

func TestResourceStoreAddGet(t *testing.T) {
	rs := NewResourceStore()

	if _, ok := GetResource[*ArenaResource](rs); ok {
		t.Fatal("empty store returned a resource")
	}

	arena := &ArenaResource{FieldWidth: 80, FieldHeight: 22}
	AddResource(rs, arena)

	got, ok := GetResource[*ArenaResource](rs)
	if !ok {
		t.Fatal("resource not found after Add")
	}
	if got != arena {
		t.Error("resource instance not shared")
	}
}

func TestMustGetResourcePanics(t *testing.T) {
	rs := NewResourceStore()

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustGetResource did not panic for missing resource")
		}
	}()
	MustGetResource[*TimeResource](rs)
}

func TestInputResourceDrain(t *testing.T) {
	ir := &InputResource{}

	ir.QueueStep(core.SideLeft, -1)
	ir.QueueStep(core.SideLeft, -1)
	ir.QueueStep(core.SideRight, 2)

	if got := ir.DrainSteps(core.SideLeft); got != -2 {
		t.Errorf("left steps = %d, want -2", got)
	}
	if got := ir.DrainSteps(core.SideLeft); got != 0 {
		t.Errorf("second drain = %d, want 0", got)
	}
	if got := ir.DrainSteps(core.SideRight); got != 2 {
		t.Errorf("right steps = %d, want 2", got)
	}
}

func TestArenaGoalCols(t *testing.T) {
	a := &ArenaResource{FieldWidth: 60}
	if a.GoalCol(core.SideLeft) != 0 {
		t.Errorf("left goal col = %d", a.GoalCol(core.SideLeft))
	}
	if a.GoalCol(core.SideRight) != 59 {
		t.Errorf("right goal col = %d", a.GoalCol(core.SideRight))
	}
}
