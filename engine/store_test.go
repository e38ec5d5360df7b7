package engine

import (
	"testing"

	"termpong/component"
	"termpong/core"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore[component.ScoreComponent]()
	e := core.Entity(1)

	if _, ok := s.Get(e); ok {
		t.Fatal("Get on empty store returned ok")
	}

	s.Set(e, component.ScoreComponent{Side: core.SideLeft, Points: 3})
	val, ok := s.Get(e)
	if !ok || val.Points != 3 {
		t.Errorf("Get = (%+v, %v), want Points=3", val, ok)
	}

	// Set is an upsert
	s.Set(e, component.ScoreComponent{Side: core.SideLeft, Points: 4})
	val, _ = s.Get(e)
	if val.Points != 4 {
		t.Errorf("after update Points = %d, want 4", val.Points)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[component.BallComponent]()
	e1, e2 := core.Entity(1), core.Entity(2)
	s.Set(e1, component.BallComponent{})
	s.Set(e2, component.BallComponent{Rally: 5})

	s.Remove(e1)
	if s.Has(e1) {
		t.Error("entity still present after Remove")
	}
	if !s.Has(e2) {
		t.Error("unrelated entity removed")
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}

	// Removing a missing entity is a no-op
	s.Remove(core.Entity(99))
	if s.Count() != 1 {
		t.Error("Remove of missing entity changed the store")
	}
}

func TestStoreAll(t *testing.T) {
	s := NewStore[component.PaddleComponent]()
	s.Set(core.Entity(1), component.PaddleComponent{Side: core.SideLeft})
	s.Set(core.Entity(2), component.PaddleComponent{Side: core.SideRight})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("All returned %d entities, want 2", len(all))
	}

	// Returned slice must be a copy
	all[0] = core.Entity(42)
	fresh := s.All()
	if fresh[0] == core.Entity(42) {
		t.Error("All exposed internal entity slice")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[component.ScoreComponent]()
	s.Set(core.Entity(1), component.ScoreComponent{})
	s.Set(core.Entity(2), component.ScoreComponent{})

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count after Clear = %d", s.Count())
	}
	if s.Has(core.Entity(1)) {
		t.Error("entity survived Clear")
	}
}
