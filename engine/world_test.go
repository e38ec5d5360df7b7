package engine

import (
	"testing"
	"time"

	"termpong/component"
	"termpong/event"
)

type recordingSystem struct {
	name     string
	priority int
	order    *[]string
}

func (s *recordingSystem) Update(world *World, dt time.Duration) {
	*s.order = append(*s.order, s.name)
}

func (s *recordingSystem) Priority() int { return s.priority }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	// Registered out of order on purpose
	w.AddSystem(&recordingSystem{name: "collision", priority: 25, order: &order})
	w.AddSystem(&recordingSystem{name: "paddle", priority: 10, order: &order})
	w.AddSystem(&recordingSystem{name: "ball", priority: 20, order: &order})

	w.Update(16 * time.Millisecond)

	want := []string{"paddle", "ball", "collision"}
	if len(order) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Paddles.Set(e, component.PaddleComponent{})
	w.Kinetics.Set(e, component.KineticComponent{})

	w.DestroyEntity(e)

	if w.Paddles.Has(e) || w.Kinetics.Has(e) {
		t.Error("components survived DestroyEntity")
	}
}

func TestClearResetsEntityIDs(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.Balls.Set(first, component.BallComponent{})

	w.Clear()

	if w.Balls.Count() != 0 {
		t.Error("store not cleared")
	}
	if id := w.CreateEntity(); id != first {
		t.Errorf("entity ids not reset: got %d, want %d", id, first)
	}
}

func TestPushEventBeforeInitIsNoop(t *testing.T) {
	w := NewWorld()
	// Must not panic without event metadata wired
	w.PushEvent(event.EventGoal, nil)
	if w.FrameNumber() != 0 {
		t.Error("frame number nonzero without source")
	}
}
