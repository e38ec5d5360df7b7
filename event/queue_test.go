package event

import (
	"sync"
	"testing"

	"termpong/constants"
	"termpong/core"
)

func TestPushConsumeFIFO(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventWallBounce, Frame: 1})
	eq.Push(GameEvent{Type: EventPaddleBounce, Frame: 2})
	eq.Push(GameEvent{Type: EventGoal, Frame: 3})

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	want := []EventType{EventWallBounce, EventPaddleBounce, EventGoal}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("event %d: got type %d, want %d", i, ev.Type, want[i])
		}
	}
}

func TestConsumeEmptyReturnsNil(t *testing.T) {
	eq := NewEventQueue()
	if events := eq.Consume(); events != nil {
		t.Errorf("expected nil from empty queue, got %d events", len(events))
	}
}

func TestConsumeDrainsQueue(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventGoal})

	if got := len(eq.Consume()); got != 1 {
		t.Fatalf("first consume: got %d events", got)
	}
	if events := eq.Consume(); events != nil {
		t.Errorf("second consume should be empty, got %d events", len(events))
	}
}

func TestOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()

	// Overfill by half the capacity
	total := constants.EventQueueSize + constants.EventQueueSize/2
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventWallBounce, Frame: int64(i)})
	}

	events := eq.Consume()
	if len(events) > constants.EventQueueSize {
		t.Fatalf("consumed %d events, capacity is %d", len(events), constants.EventQueueSize)
	}

	// The newest event must have survived
	last := events[len(events)-1]
	if last.Frame != int64(total-1) {
		t.Errorf("newest frame = %d, want %d", last.Frame, total-1)
	}
}

func TestConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()

	const producers = 8
	const perProducer = 16 // Stays under capacity
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(GameEvent{
					Type:    EventSoundRequest,
					Payload: &SoundRequestPayload{Sound: core.SoundWall},
				})
			}
		}()
	}
	wg.Wait()

	events := eq.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("got %d events, want %d", len(events), producers*perProducer)
	}
	for _, ev := range events {
		if ev.Payload == nil {
			t.Fatal("consumed event with nil payload: partial write published")
		}
	}
}
