package gfx_test

import (
	"testing"

	"github.com/braticpetar/gloom/pkg/gfx"
)

func queuePoll(events []gfx.Event) func() (gfx.Event, bool) {
	i := 0
	return func() (gfx.Event, bool) {
		if i >= len(events) {
			return nil, false
		}
		event := events[i]
		i++
		return event, true
	}
}

func TestDrainAll_ConsumesEverything(t *testing.T) {
	pending := []gfx.Event{
		gfx.KeyPress{Code: 1},
		gfx.MotionNotify{X: 10, Y: 20},
		gfx.DestroyNotify{},
	}

	handled := 0
	count := gfx.DrainAll().Consume(queuePoll(pending), func(gfx.Event) {
		handled++
	})

	if count != len(pending) {
		t.Errorf("want %d consumed, got %d", len(pending), count)
	}
	if handled != len(pending) {
		t.Errorf("want %d handled, got %d", len(pending), handled)
	}
}

func TestDrainAll_EmptyQueue(t *testing.T) {
	count := gfx.DrainAll().Consume(queuePoll(nil), func(gfx.Event) {
		t.Error("handler should not run on an empty queue")
	})
	if count != 0 {
		t.Errorf("want 0 consumed, got %d", count)
	}
}

func TestDrainMax_StopsAtLimit(t *testing.T) {
	pending := []gfx.Event{
		gfx.KeyPress{Code: 1},
		gfx.KeyPress{Code: 2},
		gfx.KeyPress{Code: 3},
	}

	var handled []gfx.Event
	count := gfx.DrainMax(2).Consume(queuePoll(pending), func(e gfx.Event) {
		handled = append(handled, e)
	})

	if count != 2 {
		t.Errorf("want 2 consumed, got %d", count)
	}
	if len(handled) != 2 {
		t.Fatalf("want 2 handled, got %d", len(handled))
	}
	if handled[0] != pending[0] || handled[1] != pending[1] {
		t.Errorf("events handled out of order: %v", handled)
	}
}

func TestDrainMax_NonPositiveLimitHandlesOne(t *testing.T) {
	pending := []gfx.Event{
		gfx.KeyPress{Code: 1},
		gfx.KeyPress{Code: 2},
	}

	count := gfx.DrainMax(0).Consume(queuePoll(pending), func(gfx.Event) {})
	if count != 1 {
		t.Errorf("want 1 consumed, got %d", count)
	}
}
