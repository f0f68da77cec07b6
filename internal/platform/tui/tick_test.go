package tui

import (
	"testing"
	"time"
)

func TestTickSourceGenerations(t *testing.T) {
	ts := newTickSource(250 * time.Millisecond)

	if cmd := ts.take(); cmd != nil {
		t.Fatal("idle source must not queue a tick")
	}

	ts.Start()
	first := ts.gen
	if cmd := ts.take(); cmd == nil {
		t.Fatal("Start should queue the first tick")
	}
	if cmd := ts.take(); cmd != nil {
		t.Fatal("take should clear the queued tick")
	}

	if next, ok := ts.accept(TickMsg{Gen: first}); !ok || next == nil {
		t.Fatal("current-generation tick should be accepted and rescheduled")
	}

	ts.Stop()
	if _, ok := ts.accept(TickMsg{Gen: first}); ok {
		t.Fatal("tick after Stop must be dropped")
	}

	ts.Start()
	if _, ok := ts.accept(TickMsg{Gen: first}); ok {
		t.Fatal("tick from an older generation must be dropped")
	}
	if _, ok := ts.accept(TickMsg{Gen: ts.gen}); !ok {
		t.Fatal("tick from the new generation should be accepted")
	}
}

func TestStopDiscardsQueuedStart(t *testing.T) {
	ts := newTickSource(time.Second)
	ts.Start()
	ts.Stop()
	if cmd := ts.take(); cmd != nil {
		t.Fatal("a start followed by a stop must not leave a queued tick")
	}
}
