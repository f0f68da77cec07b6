package gesture

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type target struct {
	revealed []core.Coord
	flagged  []core.Coord
}

func (t *target) Reveal(c core.Coord)     { t.revealed = append(t.revealed, c) }
func (t *target) ToggleFlag(c core.Coord) { t.flagged = append(t.flagged, c) }

func TestApply(t *testing.T) {
	tgt := &target{}
	Apply(tgt, Event{Cell: core.C(1, 2), Kind: KindTap})
	Apply(tgt, Event{Cell: core.C(3, 4), Kind: KindLongPress})
	Apply(tgt, Event{Cell: core.C(5, 6), Kind: KindSecondary})
	Apply(tgt, Event{Cell: core.C(7, 8), Kind: KindNone})

	if len(tgt.revealed) != 1 || tgt.revealed[0] != core.C(1, 2) {
		t.Fatalf("revealed = %v", tgt.revealed)
	}
	if len(tgt.flagged) != 2 || tgt.flagged[0] != core.C(3, 4) || tgt.flagged[1] != core.C(5, 6) {
		t.Fatalf("flagged = %v", tgt.flagged)
	}
}

func TestSetRoutesEventsPerCell(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	var got []Event
	s := NewSet(clock, DefaultThreshold, func(ev Event) { got = append(got, ev) })

	a, b := core.C(0, 0), core.C(2, 1)
	if s.For(a) != s.For(a) {
		t.Fatalf("For should return the same recognizer for a cell")
	}

	s.For(a).Press()
	s.For(a).Release()
	s.For(b).Press()
	clock.Advance(time.Second)

	want := []Event{{Cell: a, Kind: KindTap}, {Cell: b, Kind: KindLongPress}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSetCancel(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	var got []Event
	s := NewSet(clock, DefaultThreshold, func(ev Event) { got = append(got, ev) })

	a, b := core.C(0, 0), core.C(1, 0)
	s.For(a).Press()
	s.For(b).Press()
	s.CancelOthers(b)
	if s.For(a).Pending() {
		t.Fatalf("press on %v should be cancelled", a)
	}
	if !s.For(b).Pending() {
		t.Fatalf("press on %v should stay live", b)
	}

	s.CancelAll()
	clock.Advance(2 * time.Second)
	if len(got) != 0 {
		t.Fatalf("expected no events after CancelAll, got %v", got)
	}
}

func TestCancelAllStartsNewGeneration(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	var got []Event
	s := NewSet(clock, time.Second, func(ev Event) { got = append(got, ev) })

	s.For(core.C(1, 1)).Press()
	clock.Advance(time.Second)
	if len(got) != 1 || !s.Current(got[0]) {
		t.Fatalf("events = %+v, want one current long press", got)
	}

	s.CancelAll()
	if s.Current(got[0]) {
		t.Error("event from before CancelAll should be stale")
	}

	s.For(core.C(1, 1)).Secondary()
	if len(got) != 2 || !s.Current(got[1]) {
		t.Errorf("events = %+v, want a current secondary", got)
	}
}
