package gesture

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Event is a recognized gesture on a board cell. Gen is the Set generation
// the gesture started in.
type Event struct {
	Cell core.Coord
	Kind Kind
	Gen  uint64
}

// Target receives the commands gestures translate into.
type Target interface {
	Reveal(c core.Coord)
	ToggleFlag(c core.Coord)
}

// Apply maps a gesture onto the board: a tap reveals, a long press toggles
// the flag after the delay, a secondary action toggles it immediately.
func Apply(t Target, ev Event) {
	switch ev.Kind {
	case KindTap:
		t.Reveal(ev.Cell)
	case KindLongPress, KindSecondary:
		t.ToggleFlag(ev.Cell)
	}
}

// Set holds one Recognizer per cell, created on first use.
type Set struct {
	mu        sync.Mutex
	clock     core.Clock
	threshold time.Duration
	emit      func(Event)
	byCell    map[core.Coord]*Recognizer
	gen       uint64
}

// NewSet creates an empty set. emit receives every recognized gesture.
func NewSet(clock core.Clock, threshold time.Duration, emit func(Event)) *Set {
	return &Set{
		clock:     clock,
		threshold: threshold,
		emit:      emit,
		byCell:    make(map[core.Coord]*Recognizer),
	}
}

// For returns the recognizer of cell c.
func (s *Set) For(c core.Coord) *Recognizer {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byCell[c]
	if !ok {
		gen := s.gen
		r = NewRecognizer(s.clock, s.threshold, func(k Kind) {
			if s.emit != nil {
				s.emit(Event{Cell: c, Kind: k, Gen: gen})
			}
		})
		s.byCell[c] = r
	}
	return r
}

// CancelOthers cancels every live press except the one on c. Pointer
// devices only hold one press at a time, so a press elsewhere ends the rest.
func (s *Set) CancelOthers(c core.Coord) {
	for cell, r := range s.snapshot() {
		if cell != c {
			r.Cancel()
		}
	}
}

// CancelAll cancels every live press, forgets all recognizers and starts a
// new generation. Events already emitted carry the old generation.
func (s *Set) CancelAll() {
	for _, r := range s.snapshot() {
		r.Cancel()
	}

	s.mu.Lock()
	s.byCell = make(map[core.Coord]*Recognizer)
	s.gen++
	s.mu.Unlock()
}

// Current reports whether ev was recognized in the current generation.
func (s *Set) Current(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ev.Gen == s.gen
}

func (s *Set) snapshot() map[core.Coord]*Recognizer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[core.Coord]*Recognizer, len(s.byCell))
	for c, r := range s.byCell {
		out[c] = r
	}
	return out
}
