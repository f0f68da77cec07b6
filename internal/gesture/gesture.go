// Package gesture turns a raw pointer stream into exactly one logical event
// per interaction: a short tap, a long press, or a secondary (right-click)
// action.
package gesture

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// DefaultThreshold separates a tap from a long press.
const DefaultThreshold = time.Second

// Kind is the classification of a gesture.
type Kind int

const (
	KindNone Kind = iota
	KindTap
	KindLongPress
	KindSecondary
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindLongPress:
		return "long-press"
	case KindSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Recognizer classifies the gestures of one interactive element.
//
// Thread-safety: all methods are safe for concurrent use. The emit callback
// is never called with the internal lock held; a long press is emitted from
// the timer's goroutine.
type Recognizer struct {
	mu        sync.Mutex
	clock     core.Clock
	threshold time.Duration
	emit      func(Kind)

	pressing   bool
	pressStart time.Time
	timer      core.Timer
	seq        uint64 // invalidates timer callbacks that lost a race with Stop
}

// NewRecognizer creates a recognizer. A nil clock uses core.SystemClock and a
// non-positive threshold uses DefaultThreshold.
func NewRecognizer(clock core.Clock, threshold time.Duration, emit func(Kind)) *Recognizer {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Recognizer{
		clock:     clock,
		threshold: threshold,
		emit:      emit,
	}
}

// Press records a primary button down / touch start and arms the long-press
// timer. A press that was still live is dropped without emitting.
func (r *Recognizer) Press() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()

	r.pressing = true
	r.pressStart = r.clock.Now()
	current := r.seq
	r.timer = r.clock.AfterFunc(r.threshold, func() {
		r.fire(current)
	})
}

// Release records a primary button up / touch end. A release inside the
// threshold emits KindTap. A release after the long press fired emits nothing.
// If the threshold has passed but the timer has not run yet, the release
// emits KindLongPress instead of nothing, and the late timer is then
// ignored, so every press still yields exactly one gesture.
func (r *Recognizer) Release() {
	r.mu.Lock()

	kind := KindNone
	if r.pressing {
		if r.clock.Now().Sub(r.pressStart) < r.threshold {
			kind = KindTap
		} else {
			kind = KindLongPress
		}
	}
	r.resetLocked()
	r.mu.Unlock()

	r.send(kind)
}

// Secondary records a right-click / context-menu event. It cancels any
// pending long press and always emits KindSecondary. Callers are expected
// to suppress the platform's default menu.
func (r *Recognizer) Secondary() {
	r.mu.Lock()
	r.resetLocked()
	r.mu.Unlock()

	r.send(KindSecondary)
}

// Cancel drops a live gesture without emitting anything.
func (r *Recognizer) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

// Pending reports whether a press is live.
func (r *Recognizer) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pressing
}

func (r *Recognizer) fire(seq uint64) {
	r.mu.Lock()
	if !r.pressing || r.seq != seq {
		r.mu.Unlock()
		return
	}
	r.pressing = false
	r.pressStart = time.Time{}
	r.timer = nil
	r.seq++
	r.mu.Unlock()

	r.send(KindLongPress)
}

// resetLocked cancels the timer and clears the press. Caller holds r.mu.
func (r *Recognizer) resetLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.seq++
	r.pressing = false
	r.pressStart = time.Time{}
}

func (r *Recognizer) send(k Kind) {
	if k != KindNone && r.emit != nil {
		r.emit(k)
	}
}
