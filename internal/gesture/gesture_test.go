package gesture

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type kinds struct {
	mu  sync.Mutex
	got []Kind
}

func (k *kinds) add(kind Kind) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.got = append(k.got, kind)
}

func (k *kinds) list() []Kind {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]Kind(nil), k.got...)
}

func newTestRecognizer() (*Recognizer, *core.ManualClock, *kinds) {
	clock := core.NewManualClock(time.Unix(0, 0))
	rec := &kinds{}
	return NewRecognizer(clock, DefaultThreshold, rec.add), clock, rec
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecognizerSequences(t *testing.T) {
	tests := []struct {
		name  string
		steps func(r *Recognizer, c *core.ManualClock)
		want  []Kind
	}{
		{
			name: "short press is a tap",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				c.Advance(200 * time.Millisecond)
				r.Release()
			},
			want: []Kind{KindTap},
		},
		{
			name: "release just under the threshold is a tap",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				c.Advance(999 * time.Millisecond)
				r.Release()
			},
			want: []Kind{KindTap},
		},
		{
			name: "held press is one long press and the release is silent",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				c.Advance(1200 * time.Millisecond)
				r.Release()
			},
			want: []Kind{KindLongPress},
		},
		{
			name: "secondary emits immediately",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Secondary()
			},
			want: []Kind{KindSecondary},
		},
		{
			name: "secondary pre-empts a pending long press",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				c.Advance(500 * time.Millisecond)
				r.Secondary()
				c.Advance(time.Second)
				r.Release()
			},
			want: []Kind{KindSecondary},
		},
		{
			name: "release without press is ignored",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Release()
			},
			want: nil,
		},
		{
			name: "cancel drops the gesture",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				r.Cancel()
				c.Advance(2 * time.Second)
				r.Release()
			},
			want: nil,
		},
		{
			name: "second press replaces the first timer",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				c.Advance(800 * time.Millisecond)
				r.Press()
				c.Advance(800 * time.Millisecond)
				r.Release()
			},
			want: []Kind{KindTap},
		},
		{
			name: "two taps in a row",
			steps: func(r *Recognizer, c *core.ManualClock) {
				r.Press()
				r.Release()
				r.Press()
				c.Advance(100 * time.Millisecond)
				r.Release()
			},
			want: []Kind{KindTap, KindTap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, clock, rec := newTestRecognizer()
			tt.steps(r, clock)
			if got := rec.list(); !equalKinds(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if r.Pending() {
				t.Fatalf("recognizer still pending after the sequence")
			}
		})
	}
}

func TestAtMostOneLiveTimer(t *testing.T) {
	r, clock, _ := newTestRecognizer()

	for i := 0; i < 5; i++ {
		r.Press()
	}
	if n := clock.Pending(); n != 1 {
		t.Fatalf("expected 1 live timer, got %d", n)
	}

	r.Release()
	if n := clock.Pending(); n != 0 {
		t.Fatalf("expected no live timer after release, got %d", n)
	}
}

// lateClock never fires on its own, so the test can deliver the callback
// after the release like a timer that lost the race.
type lateClock struct {
	now time.Time
	f   func()
}

func (c *lateClock) Now() time.Time { return c.now }

func (c *lateClock) AfterFunc(_ time.Duration, f func()) core.Timer {
	c.f = f
	return lateTimer{}
}

type lateTimer struct{}

func (lateTimer) Stop() bool { return false }

func TestLateTimerAfterRelease(t *testing.T) {
	clock := &lateClock{now: time.Unix(0, 0)}
	rec := &kinds{}
	r := NewRecognizer(clock, DefaultThreshold, rec.add)

	r.Press()
	clock.now = clock.now.Add(1500 * time.Millisecond)
	r.Release()
	clock.f()

	want := []Kind{KindLongPress}
	if got := rec.list(); !equalKinds(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewRecognizerDefaults(t *testing.T) {
	r := NewRecognizer(nil, 0, nil)
	if r.threshold != DefaultThreshold {
		t.Fatalf("threshold = %v, want %v", r.threshold, DefaultThreshold)
	}
	if _, ok := r.clock.(core.SystemClock); !ok {
		t.Fatalf("expected SystemClock, got %T", r.clock)
	}
	// nil emit must not panic
	r.Secondary()
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNone:      "none",
		KindTap:       "tap",
		KindLongPress: "long-press",
		KindSecondary: "secondary",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
