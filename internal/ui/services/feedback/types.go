package feedback

import (
	"sync"
	"time"

	"cmdwiki/internal/domain"
)

// State of one entry's copy indicator
type State int

const (
	Idle State = iota
	Copied
)

func (s State) String() string {
	if s == Copied {
		return "copied"
	}
	return "idle"
}

// DefaultDelay is how long an entry shows as copied
const DefaultDelay = 2 * time.Second

// Sink receives copied text. Writes are fire-and-forget.
type Sink interface {
	Write(text string)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(text string)

func (f SinkFunc) Write(text string) { f(text) }

// Timer is a pending reset
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ExpireFunc is called from the timer's goroutine when a reset is due. It
// must only hand the key and token back to the owner of the Board.
type ExpireFunc func(key domain.EntryKey, token uint64)

// TimeScheduler schedules with time.AfterFunc
type TimeScheduler struct{}

func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler holds timers until Advance is called
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates a scheduler whose clock starts at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and runs every timer that came due, in
// schedule order, on the caller's goroutine
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	pending := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.at <= s.now:
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	s.timers = pending
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers neither fired nor stopped
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
