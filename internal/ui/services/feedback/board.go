package feedback

import (
	"time"

	"go.uber.org/zap"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
)

// Controller is the copy indicator of one entry
type Controller struct {
	state State
	token uint64
	timer Timer
}

// State returns the controller's current state
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Board owns the controllers of the visible entries. It is not safe for
// concurrent use; timers report back through the ExpireFunc and the owner
// applies the reset with Expire on its own goroutine.
type Board struct {
	sink      Sink
	scheduler Scheduler
	delay     time.Duration
	onExpire  ExpireFunc
	bus       eventbus.EventBus
	logger    *zap.Logger

	controllers map[domain.EntryKey]*Controller
	seq         uint64
}

// Option configures a Board
type Option func(*Board)

// WithDelay overrides DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(b *Board) {
		if d > 0 {
			b.delay = d
		}
	}
}

// WithScheduler replaces the time.AfterFunc scheduler
func WithScheduler(s Scheduler) Option {
	return func(b *Board) { b.scheduler = s }
}

// WithBus publishes copy events
func WithBus(bus eventbus.EventBus) Option {
	return func(b *Board) { b.bus = bus }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBoard creates a board writing to sink and reporting due resets to onExpire
func NewBoard(sink Sink, onExpire ExpireFunc, opts ...Option) *Board {
	b := &Board{
		sink:        sink,
		scheduler:   TimeScheduler{},
		delay:       DefaultDelay,
		onExpire:    onExpire,
		logger:      zap.NewNop(),
		controllers: make(map[domain.EntryKey]*Controller),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RequestCopy sends text to the sink and shows key as copied. A request
// while already copied restarts the delay without passing through Idle.
func (b *Board) RequestCopy(key domain.EntryKey, text string) {
	c, ok := b.controllers[key]
	if !ok {
		c = &Controller{}
		b.controllers[key] = c
	}

	if b.sink != nil {
		b.sink.Write(text)
	}

	c.cancel()
	b.seq++
	token := b.seq
	c.token = token
	c.state = Copied
	c.timer = b.scheduler.AfterFunc(b.delay, func() {
		if b.onExpire != nil {
			b.onExpire(key, token)
		}
	})

	b.logger.Debug("entry copied", zap.Stringer("key", key), zap.Uint64("token", token))
	if b.bus != nil {
		b.bus.Publish(eventbus.EntryCopiedEvent{Key: key})
	}
}

// Expire applies a due reset. Stale tokens and destroyed entries are
// ignored; it reports whether the state changed.
func (b *Board) Expire(key domain.EntryKey, token uint64) bool {
	c, ok := b.controllers[key]
	if !ok || c.token != token || c.state != Copied {
		return false
	}
	c.state = Idle
	c.timer = nil

	if b.bus != nil {
		b.bus.Publish(eventbus.CopyFeedbackExpiredEvent{Key: key})
	}
	return true
}

// State returns the state of key; unknown entries are Idle
func (b *Board) State(key domain.EntryKey) State {
	if c, ok := b.controllers[key]; ok {
		return c.state
	}
	return Idle
}

// Reconcile destroys the controllers of entries that are no longer visible
func (b *Board) Reconcile(visible []domain.EntryKey) {
	if len(b.controllers) == 0 {
		return
	}
	keep := make(map[domain.EntryKey]struct{}, len(visible))
	for _, k := range visible {
		keep[k] = struct{}{}
	}
	for key := range b.controllers {
		if _, ok := keep[key]; !ok {
			b.Destroy(key)
		}
	}
}

// Destroy cancels key's pending reset and forgets it
func (b *Board) Destroy(key domain.EntryKey) {
	c, ok := b.controllers[key]
	if !ok {
		return
	}
	c.cancel()
	delete(b.controllers, key)
}

// DestroyAll cancels every pending reset
func (b *Board) DestroyAll() {
	for key := range b.controllers {
		b.Destroy(key)
	}
}

// Len returns the number of live controllers
func (b *Board) Len() int {
	return len(b.controllers)
}

// Delay returns the configured reset delay
func (b *Board) Delay() time.Duration {
	return b.delay
}
