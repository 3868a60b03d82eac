package eventbus

import "sync"

// Recorder is a synchronous EventBus that keeps every published event.
// Handlers run on the publisher's goroutine.
type Recorder struct {
	mu       sync.Mutex
	events   []DomainEvent
	handlers map[EventType][]EventHandler
	closed   bool
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{handlers: make(map[EventType][]EventHandler)}
}

func (r *Recorder) Publish(event DomainEvent) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.events = append(r.events, event)
	handlers := append([]EventHandler(nil), r.handlers[event.Type()]...)
	r.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

func (r *Recorder) Subscribe(eventType EventType, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
	idx := len(r.handlers[eventType]) - 1
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.handlers[eventType][idx] = func(DomainEvent) {}
	}
}

func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

// OfType returns the recorded events of one type
func (r *Recorder) OfType(t EventType) []DomainEvent {
	var out []DomainEvent
	for _, e := range r.Events() {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
