// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"slices"
	"sync"

	"github.com/linkforge/session-runtime/internal/logging"
)

var _ BusInterface = (*Bus)(nil)

type subscription struct {
	id      uint64
	types   []Type
	handler Handler
}

func (s subscription) accepts(t Type) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Bus delivers events synchronously, one at a time, in the order they were
// published. A Publish issued from inside a handler is queued and delivered
// after the current event has reached every subscriber, so handlers may
// publish without deadlocking.
type Bus struct {
	mu       sync.Mutex
	subs     []subscription
	nextID   uint64
	seq      uint64
	queue    []Event
	draining bool

	logger logging.LoggerInterface
}

// Subscribe registers h for the given event types, or every type when none
// is given. The returned function removes the subscription.
func (b *Bus) Subscribe(h Handler, types ...Type) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, types: types, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.id == id })
	}
}

// Publish stamps e with the next sequence number and returns it.
func (b *Bus) Publish(e Event) uint64 {
	b.mu.Lock()

	b.seq++
	e.Seq = b.seq
	b.queue = append(b.queue, e)

	if b.draining {
		b.mu.Unlock()
		return e.Seq
	}

	b.draining = true
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]

		handlers := make([]Handler, 0, len(b.subs))
		for _, s := range b.subs {
			if s.accepts(next.Type) {
				handlers = append(handlers, s.handler)
			}
		}

		b.mu.Unlock()
		for _, h := range handlers {
			b.deliver(h, next)
		}
		b.mu.Lock()
	}
	b.draining = false
	b.mu.Unlock()

	return e.Seq
}

func (b *Bus) deliver(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorf("event handler for %s panicked: %v", e.Type, r)
		}
	}()

	h(e)
}

func NewBus(logger logging.LoggerInterface) *Bus {
	b := new(Bus)
	b.logger = logger
	return b
}
