// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

type PublisherInterface interface {
	Publish(Event) uint64
}

type SubscriberInterface interface {
	Subscribe(Handler, ...Type) func()
}

type BusInterface interface {
	PublisherInterface
	SubscriberInterface
}
